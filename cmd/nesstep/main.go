// nesstep loads a flat binary image into a RAM-backed Mapper, drives the
// CPU core a requested number of instructions, and prints per-step
// disassembly plus register state. It never interprets the image as
// anything but flat bytes -- there is no PPU, APU, or cartridge-mapper
// emulation here, matching the core's own non-goals.
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"github.com/fekie/nes6502/cpu"
	"github.com/fekie/nes6502/disassemble"
	"github.com/fekie/nes6502/irq"
	"github.com/fekie/nes6502/mapper"
)

func main() {
	app := &cli.App{
		Name:    "nesstep",
		Usage:   "step a 6502 core over a flat binary image",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "offset",
				Usage: "address to load the image at",
				Value: 0x8000,
			},
			&cli.UintFlag{
				Name:  "pc",
				Usage: "initial PC; if zero, the reset vector is loaded from the image instead",
				Value: 0,
			},
			&cli.UintFlag{
				Name:  "count",
				Usage: "number of instructions to step",
				Value: 10,
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args()
			if args.Len() != 1 {
				cli.ShowAppHelp(c)
				return cli.Exit("expected exactly one image filename", 1)
			}
			return run(args.Get(0), uint16(c.Uint("offset")), uint16(c.Uint("pc")), int(c.Uint("count")))
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(filename string, offset, pc uint16, count int) error {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	m := mapper.New()
	m.Load(offset, data)

	lines := &irq.Lines{}
	core := cpu.New(m, lines)
	core.S = 0xFF

	if pc != 0 {
		core.PC = pc
	} else {
		core.Initialize()
	}

	for i := 0; i < count; i++ {
		text, _ := disassemble.Step(core.PC, m)
		cycles, ok, _, err := core.CycleDebug()
		if !ok {
			fmt.Printf("%s  <- %s, stopping\n", text, err)
			break
		}
		fmt.Printf("%-40s  %s  cycles=%d\n", text, core, cycles)
	}
	return nil
}
