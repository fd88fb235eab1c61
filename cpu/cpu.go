// Package cpu implements the programmer-visible core of a MOS 6502 as used
// in the NES: registers, status flags, the opcode decode table, the
// addressing-mode data path, and the per-instruction semantics that mutate
// state with bit-exact 6502 behavior. It advances one instruction (or one
// interrupt dispatch) per Cycle call and never touches memory directly --
// every access goes through the Mapper collaborator supplied at
// construction, and every interrupt line is read through the Interrupts
// collaborator.
package cpu

import (
	"fmt"

	"github.com/fekie/nes6502/irq"
	"github.com/fekie/nes6502/mapper"
)

// Vector addresses the CPU loads PC from on NMI, Reset, and IRQ/BRK.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
)

// StackBase is the physical address of stack page 0x01; the stack pointer
// S addresses 0x0100+S.
const StackBase uint16 = 0x0100

// InterruptState distinguishes the four reasons the shared interrupt/BRK
// routine can run, since each differs in vector and B-flag handling.
type InterruptState int

const (
	Inactive InterruptState = iota
	Reset
	Maskable
	NonMaskable
)

// Instruction is the decoded, fetched instruction consumed by execute: the
// opcode and addressing mode from Decode plus up to two operand bytes read
// during Fetch. It is value-typed and lives for exactly one Cycle call.
type Instruction struct {
	Opcode         Opcode
	AddressingMode AddressingMode
	LowByte        *byte
	HighByte       *byte
}

func (i Instruction) low() byte {
	if i.LowByte == nil {
		return 0
	}
	return *i.LowByte
}

func (i Instruction) high() byte {
	if i.HighByte == nil {
		return 0
	}
	return *i.HighByte
}

// CPU holds the programmer-visible 6502 state: the three 8-bit registers,
// the stack pointer, the program counter, the status register, and an
// initialized latch distinguishing "constructed" from "reset-vector
// loaded". Memory and interrupt lines are delegated to the two
// collaborators supplied at construction.
type CPU struct {
	A, X, Y byte
	S       byte
	PC      uint16
	P       Status

	initialized bool

	mapper     mapper.Mapper
	interrupts irq.Interrupts
}

// New constructs a CPU with all registers zeroed and initialized=false.
// The host must call Initialize before the first Cycle.
func New(m mapper.Mapper, i irq.Interrupts) *CPU {
	return &CPU{mapper: m, interrupts: i}
}

// Initialize performs a Reset-state interrupt dispatch and latches
// initialized=true. Per spec, Initialize does not itself set the stack
// pointer -- S starts at whatever New left it at (zero) and the shared
// dispatch routine only moves it by pushing PC/P, it never assigns S a
// fixed value. From the zeroed S those three pushes leave S at 0xFD; a host
// that wants a different value sets it explicitly before or after calling
// Initialize.
func (c *CPU) Initialize() {
	c.interruptDispatch(Reset)
	c.initialized = true
}

// Initialized reports whether Initialize has run.
func (c *CPU) Initialized() bool {
	return c.initialized
}

// Reset clears C, Z, D, V, N, and B, sets I, and re-runs Reset vectoring.
// Unlike Initialize this can be called at any point in the CPU's
// lifetime to simulate a hardware reset line being pulled.
func (c *CPU) Reset() {
	c.P.SetCarry(false)
	c.P.SetZero(false)
	c.P.SetDecimal(false)
	c.P.SetOverflow(false)
	c.P.SetNegative(false)
	c.P.SetBreak(false)
	c.P.SetInterrupt(true)
	c.interruptDispatch(Reset)
}

// Cycle advances the CPU by exactly one instruction or one interrupt
// dispatch and returns the number of CPU cycles consumed. NMI is polled
// first (always serviced, edge-like: the line is cleared on service), then
// IRQ if the I flag is clear, then a normal fetch/decode/execute. The call
// is atomic from the caller's perspective: no suspension points, no
// internal scheduling.
func (c *CPU) Cycle() byte {
	cycles, _, _, _ := c.cycle()
	return cycles
}

// CycleDebug behaves like Cycle but additionally reports whether the fetch
// stage decoded its opcode and, when it did, the decoded instruction. This
// is the one error-like surface the core has: an undecodable opcode is
// never raised as a Go error from Cycle, only surfaced here as a DecodeError
// naming the offending opcode and PC.
func (c *CPU) CycleDebug() (cycles byte, ok bool, instruction *Instruction, err *DecodeError) {
	return c.cycle()
}

func (c *CPU) cycle() (byte, bool, *Instruction, *DecodeError) {
	if c.interrupts.NonMaskableInterruptState() {
		c.interrupts.SetNonMaskableInterruptState(false)
		return c.interruptDispatch(NonMaskable), true, nil, nil
	}
	if c.interrupts.InterruptState() && !c.P.Interrupt() {
		c.interrupts.SetInterruptState(false)
		return c.interruptDispatch(Maskable), true, nil, nil
	}

	pc := c.PC
	instr, ok := c.fetch()
	if !ok {
		return 0, false, nil, &DecodeError{Opcode: c.mapper.Read(pc), PC: pc}
	}
	cycles := c.execute(instr)
	return cycles, true, &instr, nil
}

// fetch reads the opcode at PC, decodes it, reads 0-2 operand bytes per the
// addressing mode's length, and advances PC by that length (wrapping in 16
// bits). BRK is a documented exception: though tagged Implied (length 1)
// in the decode table, hardware advances PC by 2 on BRK entry, treating the
// byte after the opcode as a signature; fetch honors that here rather than
// in the decode table, since it is a fetch-stage quirk, not a naming of the
// byte's (mnemonic, mode) pair.
func (c *CPU) fetch() (Instruction, bool) {
	pc := c.PC
	opcodeByte := c.mapper.Read(pc)
	full, ok := Decode(opcodeByte)
	if !ok {
		return Instruction{}, false
	}

	length := full.AddressingMode.BytesRequired()
	if full.Opcode == BRK {
		length = 2
	}

	instr := Instruction{Opcode: full.Opcode, AddressingMode: full.AddressingMode}
	switch length {
	case 1:
		c.PC = pc + 1
	case 2:
		lb := c.mapper.Read(pc + 1)
		instr.LowByte = &lb
		c.PC = pc + 2
	case 3:
		lb := c.mapper.Read(pc + 1)
		hb := c.mapper.Read(pc + 2)
		instr.LowByte = &lb
		instr.HighByte = &hb
		c.PC = pc + 3
	}
	return instr, true
}

// interruptDispatch implements the unified BRK/IRQ/NMI/Reset routine of
// spec §4.5: push PC, push P (forcing B=1 in the pushed copy for a
// software BRK or a Reset, leaving it as-is for a hardware IRQ/NMI), set I,
// then vector PC from the address matching state. Always 7 cycles.
func (c *CPU) interruptDispatch(state InterruptState) byte {
	c.push(byte(c.PC >> 8))
	c.push(byte(c.PC & 0xFF))

	if state == Inactive || state == Reset {
		c.P.SetBreak(true)
		c.push(c.P.Byte())
		c.P.SetBreak(false)
	} else {
		c.push(c.P.Byte())
	}

	c.P.SetInterrupt(true)

	var vector uint16
	switch state {
	case Reset:
		vector = ResetVector
	case NonMaskable:
		vector = NMIVector
	default: // Inactive (software BRK) and Maskable share the IRQ/BRK vector.
		vector = IRQVector
	}
	c.PC = c.readVector(vector)
	return 7
}

func (c *CPU) readVector(addr uint16) uint16 {
	lo := c.mapper.Read(addr)
	hi := c.mapper.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) push(b byte) {
	c.mapper.Write(StackBase+uint16(c.S), b)
	c.S--
}

func (c *CPU) pop() byte {
	c.S++
	return c.mapper.Read(StackBase + uint16(c.S))
}

// Read and Write pass directly through to the Mapper collaborator.
func (c *CPU) Read(address uint16) byte        { return c.mapper.Read(address) }
func (c *CPU) Write(address uint16, value byte) { c.mapper.Write(address, value) }

func (c *CPU) String() string {
	return fmt.Sprintf("PC=%04X A=%02X X=%02X Y=%02X S=%02X P=%02X", c.PC, c.A, c.X, c.Y, c.S, c.P.Byte())
}
