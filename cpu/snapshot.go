package cpu

import (
	"fmt"
	"sort"

	"github.com/fekie/nes6502/irq"
	"github.com/fekie/nes6502/mapper"
)

// Cell is one nonzero memory location captured by a Snapshot.
type Cell struct {
	Address uint16
	Value   byte
}

// Snapshot is a serializable capture of the CPU's programmer-visible state
// plus the nonzero cells of its memory, used by the conformance harness for
// round-trip comparisons. RAM is normalized on comparison (sorted by
// address, zero-valued cells dropped) so two snapshots compare equal iff
// the programmer-visible states -- registers and nonzero memory -- match,
// independent of insertion order or explicit zero entries.
type Snapshot struct {
	PC  uint16
	S   byte
	A   byte
	X   byte
	Y   byte
	P   byte
	RAM []Cell
}

// State captures the CPU's current programmer-visible state by scanning
// the full 16-bit address space through the Mapper for nonzero cells.
func (c *CPU) State() Snapshot {
	var ram []Cell
	for addr := 0; addr <= 0xFFFF; addr++ {
		v := c.mapper.Read(uint16(addr))
		if v != 0 {
			ram = append(ram, Cell{Address: uint16(addr), Value: v})
		}
	}
	return Snapshot{PC: c.PC, S: c.S, A: c.A, X: c.X, Y: c.Y, P: c.P.Byte(), RAM: ram}
}

// FromState reconstructs a CPU from a Snapshot: the registers are assigned
// directly and the RAM cells are written through to mapper. The returned
// CPU is marked initialized, since a snapshot only ever represents a CPU
// that has already run.
func FromState(s Snapshot, m mapper.Mapper, i irq.Interrupts) *CPU {
	c := New(m, i)
	c.PC = s.PC
	c.S = s.S
	c.A = s.A
	c.X = s.X
	c.Y = s.Y
	c.P = Status(s.P)
	c.initialized = true
	for _, cell := range s.RAM {
		m.Write(cell.Address, cell.Value)
	}
	return c
}

func (s Snapshot) normalizedRAM() []Cell {
	out := make([]Cell, 0, len(s.RAM))
	for _, cell := range s.RAM {
		if cell.Value != 0 {
			out = append(out, cell)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

// Equal compares two snapshots modulo RAM normalization: sorted by address
// with zero-valued cells dropped, matching the conformance harness's
// round-trip equality rule.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.PC != other.PC || s.S != other.S || s.A != other.A ||
		s.X != other.X || s.Y != other.Y || s.P != other.P {
		return false
	}
	a, b := s.normalizedRAM(), other.normalizedRAM()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s Snapshot) String() string {
	return fmt.Sprintf("PC=%04X S=%02X A=%02X X=%02X Y=%02X P=%02X RAM(%d nonzero cells)",
		s.PC, s.S, s.A, s.X, s.Y, s.P, len(s.RAM))
}
