package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	deep "github.com/go-test/deep"

	"github.com/fekie/nes6502/irq"
	"github.com/fekie/nes6502/mapper"
)

// setup builds a CPU over a flat RAM mapper and level-held interrupt lines,
// the minimal collaborators this core needs.
func setup() (*CPU, *mapper.RAM, *irq.Lines) {
	m := mapper.New()
	i := &irq.Lines{}
	c := New(m, i)
	return c, m, i
}

func TestDecodeTotality(t *testing.T) {
	illegalLowNibbles := map[byte]bool{0x3: true, 0x7: true, 0xB: true, 0xF: true}
	decoded := 0
	for b := 0; b <= 0xFF; b++ {
		full, ok := Decode(byte(b))
		if illegalLowNibbles[byte(b)&0x0F] && ok {
			t.Errorf("byte 0x%02X: expected illegal low nibble to not decode, got %+v", b, full)
		}
		if ok {
			decoded++
			if n := full.AddressingMode.BytesRequired(); n < 1 || n > 3 {
				t.Errorf("byte 0x%02X: BytesRequired() = %d, want 1-3", b, n)
			}
		}
	}
	if decoded != 151 {
		t.Errorf("decoded %d documented (opcode, mode) pairs, want 151", decoded)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		first, okFirst := Decode(byte(b))
		second, okSecond := Decode(byte(b))
		if okFirst != okSecond || first != second {
			t.Fatalf("byte 0x%02X: Decode is not deterministic: %+v/%v vs %+v/%v", b, first, okFirst, second, okSecond)
		}
	}
}

func TestADCImmediate(t *testing.T) {
	// S1: ADC immediate, positive+positive overflowing into negative.
	c, m, _ := setup()
	c.A = 0x50
	c.P = 0
	m.Write(0x0000, 0x69)
	m.Write(0x0001, 0x50)
	cycles := c.Cycle()

	if c.A != 0xA0 {
		t.Errorf("A = 0x%02X, want 0xA0", c.A)
	}
	if c.P.Carry() {
		t.Error("carry set, want clear")
	}
	if c.P.Zero() {
		t.Error("zero set, want clear")
	}
	if !c.P.Negative() {
		t.Error("negative clear, want set")
	}
	if !c.P.Overflow() {
		t.Error("overflow clear, want set")
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2", cycles)
	}
}

func TestSBCMatchesADCOfComplement(t *testing.T) {
	inputs := []struct{ a, m byte }{
		{0x00, 0x01}, {0xFF, 0x01}, {0x80, 0x01}, {0x50, 0xF0}, {0x01, 0x01},
	}
	for _, in := range inputs {
		withSBC, _, _ := setup()
		withSBC.A = in.a
		withSBC.P.SetCarry(true)
		operand := in.m
		withSBC.execSBC(Instruction{Opcode: SBC, AddressingMode: Immediate, LowByte: &operand})
		sbcResult := withSBC.State()

		withADC, _, _ := setup()
		withADC.A = in.a
		withADC.P.SetCarry(true)
		withADC.adc(in.m ^ 0xFF)
		adcResult := withADC.State()

		if diff := deep.Equal(sbcResult, adcResult); diff != nil {
			t.Errorf("a=0x%02X m=0x%02X: SBC != ADC(~M): %v\n%s", in.a, in.m, diff, spew.Sdump(sbcResult))
		}
	}
}

func TestCompareVsSubtract(t *testing.T) {
	c, m, _ := setup()
	c.A = 0x10
	m.Write(0x0000, 0xC9) // CMP immediate
	m.Write(0x0001, 0x20)
	c.Cycle()

	if c.A != 0x10 {
		t.Errorf("A mutated by CMP: got 0x%02X", c.A)
	}
	if c.P.Carry() {
		t.Error("carry set for A < M, want clear")
	}
	if c.P.Zero() {
		t.Error("zero set for A != M, want clear")
	}
	want := byte(0x10 - 0x20)
	if c.P.Negative() != (want&0x80 != 0) {
		t.Errorf("negative flag inconsistent with result byte 0x%02X", want)
	}
}

func TestIndirectJMPPageWrapQuirk(t *testing.T) {
	// S2.
	c, m, _ := setup()
	c.PC = 0x1000
	m.Write(0x1000, 0x6C)
	m.Write(0x1001, 0xFF)
	m.Write(0x1002, 0x30)
	m.Write(0x30FF, 0x80)
	m.Write(0x3000, 0x40)
	m.Write(0x3100, 0x50)

	cycles := c.Cycle()

	if c.PC != 0x4080 {
		t.Errorf("PC = 0x%04X, want 0x4080", c.PC)
	}
	if cycles != 5 {
		t.Errorf("cycles = %d, want 5", cycles)
	}
}

func TestJSRThenRTS(t *testing.T) {
	// S3.
	c, m, _ := setup()
	c.PC = 0x8000
	c.S = 0xFF
	m.Write(0x8000, 0x20) // JSR
	m.Write(0x8001, 0x34)
	m.Write(0x8002, 0x12)
	m.Write(0x1234, 0x60) // RTS

	total := c.Cycle()
	if c.PC != 0x1234 {
		t.Fatalf("after JSR, PC = 0x%04X, want 0x1234", c.PC)
	}
	if got := m.Read(0x01FE); got != 0x02 {
		t.Errorf("stacked return low byte = 0x%02X, want 0x02", got)
	}
	if got := m.Read(0x01FF); got != 0x80 {
		t.Errorf("stacked return high byte = 0x%02X, want 0x80", got)
	}

	total += c.Cycle()
	if c.PC != 0x8003 {
		t.Errorf("after RTS, PC = 0x%04X, want 0x8003", c.PC)
	}
	if c.S != 0xFF {
		t.Errorf("after RTS, S = 0x%02X, want 0xFF", c.S)
	}
	if total != 12 {
		t.Errorf("total cycles = %d, want 12", total)
	}
}

func TestBranchTakenPageCross(t *testing.T) {
	// S4.
	c, m, _ := setup()
	c.PC = 0x00FD
	c.P.SetZero(false)
	m.Write(0x00FD, 0xD0) // BNE
	m.Write(0x00FE, 0x10)

	cycles := c.Cycle()
	if c.PC != 0x010F {
		t.Errorf("PC = 0x%04X, want 0x010F", c.PC)
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4", cycles)
	}
}

func TestBranchCycleLaw(t *testing.T) {
	tests := []struct {
		name        string
		pc          uint16
		offset      byte
		taken       bool
		wantCycles  byte
		wantPCSame  bool
		crossesPage bool
	}{
		{name: "not taken", pc: 0x0200, offset: 0x10, taken: false, wantCycles: 2},
		{name: "taken same page", pc: 0x0200, offset: 0x10, taken: true, wantCycles: 3},
		{name: "taken crosses page", pc: 0x00FD, offset: 0x10, taken: true, wantCycles: 4, crossesPage: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _, _ := setup()
			c.PC = tc.pc
			got := c.execBranch(Instruction{LowByte: &tc.offset}, tc.taken)
			if got != tc.wantCycles {
				t.Errorf("cycles = %d, want %d", got, tc.wantCycles)
			}
		})
	}
}

func TestInterruptDispatchIRQ(t *testing.T) {
	// S5.
	c, m, i := setup()
	c.P.SetInterrupt(false)
	m.Write(0xFFFE, 0x00)
	m.Write(0xFFFF, 0xC0)
	c.S = 0xFF
	i.SetInterruptState(true)

	cycles := c.Cycle()

	if c.PC != 0xC000 {
		t.Errorf("PC = 0x%04X, want 0xC000", c.PC)
	}
	if !c.P.Interrupt() {
		t.Error("I flag clear after interrupt dispatch, want set")
	}
	if m.Read(0x01FD)&FlagBreak != 0 {
		t.Error("pushed P has B set for a hardware IRQ, want clear")
	}
	if i.InterruptState() {
		t.Error("IRQ line still asserted after service, want cleared")
	}
	if cycles != 7 {
		t.Errorf("cycles = %d, want 7", cycles)
	}
}

func TestPLPPreservesBAndUnused(t *testing.T) {
	// S6.
	c, m, _ := setup()
	c.P = Status(0b0011_0000)
	c.S = 0xFF
	m.Write(0x01FF, 0x00) // byte that will be popped
	c.S = 0xFE

	c.execPLP()

	want := byte(0b0011_0000)
	if c.P.Byte() != want {
		t.Errorf("P = 0b%08b, want 0b%08b", c.P.Byte(), want)
	}
}

func TestStackWrapRoundTrip(t *testing.T) {
	// Property 7: 256 PHAs then 256 PLAs leave S, A, and memory outside the
	// stack page unchanged.
	c, m, _ := setup()
	c.S = 0xFF
	c.A = 0x42
	startA := c.A
	startS := c.S

	for i := 0; i < 256; i++ {
		c.push(c.A)
		c.A++
	}
	for i := 0; i < 256; i++ {
		c.A = c.pop()
	}

	if c.S != startS {
		t.Errorf("S = 0x%02X, want 0x%02X", c.S, startS)
	}
	if c.A != startA {
		t.Errorf("A = 0x%02X, want 0x%02X", c.A, startA)
	}
	if v := m.Read(0x0000); v != 0 {
		t.Errorf("memory outside stack page mutated: 0x0000 = 0x%02X", v)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c, m, i := setup()
	c.PC, c.S, c.A, c.X, c.Y, c.P = 0x1234, 0xFD, 1, 2, 3, 0x80
	m.Write(0x0200, 0xAB)
	m.Write(0x0300, 0x00) // explicit zero cell, must normalize away

	snap := c.State()
	snap.RAM = append(snap.RAM, Cell{Address: 0x0300, Value: 0x00})

	rebuilt := FromState(snap, mapper.New(), i)
	rebuiltSnap := rebuilt.State()

	if !snap.Equal(rebuiltSnap) {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", spew.Sdump(snap), spew.Sdump(rebuiltSnap))
	}
}

func TestZeropageIndexedWraps(t *testing.T) {
	c, _, _ := setup()
	c.X = 0xFF
	got := zeropageAddr(0x80, c.X)
	if got != 0x7F {
		t.Errorf("zeropageAddr(0x80, 0xFF) = 0x%04X, want 0x007F", got)
	}
}

func TestAbsoluteIndexedPageCross(t *testing.T) {
	addr, crossed := absoluteIndexedAddr(0xFF, 0x02, 0x01)
	if addr != 0x0300 {
		t.Errorf("addr = 0x%04X, want 0x0300", addr)
	}
	if !crossed {
		t.Error("expected page cross")
	}

	addr, crossed = absoluteIndexedAddr(0x10, 0x02, 0x01)
	if addr != 0x0211 {
		t.Errorf("addr = 0x%04X, want 0x0211", addr)
	}
	if crossed {
		t.Error("expected no page cross")
	}
}

func TestCycleDebugReportsUndecodable(t *testing.T) {
	c, m, _ := setup()
	m.Write(0x0000, 0x03) // illegal: low nibble 0x3
	_, ok, instr, err := c.CycleDebug()
	if ok {
		t.Error("CycleDebug reported ok=true for an illegal opcode")
	}
	if instr != nil {
		t.Errorf("CycleDebug returned a non-nil instruction for an illegal opcode: %+v", instr)
	}
	if err == nil {
		t.Fatal("CycleDebug returned a nil DecodeError for an illegal opcode")
	}
	if err.Opcode != 0x03 || err.PC != 0x0000 {
		t.Errorf("DecodeError = %+v, want Opcode=0x03 PC=0x0000", err)
	}
}

func TestLDXZeropageIndexesByY(t *testing.T) {
	c, m, _ := setup()
	c.Y = 0x05
	c.X = 0x99
	m.Write(0x0000, 0xB6) // LDX zeropage,"X" (actually Y on hardware)
	m.Write(0x0001, 0x10)
	m.Write(0x0015, 0x7E) // 0x10 + Y(0x05)

	c.Cycle()

	if c.X != 0x7E {
		t.Errorf("X = 0x%02X, want 0x7E (indexed by Y, not by stale X)", c.X)
	}
}
