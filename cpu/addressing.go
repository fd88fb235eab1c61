package cpu

// The addressing-mode data path resolves operand bytes (already fetched by
// Fetch) plus register state into an effective address, a value, and a
// page-crossed flag, per spec. A single EffectiveAddress/page-crossed
// representation backs every indexed mode rather than one helper per
// (instruction, mode) pair.

func zeropageAddr(low, index byte) uint16 {
	return uint16(low + index) // 8-bit wraparound, then zero-extended
}

func absoluteAddr(low, high byte) uint16 {
	return uint16(high)<<8 | uint16(low)
}

func absoluteIndexedAddr(low, high, index byte) (addr uint16, pageCrossed bool) {
	base := absoluteAddr(low, high)
	addr = base + uint16(index)
	pageCrossed = uint16(low)+uint16(index) > 0xFF
	return addr, pageCrossed
}

func (c *CPU) indirectXAddr(low byte) uint16 {
	ptr := low + c.X
	lo := c.mapper.Read(uint16(ptr))
	hi := c.mapper.Read(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) indirectYAddr(low byte) (addr uint16, pageCrossed bool) {
	lo := c.mapper.Read(uint16(low))
	hi := c.mapper.Read(uint16(low + 1))
	base := uint16(hi)<<8 | uint16(lo)
	addr = base + uint16(c.Y)
	pageCrossed = low == 0xFF || uint16(lo)+uint16(c.Y) > 0xFF
	return addr, pageCrossed
}

// indirectAddr resolves JMP (Indirect)'s effective address, including the
// page-wrap quirk: when the pointer's low byte is 0xFF, the high byte is
// read from the start of the same page rather than the next page.
func (c *CPU) indirectAddr(low, high byte) uint16 {
	base := absoluteAddr(low, high)
	lo := c.mapper.Read(base)
	var hi byte
	if low == 0xFF {
		hi = c.mapper.Read(base & 0xFF00)
	} else {
		hi = c.mapper.Read(base + 1)
	}
	return uint16(hi)<<8 | uint16(lo)
}

// signedOffset interprets a byte as a two's-complement signed 8-bit value,
// used for Relative addressing's branch offsets.
func signedOffset(b byte) int16 {
	return int16(int8(b))
}

// operandAddress resolves any addressed mode except Accumulator, Immediate,
// Implied, and Relative (which have no memory operand, or are handled
// directly by the branch routines) to an effective address and whether an
// indexed access crossed a page boundary.
func (c *CPU) operandAddress(mode AddressingMode, low, high byte) (addr uint16, pageCrossed bool) {
	switch mode {
	case Zeropage:
		return uint16(low), false
	case ZeropageXIndexed:
		return zeropageAddr(low, c.X), false
	case ZeropageYIndexed:
		return zeropageAddr(low, c.Y), false
	case Absolute:
		return absoluteAddr(low, high), false
	case AbsoluteXIndexed:
		return absoluteIndexedAddr(low, high, c.X)
	case AbsoluteYIndexed:
		return absoluteIndexedAddr(low, high, c.Y)
	case Indirect:
		return c.indirectAddr(low, high), false
	case IndirectXIndexed:
		return c.indirectXAddr(low), false
	case IndirectYIndexed:
		return c.indirectYAddr(low)
	}
	return 0, false
}

// loadOperand resolves a readable operand for any addressing mode an
// arithmetic/logical/load instruction can use. Immediate reads the operand
// byte directly with no memory access and never crosses a page.
func (c *CPU) loadOperand(mode AddressingMode, low, high byte) (value byte, pageCrossed bool) {
	if mode == Immediate {
		return low, false
	}
	addr, crossed := c.operandAddress(mode, low, high)
	return c.mapper.Read(addr), crossed
}

// storeOperand writes value to the effective address for any addressing
// mode a store/RMW instruction can use.
func (c *CPU) storeOperand(mode AddressingMode, low, high byte, value byte) {
	addr, _ := c.operandAddress(mode, low, high)
	c.mapper.Write(addr, value)
}
