package cpu

// execLoad backs LDA: read the operand into reg and set N/Z from it.
func (c *CPU) execLoad(instr Instruction, reg *byte) byte {
	m, crossed := c.loadOperand(instr.AddressingMode, instr.low(), instr.high())
	*reg = m
	c.P.SetNZ(m)
	return loadCycles(instr.AddressingMode, crossed)
}

// execLDX special-cases the zero-page indexed form: the decode table tags
// it ZeropageXIndexed, but on real hardware LDX's zero-page form indexes by
// Y, not X.
func (c *CPU) execLDX(instr Instruction) byte {
	mode := instr.AddressingMode
	var m byte
	var crossed bool
	if mode == ZeropageXIndexed {
		m = c.mapper.Read(zeropageAddr(instr.low(), c.Y))
	} else {
		m, crossed = c.loadOperand(mode, instr.low(), instr.high())
	}
	c.X = m
	c.P.SetNZ(m)
	return loadCycles(mode, crossed)
}

func (c *CPU) execLDY(instr Instruction) byte {
	m, crossed := c.loadOperand(instr.AddressingMode, instr.low(), instr.high())
	c.Y = m
	c.P.SetNZ(m)
	return loadCycles(instr.AddressingMode, crossed)
}

// execStore backs STA/STY: write value to the effective address.
func (c *CPU) execStore(instr Instruction, value byte) byte {
	c.storeOperand(instr.AddressingMode, instr.low(), instr.high(), value)
	return storeCycles(instr.AddressingMode)
}

// execSTX mirrors execLDX's zero-page Y-indexing exception.
func (c *CPU) execSTX(instr Instruction) byte {
	mode := instr.AddressingMode
	if mode == ZeropageXIndexed {
		c.mapper.Write(zeropageAddr(instr.low(), c.Y), c.X)
		return storeCycles(mode)
	}
	c.storeOperand(mode, instr.low(), instr.high(), c.X)
	return storeCycles(mode)
}
