package cpu

// execLogical backs AND/ORA/EOR: they differ only in the bitwise operator
// applied between A and the operand, so one routine serves all three.
func (c *CPU) execLogical(instr Instruction, op func(a, m byte) byte) byte {
	m, crossed := c.loadOperand(instr.AddressingMode, instr.low(), instr.high())
	c.A = op(c.A, m)
	c.P.SetNZ(c.A)
	return loadCycles(instr.AddressingMode, crossed)
}

// execBIT sets Z from A&M, and copies M's own bit 7 and bit 6 into N and V
// respectively. A is never modified.
func (c *CPU) execBIT(instr Instruction) byte {
	m, _ := c.loadOperand(instr.AddressingMode, instr.low(), instr.high())
	c.P.SetZero(c.A&m == 0)
	c.P.SetNegative(m&FlagNegative != 0)
	c.P.SetOverflow(m&FlagOverflow != 0)
	return loadCycles(instr.AddressingMode, false)
}
