package cpu

// execIncDecMemory backs INC/DEC: a read-modify-write with 8-bit wrap,
// delta is 1 for INC and 0xFF (i.e. -1) for DEC.
func (c *CPU) execIncDecMemory(instr Instruction, delta byte) byte {
	addr, _ := c.operandAddress(instr.AddressingMode, instr.low(), instr.high())
	v := c.mapper.Read(addr) + delta
	c.mapper.Write(addr, v)
	c.P.SetNZ(v)
	return rmwCycles(instr.AddressingMode)
}
