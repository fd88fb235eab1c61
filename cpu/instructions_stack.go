package cpu

// execPHP pushes P with bit 4 (B) forced set, matching instruction_php and
// the software-BRK path of interruptDispatch; bit 5 is pushed as it reads
// in the live register, not forced.
func (c *CPU) execPHP() byte {
	c.push(c.P.Byte() | FlagBreak)
	return 3
}

// execPLP pops into P but preserves the current values of bits 4 and 5:
// those two bits are only ever software-visible through the pushed copy,
// never through the live register.
func (c *CPU) execPLP() byte {
	popped := c.pop()
	c.P = Status((popped &^ (FlagBreak | FlagUnused)) | (c.P.Byte() & (FlagBreak | FlagUnused)))
	return 4
}

// execRTI pops P (with the same bit 4/5 preservation as PLP), then PC low,
// then PC high.
func (c *CPU) execRTI() byte {
	popped := c.pop()
	c.P = Status((popped &^ (FlagBreak | FlagUnused)) | (c.P.Byte() & (FlagBreak | FlagUnused)))
	lo := c.pop()
	hi := c.pop()
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 6
}
