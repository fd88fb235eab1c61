package cpu

// execBranch backs BCC/BCS/BEQ/BNE/BMI/BPL/BVC/BVS: 2 cycles if not taken,
// 3 if taken, 4 if taken and the branch target lands on a different page
// than the instruction following the branch. The offset is a signed byte
// applied to PC after fetch has already advanced it past the branch.
func (c *CPU) execBranch(instr Instruction, taken bool) byte {
	if !taken {
		return 2
	}
	offset := signedOffset(instr.low())
	oldPC := c.PC
	newPC := uint16(int32(oldPC) + int32(offset))
	c.PC = newPC
	if oldPC>>8 != newPC>>8 {
		return 4
	}
	return 3
}
