package cpu

// shiftFunc computes a shift/rotate's result byte and the carry bit shifted
// out, given the value and (for rotates) the carry shifted in.
type shiftFunc func(value byte, carryIn bool) (result byte, carryOut bool)

func shiftASL(v byte, _ bool) (byte, bool) { return v << 1, v&0x80 != 0 }

func shiftLSR(v byte, _ bool) (byte, bool) { return v >> 1, v&0x01 != 0 }

func shiftROL(v byte, carryIn bool) (byte, bool) {
	result := v << 1
	if carryIn {
		result |= 0x01
	}
	return result, v&0x80 != 0
}

func shiftROR(v byte, carryIn bool) (byte, bool) {
	result := v >> 1
	if carryIn {
		result |= 0x80
	}
	return result, v&0x01 != 0
}

// execShift backs ASL/LSR/ROL/ROR. Accumulator mode operates on A directly;
// every other mode reads, shifts, and writes back the effective address.
func (c *CPU) execShift(instr Instruction, f shiftFunc) byte {
	carryIn := c.P.Carry()

	if instr.AddressingMode == Accumulator {
		result, carryOut := f(c.A, carryIn)
		c.A = result
		c.P.SetCarry(carryOut)
		c.P.SetNZ(result)
		return 2
	}

	addr, _ := c.operandAddress(instr.AddressingMode, instr.low(), instr.high())
	v := c.mapper.Read(addr)
	result, carryOut := f(v, carryIn)
	c.mapper.Write(addr, result)
	c.P.SetCarry(carryOut)
	c.P.SetNZ(result)
	return rmwCycles(instr.AddressingMode)
}
