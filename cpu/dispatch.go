package cpu

// execute runs the semantic routine for a decoded, fetched instruction and
// returns its CPU-cycle cost. This is the single dispatch point grouping
// the per-opcode routines defined across the instructions_*.go files by
// family (arithmetic, logical, shifts, load/store, branches, jumps/calls,
// incr/decr, transfers, stack, status flags, system).
func (c *CPU) execute(instr Instruction) byte {
	switch instr.Opcode {
	case ADC:
		return c.execADC(instr)
	case SBC:
		return c.execSBC(instr)
	case CMP:
		return c.execCompare(instr, c.A)
	case CPX:
		return c.execCompare(instr, c.X)
	case CPY:
		return c.execCompare(instr, c.Y)
	case AND:
		return c.execLogical(instr, func(a, m byte) byte { return a & m })
	case ORA:
		return c.execLogical(instr, func(a, m byte) byte { return a | m })
	case EOR:
		return c.execLogical(instr, func(a, m byte) byte { return a ^ m })
	case BIT:
		return c.execBIT(instr)
	case ASL:
		return c.execShift(instr, shiftASL)
	case LSR:
		return c.execShift(instr, shiftLSR)
	case ROL:
		return c.execShift(instr, shiftROL)
	case ROR:
		return c.execShift(instr, shiftROR)
	case LDA:
		return c.execLoad(instr, &c.A)
	case LDX:
		return c.execLDX(instr)
	case LDY:
		return c.execLDY(instr)
	case STA:
		return c.execStore(instr, c.A)
	case STX:
		return c.execSTX(instr)
	case STY:
		return c.execStore(instr, c.Y)
	case INC:
		return c.execIncDecMemory(instr, 1)
	case DEC:
		return c.execIncDecMemory(instr, ^byte(0))
	case INX:
		c.X++
		c.P.SetNZ(c.X)
		return 2
	case INY:
		c.Y++
		c.P.SetNZ(c.Y)
		return 2
	case DEX:
		c.X--
		c.P.SetNZ(c.X)
		return 2
	case DEY:
		c.Y--
		c.P.SetNZ(c.Y)
		return 2
	case TAX:
		c.X = c.A
		c.P.SetNZ(c.X)
		return 2
	case TAY:
		c.Y = c.A
		c.P.SetNZ(c.Y)
		return 2
	case TXA:
		c.A = c.X
		c.P.SetNZ(c.A)
		return 2
	case TYA:
		c.A = c.Y
		c.P.SetNZ(c.A)
		return 2
	case TSX:
		c.X = c.S
		c.P.SetNZ(c.X)
		return 2
	case TXS:
		c.S = c.X
		return 2
	case BCC:
		return c.execBranch(instr, !c.P.Carry())
	case BCS:
		return c.execBranch(instr, c.P.Carry())
	case BEQ:
		return c.execBranch(instr, c.P.Zero())
	case BNE:
		return c.execBranch(instr, !c.P.Zero())
	case BMI:
		return c.execBranch(instr, c.P.Negative())
	case BPL:
		return c.execBranch(instr, !c.P.Negative())
	case BVC:
		return c.execBranch(instr, !c.P.Overflow())
	case BVS:
		return c.execBranch(instr, c.P.Overflow())
	case JMP:
		return c.execJMP(instr)
	case JSR:
		return c.execJSR(instr)
	case RTS:
		return c.execRTS()
	case PHA:
		c.push(c.A)
		return 3
	case PHP:
		return c.execPHP()
	case PLA:
		c.A = c.pop()
		c.P.SetNZ(c.A)
		return 4
	case PLP:
		return c.execPLP()
	case CLC:
		c.P.SetCarry(false)
		return 2
	case SEC:
		c.P.SetCarry(true)
		return 2
	case CLI:
		c.P.SetInterrupt(false)
		return 2
	case SEI:
		c.P.SetInterrupt(true)
		return 2
	case CLV:
		c.P.SetOverflow(false)
		return 2
	case CLD:
		c.P.SetDecimal(false)
		return 2
	case SED:
		c.P.SetDecimal(true)
		return 2
	case BRK:
		return c.interruptDispatch(Inactive)
	case RTI:
		return c.execRTI()
	case NOP:
		return 2
	}
	return 0
}
