// Package disassemble implements a disassembler for the 56 documented
// 6502 mnemonics this module's cpu package decodes and executes.
package disassemble

import (
	"fmt"

	"github.com/fekie/nes6502/cpu"
	"github.com/fekie/nes6502/mapper"
)

// Step disassembles the instruction at pc and returns its text along with
// the number of bytes the PC should advance to reach the next instruction.
// It does not interpret control flow -- JMP/JSR targets are printed, not
// followed. This always reads up to two bytes past pc, so the caller must
// ensure those addresses are valid reads (a flat RAM Mapper always is).
// An undecodable byte disassembles as ".byte $xx" and advances by one.
func Step(pc uint16, m mapper.Mapper) (string, int) {
	opcodeByte := m.Read(pc)
	full, ok := cpu.Decode(opcodeByte)
	if !ok {
		return fmt.Sprintf("%04X  %02X        .byte $%02X", pc, opcodeByte, opcodeByte), 1
	}

	length := int(full.AddressingMode.BytesRequired())
	if full.Opcode == cpu.BRK {
		length = 2
	}

	mnemonic := full.Opcode.String()
	switch full.AddressingMode {
	case cpu.Accumulator:
		return fmt.Sprintf("%04X  %02X        %s A", pc, opcodeByte, mnemonic), length
	case cpu.Implied:
		return fmt.Sprintf("%04X  %02X        %s", pc, opcodeByte, mnemonic), length
	}

	low := m.Read(pc + 1)
	if length == 2 {
		operand := formatOperand(full.AddressingMode, low)
		return fmt.Sprintf("%04X  %02X %02X     %s %s", pc, opcodeByte, low, mnemonic, operand), length
	}

	high := m.Read(pc + 2)
	operand := formatOperand16(full.AddressingMode, low, high)
	return fmt.Sprintf("%04X  %02X %02X %02X  %s %s", pc, opcodeByte, low, high, mnemonic, operand), length
}

func formatOperand(mode cpu.AddressingMode, low byte) string {
	switch mode {
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", low)
	case cpu.Zeropage:
		return fmt.Sprintf("$%02X", low)
	case cpu.ZeropageXIndexed:
		return fmt.Sprintf("$%02X,X", low)
	case cpu.ZeropageYIndexed:
		return fmt.Sprintf("$%02X,Y", low)
	case cpu.IndirectXIndexed:
		return fmt.Sprintf("($%02X,X)", low)
	case cpu.IndirectYIndexed:
		return fmt.Sprintf("($%02X),Y", low)
	case cpu.Relative:
		return fmt.Sprintf("$%02X", low)
	}
	return fmt.Sprintf("$%02X", low)
}

func formatOperand16(mode cpu.AddressingMode, low, high byte) string {
	addr := uint16(high)<<8 | uint16(low)
	switch mode {
	case cpu.Absolute:
		return fmt.Sprintf("$%04X", addr)
	case cpu.AbsoluteXIndexed:
		return fmt.Sprintf("$%04X,X", addr)
	case cpu.AbsoluteYIndexed:
		return fmt.Sprintf("$%04X,Y", addr)
	case cpu.Indirect:
		return fmt.Sprintf("($%04X)", addr)
	}
	return fmt.Sprintf("$%04X", addr)
}
