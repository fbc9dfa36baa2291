// Completion: 100% - Shift-left complete
package main

func lenShift(i Instruction) int {
	n := 3
	if is16(i.Reg) {
		n++
	}
	return n
}

func encodeShift(digit uint8, i Instruction) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	opcode := byte(0xC1)
	if i.Reg.Bits == 8 {
		opcode = 0xC0
	}
	out = append(out, opcode, modRMRegister(digit, i.Reg.Index), i.Shift)
	return out
}

func NewShl(reg Register, count uint8) Instruction {
	return Instruction{Kind: IKShl, Reg: reg, Shift: count}
}
