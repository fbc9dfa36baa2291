// Completion: 100% - Multiply complete
package main

func lenMulDiv(i Instruction) int {
	n := 2
	if is16(i.Reg) {
		n++
	}
	return n
}

func encodeMulDiv(digit uint8, i Instruction) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	opcode := byte(0xF7)
	if i.Reg.Bits == 8 {
		opcode = 0xF6
	}
	out = append(out, opcode, modRMRegister(digit, i.Reg.Index))
	return out
}

func NewMul(reg Register) Instruction {
	return Instruction{Kind: IKMul, Reg: reg}
}
