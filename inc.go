// Completion: 100% - Increment instruction complete
package main

func lenIncDec(i Instruction) int {
	n := 1
	if is16(i.Reg) {
		n++
	}
	return n
}

func encodeInc(i Instruction) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	return append(out, 0x40+i.Reg.Index)
}

func NewInc(reg Register) Instruction {
	return Instruction{Kind: IKInc, Reg: reg}
}
