// Completion: 100% - Push complete
package main

func lenPushPop(i Instruction) int {
	n := 1
	if is16(i.Reg) {
		n++
	}
	return n
}

func encodePush(i Instruction) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	return append(out, 0x50+i.Reg.Index)
}

func NewPush(reg Register) Instruction {
	return Instruction{Kind: IKPush, Reg: reg}
}
