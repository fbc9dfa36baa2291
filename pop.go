// Completion: 100% - Pop complete
package main

func encodePop(i Instruction) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	return append(out, 0x58+i.Reg.Index)
}

func NewPop(reg Register) Instruction {
	return Instruction{Kind: IKPop, Reg: reg}
}
