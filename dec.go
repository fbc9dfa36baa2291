// Completion: 100% - Decrement instruction complete
package main

func encodeDec(i Instruction) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	return append(out, 0x48+i.Reg.Index)
}

func NewDec(reg Register) Instruction {
	return Instruction{Kind: IKDec, Reg: reg}
}
