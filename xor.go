// Completion: 100% - Bitwise XOR complete
package main

func NewXorRegReg(dst, src Register) Instruction {
	return Instruction{Kind: IKXorRegReg, Reg: dst, Reg2: src}
}
