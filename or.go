// Completion: 100% - Bitwise OR complete
package main

func NewOrRegReg(dst, src Register) Instruction {
	return Instruction{Kind: IKOrRegReg, Reg: dst, Reg2: src}
}
