// Completion: 100% - Bitwise AND complete
package main

func NewAndRegReg(dst, src Register) Instruction {
	return Instruction{Kind: IKAndRegReg, Reg: dst, Reg2: src}
}
