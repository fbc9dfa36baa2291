// Completion: 100% - Sub (register and immediate forms) complete
package main

func NewSubRegReg(dst, src Register) Instruction {
	return Instruction{Kind: IKSubRegReg, Reg: dst, Reg2: src}
}

func NewSubImmediate(reg Register, val Value) Instruction {
	return Instruction{Kind: IKSubImmediate, Reg: reg, Val: val}
}
