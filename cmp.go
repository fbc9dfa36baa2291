// Completion: 100% - Compare (register and immediate forms) complete
package main

func NewCmpRegReg(dst, src Register) Instruction {
	return Instruction{Kind: IKCmpRegReg, Reg: dst, Reg2: src}
}

func NewCmpImmediate(reg Register, val Value) Instruction {
	return Instruction{Kind: IKCmpImmediate, Reg: reg, Val: val}
}
