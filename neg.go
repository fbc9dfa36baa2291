// Completion: 100% - Negate complete
package main

func NewNeg(reg Register) Instruction {
	return Instruction{Kind: IKNeg, Reg: reg}
}
