// Completion: 100% - Divide complete
package main

func NewDiv(reg Register) Instruction {
	return Instruction{Kind: IKDiv, Reg: reg}
}
