// Completion: 100% - Shift-right complete
package main

func NewShr(reg Register, count uint8) Instruction {
	return Instruction{Kind: IKShr, Reg: reg, Shift: count}
}
