// Completion: 100% - Return complete
package main

func lenReturn(i Instruction) int { return 1 }

func encodeReturn(i Instruction) []byte { return []byte{0xC3} }

func NewReturn() Instruction {
	return Instruction{Kind: IKReturn}
}
