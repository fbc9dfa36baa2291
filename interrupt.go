// Completion: 100% - Interrupt instruction complete
package main

// Int is the `int imm8` software interrupt: `CD ib`.
func lenInt(i Instruction) int { return 2 }

func encodeInt(i Instruction) []byte {
	return []byte{0xCD, i.IntNo}
}

func NewInt(vec uint8) Instruction {
	return Instruction{Kind: IKInt, IntNo: vec}
}
