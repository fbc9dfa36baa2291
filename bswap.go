// Completion: 100% - Byte-swap (bswap) complete
package main

func lenByteSwap(i Instruction) int { return 2 }

func encodeByteSwap(i Instruction) []byte {
	return []byte{0x0F, 0xC8 + i.Reg.Index}
}

func NewByteSwap(reg Register) Instruction {
	return Instruction{Kind: IKByteSwap, Reg: reg}
}
