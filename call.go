// Completion: 100% - Direct and register-indirect call complete
package main

func lenCall(i Instruction) int { return 5 }

func encodeCall(i Instruction, resolver AddressResolver, endAddr Addr, diags *Diagnostics) []byte {
	out := []byte{0xE8}
	out = append(out, i.Val.AsBytes(resolver, endAddr, diags)...)
	return out
}

func NewCall(target Value) Instruction {
	return Instruction{Kind: IKCall, Val: target}
}

func lenCallRegister(i Instruction) int { return 2 }

func encodeCallRegister(i Instruction) []byte {
	return []byte{0xFF, modRMRegister(2, i.Reg.Index)}
}

func NewCallRegister(reg Register) Instruction {
	return Instruction{Kind: IKCallRegister, Reg: reg}
}
