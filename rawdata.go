// Completion: 100% - Raw data pseudo-instruction complete
package main

// RawData holds the verbatim bytes produced by the data
// pseudo-instructions (db/dw/dl/ds); its length is simply len(bytes).
func lenRawData(i Instruction) int { return len(i.Raw) }

func encodeRawData(i Instruction) []byte {
	out := make([]byte, len(i.Raw))
	copy(out, i.Raw)
	return out
}

// NewRawData constructs a RawData instruction from already-serialized
// bytes (the code generator lowers db/dw/dl/ds directly to this).
func NewRawData(b []byte) Instruction {
	return Instruction{Kind: IKRawData, Raw: b}
}
