// Completion: 100% - Operand value model complete
package main

import "fmt"

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	ValUByte ValueKind = iota
	ValUShort
	ValUInt
	ValULong
	ValPointer
	ValRelPointer
)

// Value is a tagged immediate used as an instruction operand. Typed
// immediates serialize little-endian at their natural width; Pointer and
// RelPointer are symbolic references resolved against the program's
// label table at emission time.
type Value struct {
	Kind   ValueKind
	UByte  uint8
	UShort uint16
	UInt   uint32
	ULong  uint64
	Name   string // label name for Pointer / RelPointer
}

func NewUByte(v uint8) Value   { return Value{Kind: ValUByte, UByte: v} }
func NewUShort(v uint16) Value { return Value{Kind: ValUShort, UShort: v} }
func NewUInt(v uint32) Value   { return Value{Kind: ValUInt, UInt: v} }
func NewULong(v uint64) Value  { return Value{Kind: ValULong, ULong: v} }
func NewPointer(name string) Value {
	return Value{Kind: ValPointer, Name: name}
}
func NewRelPointer(name string) Value {
	return Value{Kind: ValRelPointer, Name: name}
}

// Len returns the serialized byte length of the value. It depends only
// on the tag, never on a resolved address, which is what lets the
// program layout pass be a single forward walk.
func (v Value) Len() int {
	switch v.Kind {
	case ValUByte:
		return 1
	case ValUShort:
		return 2
	case ValUInt:
		return 4
	case ValULong:
		return 8
	case ValPointer:
		return 4
	case ValRelPointer:
		return 4
	default:
		return 0
	}
}

// AddressResolver looks up the address of a label. Implemented by Program.
type AddressResolver interface {
	GetAddress(label string) (Addr, bool)
}

// AsBytes serializes the value to exactly Len() bytes. endAddr is the
// address immediately after the instruction currently being emitted —
// the Intel semantics of E9/0F 8x relative displacements.
func (v Value) AsBytes(resolver AddressResolver, endAddr Addr, diags *Diagnostics) []byte {
	switch v.Kind {
	case ValUByte:
		return []byte{v.UByte}
	case ValUShort:
		b := dumpWord(v.UShort, LittleEndian)
		return b[:]
	case ValUInt:
		b := dumpDword(v.UInt, LittleEndian)
		return b[:]
	case ValULong:
		b := dumpQword(v.ULong, LittleEndian)
		return b[:]
	case ValPointer:
		addr, ok := resolver.GetAddress(v.Name)
		if !ok {
			if diags != nil {
				diags.AddWarning(fmt.Sprintf("unknown label %q referenced as a pointer; substituting address 0", v.Name))
			}
			addr = Addr{}
		}
		b := dumpDword(uint32(addr.VAddr), LittleEndian)
		return b[:]
	case ValRelPointer:
		addr, ok := resolver.GetAddress(v.Name)
		if !ok {
			if diags != nil {
				diags.AddWarning(fmt.Sprintf("unknown label %q referenced as a jump/call target; substituting displacement 0", v.Name))
			}
			addr = Addr{FileOffset: endAddr.FileOffset}
		}
		rel := int32(int64(addr.FileOffset) - int64(endAddr.FileOffset))
		b := dumpDword(uint32(rel), LittleEndian)
		return b[:]
	default:
		return nil
	}
}
