// Completion: 100% - Program model and label resolution complete
package main

import "fmt"

// Program is an ordered list of named blocks. Concatenating each
// block's encoded bytes in declaration order produces the loadable
// segment (spec.md §3, Program invariants).
type Program struct {
	LoadOffset Addr
	EntryLabel string
	EntryPoint Addr
	Blocks     []Block

	labels map[string]Addr
}

// NewProgram constructs an empty program with the default entry label.
func NewProgram() *Program {
	return &Program{EntryLabel: "__entry_point__"}
}

// NewBlock appends a new, empty block and returns its index.
func (p *Program) NewBlock(label string) int {
	p.Blocks = append(p.Blocks, Block{Label: label})
	return len(p.Blocks) - 1
}

// Len returns the total encoded length of the program in bytes.
func (p *Program) Len() int {
	total := 0
	for _, b := range p.Blocks {
		total += b.Len()
	}
	return total
}

// ResolveLabels performs the single forward pass that places every
// label: because instruction Len() never depends on a resolved value,
// summing lengths block by block is enough to know every label's final
// address before any bytes are emitted (spec.md §4.4, §5).
func (p *Program) ResolveLabels() {
	p.labels = make(map[string]Addr, len(p.Blocks))
	cursor := p.LoadOffset
	for _, b := range p.Blocks {
		p.labels[b.Label] = cursor
		cursor = cursor.Add(uint64(b.Len()))
	}
}

// GetAddress looks up the resolved address of label. Returns false if
// ResolveLabels hasn't been run yet or the label doesn't exist.
func (p *Program) GetAddress(label string) (Addr, bool) {
	addr, ok := p.labels[label]
	return addr, ok
}

// ResolveEntryPoint looks up EntryLabel and records its address as
// EntryPoint. Must run after ResolveLabels.
func (p *Program) ResolveEntryPoint() error {
	addr, ok := p.GetAddress(p.EntryLabel)
	if !ok {
		return fmt.Errorf("entry point label %q was never defined", p.EntryLabel)
	}
	p.EntryPoint = addr
	return nil
}

// AsBytes performs the second pass: walk every block and instruction in
// the same order ResolveLabels walked them, advancing a running
// end-address and emitting each instruction against it.
func (p *Program) AsBytes(diags *Diagnostics) []byte {
	p.ResolveLabels()

	out := make([]byte, 0, p.Len())
	cursor := p.LoadOffset
	for bi := range p.Blocks {
		for _, instr := range p.Blocks[bi].Instructions {
			cursor = cursor.Add(uint64(instr.Len()))
			out = append(out, instr.Encode(p, cursor, diags)...)
		}
	}
	return out
}
