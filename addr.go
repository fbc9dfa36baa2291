// Completion: 100% - Address pair complete
package main

// Addr carries a file offset and a virtual address together. The ELF
// load model maps file offset to vaddr with a constant bias, so every
// instruction's placement advances both components in lockstep.
type Addr struct {
	FileOffset uint64
	VAddr      uint64
}

// Add returns a new Addr with both components advanced by n.
func (a Addr) Add(n uint64) Addr {
	return Addr{
		FileOffset: a.FileOffset + n,
		VAddr:      a.VAddr + n,
	}
}

// AddUint32 is a convenience wrapper around Add for 32-bit lengths.
func (a Addr) AddUint32(n uint32) Addr {
	return a.Add(uint64(n))
}
