// Package mapper defines the memory collaborator the cpu package depends on
// and provides a flat RAM-backed implementation suitable for tests and for
// cmd/nesstep. The core never models the NES memory map, mirrors, or I/O
// registers; any of that is the Mapper implementation's problem.
package mapper

// Mapper is the only memory interface the CPU core depends on. Addresses
// are raw 16-bit values; side effects on read or write (bank switching,
// mirrored I/O registers, open-bus behavior) belong entirely to the
// implementation.
type Mapper interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// RAM is a flat 64KB memory bank with no mirroring and no side effects on
// access, grounded on the teacher's 8-bit RAM bank.
type RAM struct {
	cells [65536]byte
}

// New returns a zeroed 64KB RAM-backed Mapper.
func New() *RAM {
	return &RAM{}
}

func (r *RAM) Read(address uint16) byte {
	return r.cells[address]
}

func (r *RAM) Write(address uint16, value byte) {
	r.cells[address] = value
}

// Load copies data into RAM starting at address, wrapping addresses modulo
// 65536 the same way the CPU's own address arithmetic does. It is a test
// and tooling convenience, not part of the Mapper interface.
func (r *RAM) Load(address uint16, data []byte) {
	for i, b := range data {
		r.cells[address+uint16(i)] = b
	}
}
