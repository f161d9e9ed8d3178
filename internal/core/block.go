// Package core implements the Argon2 memory-hard engine: block
// representation, the BlaMka-based compression permutation, the
// data-dependent/data-independent indexing engine, and the
// pass/segment/lane fill driver described by RFC 9106.
package core

import (
	"encoding/binary"
)

// Block size constants from the Argon2 specification.
const (
	// BlockSize is the size of an Argon2 memory block in bytes (1024 bytes).
	BlockSize = 1024

	// QWordsInBlock is the number of 64-bit words in a block (1024 / 8).
	QWordsInBlock = 128
)

// Block represents a 1024-byte Argon2 memory block as an array of 128
// uint64 values, viewed as an 8x16 matrix of 64-bit words during the
// compression permutation.
type Block [QWordsInBlock]uint64

// XOR performs an in-place XOR of this block with another block.
func (b *Block) XOR(other *Block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// Copy copies data from another block into this block.
func (b *Block) Copy(other *Block) {
	*b = *other
}

// Zero clears all data in the block. Called on every auxiliary buffer
// before a call returns, per the zeroization invariant.
func (b *Block) Zero() {
	for i := range b {
		b[i] = 0
	}
}

// FromBytes loads a block from a byte slice of exactly BlockSize bytes,
// interpreted as 128 little-endian uint64 values.
func (b *Block) FromBytes(data []byte) {
	for i := 0; i < QWordsInBlock; i++ {
		b[i] = binary.LittleEndian.Uint64(data[i*8 : (i+1)*8])
	}
}

// ToBytes encodes the block into dst, which must be at least BlockSize
// bytes long, as 128 little-endian uint64 values.
func (b *Block) ToBytes(dst []byte) {
	for i := 0; i < QWordsInBlock; i++ {
		binary.LittleEndian.PutUint64(dst[i*8:(i+1)*8], b[i])
	}
}
