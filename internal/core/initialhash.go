package core

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// InitialHash computes H0, the 64-byte seed for the whole matrix (RFC
// 9106 section 3.2):
//
//	H0 = Blake2b(LE32(p) || LE32(dkLen) || LE32(m) || LE32(t) ||
//	             LE32(version) || LE32(type) ||
//	             LE32(len(password)) || password ||
//	             LE32(len(salt)) || salt ||
//	             LE32(len(secret)) || secret ||
//	             LE32(len(data)) || data)
func InitialHash(lanes, dkLen, memoryKB, iterations, version uint32, variant Variant, password, salt, secret, data []byte) [64]byte {
	h, _ := blake2b.New512(nil)

	var hdr [24]byte
	binary.LittleEndian.PutUint32(hdr[0:4], lanes)
	binary.LittleEndian.PutUint32(hdr[4:8], dkLen)
	binary.LittleEndian.PutUint32(hdr[8:12], memoryKB)
	binary.LittleEndian.PutUint32(hdr[12:16], iterations)
	binary.LittleEndian.PutUint32(hdr[16:20], version)
	binary.LittleEndian.PutUint32(hdr[20:24], uint32(variant))
	h.Write(hdr[:])

	writeField(h, password)
	writeField(h, salt)
	writeField(h, secret)
	writeField(h, data)

	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// writeField writes a length-prefixed byte field: LE32(len(b)) || b.
func writeField(h hash.Hash, b []byte) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(b)))
	h.Write(lenBuf[:])
	if len(b) > 0 {
		h.Write(b)
	}
}
