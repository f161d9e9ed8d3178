package core

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// HPrime is Argon2's variable-length hash H' (RFC 9106 section 3.1): it
// produces exactly dkLen bytes of output from input. Short outputs
// (dkLen <= 64) are a single BLAKE2b call; longer outputs chain BLAKE2b
// calls together, each contributing 32 bytes, with the final call
// sized to produce exactly the bytes still owed.
func HPrime(input []byte, dkLen uint32) []byte {
	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], dkLen)

	if dkLen <= 64 {
		h, err := blake2b.New(int(dkLen), nil)
		if err != nil {
			panic("core: blake2b.New failed for a valid output length: " + err.Error())
		}
		h.Write(lenPrefix[:])
		h.Write(input)
		return h.Sum(nil)
	}

	out := make([]byte, dkLen)

	h, _ := blake2b.New512(nil)
	h.Write(lenPrefix[:])
	h.Write(input)
	v := h.Sum(nil)
	pos := copy(out, v[:32])

	for dkLen-uint32(pos) > 64 {
		h, _ := blake2b.New512(nil)
		h.Write(v)
		v = h.Sum(nil)
		pos += copy(out[pos:], v[:32])
	}

	remaining := dkLen - uint32(pos)
	h, _ = blake2b.New(int(remaining), nil)
	h.Write(v)
	copy(out[pos:], h.Sum(nil))

	return out
}
