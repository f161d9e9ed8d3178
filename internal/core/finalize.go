package core

// Finalize XOR-accumulates the last block of every lane and runs H'
// over the result to produce the dkLen-byte tag (RFC 9106 section
// 3.4, "Finalization"). The accumulator is zeroed before returning.
func Finalize(m *Matrix, dkLen uint32) []byte {
	var acc Block
	acc = *m.At(0, m.LaneLen-1)
	for lane := uint32(1); lane < m.Lanes; lane++ {
		acc.XOR(m.At(lane, m.LaneLen-1))
	}

	var buf [BlockSize]byte
	acc.ToBytes(buf[:])
	tag := HPrime(buf[:], dkLen)

	acc.Zero()
	zero(buf[:])

	return tag
}
