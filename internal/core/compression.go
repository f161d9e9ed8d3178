package core

// permute applies the Argon2 permutation P to a 1024-byte block viewed
// as an 8x16 matrix of 64-bit words: one gRound per row, then one
// gRound per (interleaved) column. This is the "P" of RFC 9106 section
// 3.4, built from eight Ga applications per row/column exactly as
// Blake2b's own round function is.
func permute(r *Block) {
	// Row pass: each of the 8 rows is 16 contiguous words.
	for i := 0; i < 8; i++ {
		var row [16]uint64
		copy(row[:], r[16*i:16*i+16])
		gRound(&row)
		copy(r[16*i:16*i+16], row[:])
	}

	// Column pass: each "column" group gathers two adjacent words from
	// each of the 8 rows (the block is row-major, so a true column walk
	// strides by 16).
	for i := 0; i < 8; i++ {
		var col [16]uint64
		idx := [16]int{
			2 * i, 2*i + 1,
			2*i + 16, 2*i + 17,
			2*i + 32, 2*i + 33,
			2*i + 48, 2*i + 49,
			2*i + 64, 2*i + 65,
			2*i + 80, 2*i + 81,
			2*i + 96, 2*i + 97,
			2*i + 112, 2*i + 113,
		}
		for j, k := range idx {
			col[j] = r[k]
		}
		gRound(&col)
		for j, k := range idx {
			r[k] = col[j]
		}
	}
}

// fillBlock is the Argon2 block function G(X, Y) -> out (RFC 9106
// section 3.4):
//
//  1. R := X xor Y
//  2. apply the permutation P to R (row pass, then column pass)
//  3. out := R xor X xor Y, optionally XORed into the previous
//     contents of out when needXor is set (version 0x13, pass r >= 1)
func fillBlock(x, y, out *Block, needXor bool) {
	var r, z Block
	r = *x
	r.XOR(y)
	z = r

	permute(&r)

	r.XOR(&z)

	if needXor {
		r.XOR(out)
	}
	*out = r

	z.Zero()
}
