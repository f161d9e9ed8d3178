package core

// g implements the BlaMka-mixing variant of Blake2b's G function used by
// the Argon2 compression permutation P.
//
// Argon2 replaces Blake2b's integer addition with fBlaMka(a, b) = a + b +
// 2*lo32(a)*lo32(b), which feeds more state into the rotation chain than
// plain addition. Like addition, it maps an all-zero input to zero.
//
// Reference: RFC 9106 section 3.5 (the "G" function, Figure 2).
func g(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = blaMka(a, b)
	d = rotr64(d^a, 32)
	c = blaMka(c, d)
	b = rotr64(b^c, 24)

	a = blaMka(a, b)
	d = rotr64(d^a, 16)
	c = blaMka(c, d)
	b = rotr64(b^c, 63)

	return a, b, c, d
}

// blaMka computes A + B + 2*lo32(A)*lo32(B) mod 2^64 (RFC 9106 section 3.5).
func blaMka(a, b uint64) uint64 {
	return a + b + 2*uint64(uint32(a))*uint64(uint32(b))
}

// rotr64 rotates x right by n bits.
func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// gRound applies g to the 16-word group v following Blake2b's mixing
// pattern: four column applications, then four diagonal applications.
func gRound(v *[16]uint64) {
	v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14])
}
