package core

// Variant selects the Argon2 addressing mode.
type Variant uint32

const (
	// Argon2d uses data-dependent addressing only (fastest, vulnerable
	// to side-channel timing attacks on the memory access pattern).
	Argon2d Variant = 0
	// Argon2i uses data-independent addressing only (slower, resistant
	// to side-channel timing attacks).
	Argon2i Variant = 1
	// Argon2id hybridizes the two: data-independent for the first two
	// segments of the first pass, data-dependent afterward.
	Argon2id Variant = 2
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Argon2d:
		return "Argon2d"
	case Argon2i:
		return "Argon2i"
	case Argon2id:
		return "Argon2id"
	default:
		return "Argon2(unknown)"
	}
}

// dataIndependent reports whether block (pass, slice) uses the
// data-independent (address-block-derived) indexing path for variant v.
func dataIndependent(v Variant, pass, slice uint32) bool {
	switch v {
	case Argon2i:
		return true
	case Argon2id:
		return pass == 0 && slice < SyncPoints/2
	default:
		return false
	}
}
