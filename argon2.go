// Package argon2 implements the Argon2 memory-hard password-hashing
// and key-derivation function (RFC 9106) in its three variants —
// Argon2d, Argon2i, and Argon2id — across both wire versions, 0x10 and
// 0x13.
//
// Argon2d uses data-dependent memory addressing: fast, and the
// strongest against GPU/ASIC cracking, but its access pattern leaks
// through cache-timing side channels, so it is meant for
// non-interactive settings (cryptocurrency PoW, backend KDFs on
// trusted hardware) rather than for hashing a password typed on a
// machine shared with an attacker.
//
// Argon2i uses data-independent addressing and is the side-channel
// resistant choice for interactive password hashing, at the cost of
// more passes for equivalent security.
//
// Argon2id hybridizes the two: data-independent for the first half of
// the first pass, data-dependent after, and is the variant recommended
// by RFC 9106 when there is no strong reason to prefer one of the
// others.
package argon2

import (
	"github.com/opd-ai/go-argon2/internal/core"
)

// Variant names the three Argon2 addressing modes.
type Variant = core.Variant

const (
	TypeArgon2d  = core.Argon2d
	TypeArgon2i  = core.Argon2i
	TypeArgon2id = core.Argon2id
)

// Argon2d derives a key using data-dependent addressing.
func Argon2d(password, salt []byte, opts Options) ([]byte, error) {
	return Key(TypeArgon2d, password, salt, opts)
}

// Argon2i derives a key using data-independent addressing.
func Argon2i(password, salt []byte, opts Options) ([]byte, error) {
	return Key(TypeArgon2i, password, salt, opts)
}

// Argon2id derives a key using the hybrid addressing mode.
func Argon2id(password, salt []byte, opts Options) ([]byte, error) {
	return Key(TypeArgon2id, password, salt, opts)
}

// Key derives a key for the given variant. It is the common entry
// point behind Argon2d/Argon2i/Argon2id and lets a caller select the
// variant at runtime — e.g. from parameters recorded alongside a
// previously stored hash.
func Key(variant Variant, password, salt []byte, opts Options) ([]byte, error) {
	if variant != TypeArgon2d && variant != TypeArgon2i && variant != TypeArgon2id {
		return nil, ErrInvalidType
	}
	if err := opts.Validate(password, salt); err != nil {
		return nil, err
	}

	tag, _ := run(variant, password, salt, opts, progressHook(opts.OnProgress))
	return tag, nil
}
