package argon2

import (
	"math"
	"time"

	"github.com/opd-ai/go-argon2/internal/core"
)

// Version identifies an Argon2 wire-format version.
type Version uint32

const (
	// Version10 is the original Argon2 version (0x10): fillBlock always
	// overwrites its output slot, even on passes after the first.
	Version10 Version = 0x10
	// Version13 is the current Argon2 version (0x13), the default: from
	// the second pass onward fillBlock XORs into the existing contents
	// of its output slot instead of overwriting it.
	Version13 Version = 0x13
)

const (
	minSaltLen       = 8
	defaultDKLen     = 32
	defaultMaxMem    = math.MaxUint32
	defaultAsyncTick = 10 * time.Millisecond
	maxParallelism   = 1 << 24
	maxInputLen      = math.MaxUint32
)

// Options configures an Argon2 invocation. Time, Memory, and
// Parallelism are required; every other field has the zero-value
// default noted below.
type Options struct {
	// Time is the iteration count t (RFC 9106 section 3.1: t >= 1).
	Time uint32
	// Memory is the memory cost m in KiB (m >= 8*Parallelism).
	Memory uint32
	// Parallelism is the lane count p (1 <= p < 2^24).
	Parallelism uint32

	// DKLen is the output length in bytes. Zero means the default, 32.
	DKLen uint32
	// Version is the wire-format version. Zero means the default,
	// Version13.
	Version Version
	// Key is an optional secret byte string mixed into H0.
	Key []byte
	// Personalization is optional associated data mixed into H0 (the
	// RFC 9106 "X" field).
	Personalization []byte
	// MaxMem bounds m'*1024; a request that would exceed it fails
	// before any allocation. Zero means the default, 2^32-1.
	MaxMem uint64
	// AsyncTick is the cooperative yield budget used by the *Async
	// entry points. Zero means the default, 10ms.
	AsyncTick time.Duration
	// OnProgress, if non-nil, is called with a fraction in [0,1]
	// roughly every ceil(totalBlocks/10000) blocks, with a final call
	// at exactly 1.0.
	OnProgress func(fraction float64)
}

func (o Options) dkLen() uint32 {
	if o.DKLen == 0 {
		return defaultDKLen
	}
	return o.DKLen
}

func (o Options) version() Version {
	if o.Version == 0 {
		return Version13
	}
	return o.Version
}

func (o Options) maxMem() uint64 {
	if o.MaxMem == 0 {
		return defaultMaxMem
	}
	return o.MaxMem
}

func (o Options) asyncTick() time.Duration {
	if o.AsyncTick == 0 {
		return defaultAsyncTick
	}
	return o.AsyncTick
}

// Validate checks every precondition on the Argon2 inputs (RFC 9106
// section 3.1) and returns the first violated one, before any heavy
// allocation — mirroring randomx.Config.Validate's "check before New
// allocates" shape.
func (o Options) Validate(password, salt []byte) error {
	if o.Parallelism < 1 || o.Parallelism >= maxParallelism {
		return ErrInvalidParallelism
	}
	if o.Time < 1 {
		return ErrInvalidIterations
	}
	if o.Memory < 8*o.Parallelism {
		return ErrInvalidMemory
	}
	dk := o.dkLen()
	if dk < 4 {
		return ErrInvalidDkLen
	}
	v := o.version()
	if v != Version10 && v != Version13 {
		return ErrInvalidVersion
	}
	if len(salt) < minSaltLen {
		return ErrInvalidSalt
	}
	if uint64(len(password)) >= maxInputLen || uint64(len(salt)) >= maxInputLen ||
		uint64(len(o.Key)) >= maxInputLen || uint64(len(o.Personalization)) >= maxInputLen {
		return ErrInputTooLarge
	}

	totalBlocks := roundedBlocks(o.Memory, o.Parallelism)
	if uint64(totalBlocks)*core.BlockSize > o.maxMem() {
		return ErrMemoryBudgetExceeded
	}

	return nil
}

// roundedBlocks computes m' = 4*p*floor(m/(4*p)), the usable block
// count after rounding m down to a multiple of 4*p (RFC 9106 section
// 3.1).
func roundedBlocks(memoryKB, lanes uint32) uint32 {
	step := 4 * lanes
	return step * (memoryKB / step)
}
