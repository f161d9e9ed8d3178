package argon2

import "errors"

// Error kinds returned by Options.Validate and the variant constructors.
// Every precondition on the Argon2 inputs (RFC 9106 section 3.1) maps
// to a distinct sentinel so callers can react with errors.Is rather
// than string matching. ErrInvalidProgressCallback is declared but never
// returned: OnProgress is typed func(float64), so a value that is not
// callable is rejected at compile time.
var (
	ErrInvalidDkLen            = errors.New("argon2: invalid output length")
	ErrInvalidParallelism      = errors.New("argon2: invalid parallelism")
	ErrInvalidMemory           = errors.New("argon2: invalid memory cost")
	ErrInvalidIterations       = errors.New("argon2: invalid iteration count")
	ErrInvalidVersion          = errors.New("argon2: invalid version")
	ErrInvalidType             = errors.New("argon2: invalid variant")
	ErrInvalidSalt             = errors.New("argon2: invalid salt")
	ErrInputTooLarge           = errors.New("argon2: input too large")
	ErrMemoryBudgetExceeded    = errors.New("argon2: memory budget exceeded")
	ErrInvalidProgressCallback = errors.New("argon2: invalid progress callback")
)
