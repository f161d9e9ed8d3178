package argon2

import (
	"context"
	"runtime"
	"time"

	"github.com/opd-ai/go-argon2/internal/core"
)

// Future is the eventual result of a cooperative Argon2 computation,
// realized as a worker goroutine signaling completion over a channel —
// the same shape as randomx.Hasher's RWMutex-guarded state and
// dataset.go's worker pool, scaled down to a single worker.
type Future struct {
	done   chan struct{}
	result []byte
	err    error
}

// Wait blocks until the computation finishes or ctx is done, whichever
// comes first. A canceled ctx does not retroactively cancel the
// worker — call the context passed to the *Async constructor for that.
func (f *Future) Wait(ctx context.Context) ([]byte, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done returns a channel closed once the computation finishes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Argon2dAsync starts a cooperative Argon2d computation and returns
// immediately with a Future.
func Argon2dAsync(ctx context.Context, password, salt []byte, opts Options) (*Future, error) {
	return KeyAsync(ctx, TypeArgon2d, password, salt, opts)
}

// Argon2iAsync starts a cooperative Argon2i computation and returns
// immediately with a Future.
func Argon2iAsync(ctx context.Context, password, salt []byte, opts Options) (*Future, error) {
	return KeyAsync(ctx, TypeArgon2i, password, salt, opts)
}

// Argon2idAsync starts a cooperative Argon2id computation and returns
// immediately with a Future.
func Argon2idAsync(ctx context.Context, password, salt []byte, opts Options) (*Future, error) {
	return KeyAsync(ctx, TypeArgon2id, password, salt, opts)
}

// KeyAsync is the cooperative counterpart to Key: it validates options
// synchronously, before any heavy allocation, then runs the fill in a
// background goroutine that yields to the host scheduler every
// opts.AsyncTick and checks ctx for cancellation after every block.
//
// This keeps a multi-second Argon2 call from starving other goroutines
// on a small GOMAXPROCS, and lets a caller abandon a long-running call:
// on cancellation the worker stops after finishing its current block,
// and its matrix becomes eligible for garbage collection immediately.
func KeyAsync(ctx context.Context, variant Variant, password, salt []byte, opts Options) (*Future, error) {
	if variant != TypeArgon2d && variant != TypeArgon2i && variant != TypeArgon2id {
		return nil, ErrInvalidType
	}
	if err := opts.Validate(password, salt); err != nil {
		return nil, err
	}

	f := &Future{done: make(chan struct{})}
	hook := chainHooks(progressHook(opts.OnProgress), cancellationHook(ctx), yieldHook(opts.asyncTick()))

	go func() {
		defer close(f.done)
		tag, aborted := run(variant, password, salt, opts, hook)
		if aborted {
			f.err = ctx.Err()
			if f.err == nil {
				f.err = context.Canceled
			}
			return
		}
		f.result = tag
	}()

	return f, nil
}

// cancellationHook aborts the fill as soon as ctx is done.
func cancellationHook(ctx context.Context) core.Hook {
	return func(_, _ uint32) bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}
}

// yieldHook calls runtime.Gosched() once the elapsed wall-clock time
// since the last yield falls outside [0, tick). A clock reading that
// appears to go backward (elapsed < 0) is treated as "must yield", same
// as a reading past the budget.
func yieldHook(tick time.Duration) core.Hook {
	last := time.Now()
	return func(_, _ uint32) bool {
		now := time.Now()
		elapsed := now.Sub(last)
		if elapsed < 0 || elapsed >= tick {
			runtime.Gosched()
			last = time.Now()
		}
		return false
	}
}
