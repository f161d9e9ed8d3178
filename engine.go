package argon2

import (
	"github.com/opd-ai/go-argon2/internal/core"
)

// run drives the whole Argon2 computation: H0, matrix allocation and
// seeding, the pass/segment/lane fill, and finalization, per RFC 9106
// section 3.1's H0-to-tag pipeline. blockHook, if non-nil, is called
// after every produced block — the blocking entry points pass only the
// progress hook (nil when Options.OnProgress is unset), the cooperative
// ones chain it with hooks that check for cancellation and yield
// control per Options.AsyncTick. aborted reports whether
// blockHook asked the fill to stop early; in that case the returned
// tag is nil.
func run(variant Variant, password, salt []byte, opts Options, blockHook core.Hook) (tag []byte, aborted bool) {
	dkLen := opts.dkLen()
	version := uint32(opts.version())
	totalBlocks := roundedBlocks(opts.Memory, opts.Parallelism)

	h0 := core.InitialHash(opts.Parallelism, dkLen, opts.Memory, opts.Time, version, variant,
		password, salt, opts.Key, opts.Personalization)

	matrix := core.NewMatrix(totalBlocks, opts.Parallelism)
	matrix.Seed(h0)

	aborted = core.Fill(matrix, variant, version, opts.Time, blockHook)

	if !aborted {
		tag = core.Finalize(matrix, dkLen)
	}

	matrix.Zero()
	for i := range h0 {
		h0[i] = 0
	}

	return tag, aborted
}

// progressHook wraps a user-supplied OnProgress callback into a
// core.Hook, throttled to roughly every ceil(total/10000) blocks with a
// guaranteed final call at 1.0. It never aborts the fill on its own;
// compose it with a yield/cancellation hook via chainHooks for the
// cooperative entry points.
func progressHook(onProgress func(float64)) core.Hook {
	if onProgress == nil {
		return nil
	}
	var every uint32
	return func(produced, total uint32) bool {
		if every == 0 {
			every = total / 10000
			if total%10000 != 0 {
				every++
			}
			if every == 0 {
				every = 1
			}
		}
		if produced == total {
			onProgress(1.0)
			return false
		}
		if produced%every == 0 {
			onProgress(float64(produced) / float64(total))
		}
		return false
	}
}

// chainHooks runs every non-nil hook in order for each block and
// aborts as soon as any of them asks to.
func chainHooks(hooks ...core.Hook) core.Hook {
	live := make([]core.Hook, 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			live = append(live, h)
		}
	}
	if len(live) == 0 {
		return nil
	}
	return func(produced, total uint32) bool {
		for _, h := range live {
			if h(produced, total) {
				return true
			}
		}
		return false
	}
}
