// export_test.go exposes internals of the Runner for white-box testing.
package wasmpack

import (
	"context"
	"time"

	"go.trai.ch/webbundle/internal/core/domain"
)

// Invocation mirrors the captured output of one subprocess run.
type Invocation = invocation

// SetInvoke replaces the subprocess invocation for tests.
func (r *Runner) SetInvoke(fn func(ctx context.Context, opts domain.Options) (Invocation, error)) {
	r.invoke = fn
}

// SetRetries overrides the retry budget for tests.
func (r *Runner) SetRetries(n int) {
	r.retries = n
}

// SetBackoff replaces sleeping and jitter for tests.
func (r *Runner) SetBackoff(sleep func(time.Duration), jitter func() time.Duration) {
	r.sleep = sleep
	r.jitter = jitter
}
