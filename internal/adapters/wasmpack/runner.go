// Package wasmpack invokes the wasm-pack toolchain as a subprocess and
// retries the known transient failures of its shared build cache.
package wasmpack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.trai.ch/webbundle/internal/core/domain"
	"go.trai.ch/webbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultRetries is the number of retries granted on top of the initial
// attempt. A budget of 3 therefore allows at most 4 invocations.
const DefaultRetries = 3

const command = "wasm-pack"

// invocation holds the captured output of one subprocess run.
type invocation struct {
	Stdout string
	Stderr string
}

// invokeFunc runs one toolchain invocation. err is an *exec.ExitError when
// the process ran and exited non-zero, or another error when it could not be
// started at all.
type invokeFunc func(ctx context.Context, opts domain.Options) (invocation, error)

// Runner implements ports.Toolchain using os/exec.
//
// wasm-pack is not safe for uncoordinated concurrent invocation against its
// shared global cache, and this pipeline has no authority to lock that
// external resource. Invocations that fail with a recognized cache-contention
// signature are retried after a uniformly random 1-5s sleep; the random wait
// desynchronizes concurrent builds that collided, which a deterministic
// backoff would not.
type Runner struct {
	logger  ports.Logger
	retries int
	invoke  invokeFunc
	sleep   func(time.Duration)
	jitter  func() time.Duration
}

// NewRunner creates a Runner with the default retry budget.
func NewRunner(logger ports.Logger) *Runner {
	r := &Runner{
		logger:  logger,
		retries: DefaultRetries,
		sleep:   time.Sleep,
		jitter:  backoffJitter,
	}
	r.invoke = r.invokeToolchain
	return r
}

// Build runs wasm-pack against opts.SrcDir, writing into opts.TmpDir.
func (r *Runner) Build(ctx context.Context, opts domain.Options) (*domain.CompiledModule, error) {
	var out invocation

	for attempt := 0; ; attempt++ {
		var err error
		out, err = r.invoke(ctx, opts)
		if err == nil {
			return domain.CompiledModuleIn(opts.TmpDir), nil
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errors.Join(domain.ErrToolchainStartFailed, err)
		}

		if !IsCacheContention(out.Stderr) || attempt >= r.retries {
			return nil, buildError(out)
		}

		wait := r.jitter()
		r.logger.Warn(fmt.Sprintf("wasm-pack hit shared cache contention, retrying in %v (attempt %d/%d)", wait.Round(time.Millisecond), attempt+1, r.retries))
		r.sleep(wait)
	}
}

// invokeToolchain performs a single wasm-pack run with the fixed argument
// contract. The cache-target override is passed on the subprocess
// environment only; the caller's environment is never mutated.
func (r *Runner) invokeToolchain(ctx context.Context, opts domain.Options) (invocation, error) {
	mode := "--dev"
	if opts.Release {
		mode = "--release"
	}

	//nolint:gosec // fixed command name, arguments come from validated options
	cmd := exec.CommandContext(ctx, command,
		"build",
		"--target", "web",
		mode,
		"--no-typescript",
		"--out-name", domain.OutName,
		"--out-dir", opts.TmpDir,
	)
	cmd.Dir = opts.SrcDir
	cmd.Env = append(os.Environ(), "CARGO_TARGET_DIR="+filepath.Join(opts.WorkspaceRoot, domain.TargetDirName))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return invocation{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// buildError surfaces both captured streams verbatim for diagnosis.
func buildError(out invocation) error {
	detail := fmt.Sprintf("stdout:\n%s\nstderr:\n%s", out.Stdout, out.Stderr)
	return zerr.Wrap(domain.ErrToolchainBuildFailed, detail)
}

// backoffJitter returns a uniformly random wait in the 1-5s range.
func backoffJitter() time.Duration {
	return time.Duration(1000+rand.IntN(4000)) * time.Millisecond
}
