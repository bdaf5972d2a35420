package heap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
)

// ErrSystemLimit is the exception reason §7 names when a HeapIsFull
// retry loop gives up: "escalates to Exception(Error, system_limit)".
var ErrSystemLimit = errors.New("heap: system_limit")

// AllocWithRetry wraps h.Alloc in an exponential-backoff retry loop, the
// same pattern internal/transport uses for reconnection in the example
// this module was grounded on. On ErrHeapFull it invokes gc (the
// process's garbage collector hook, supplied by the caller since this
// core does not implement one) and retries per policy; once the policy
// is exhausted the failure is reported as ErrSystemLimit, matching §7's
// "HeapIsFull … escalates to Exception(Error, system_limit)".
func AllocWithRetry(h Heap, words int, gc func() error, policy backoff.BackOff, logger *slog.Logger) (Addr, error) {
	var addr Addr
	attempt := 0
	op := func() error {
		attempt++
		a, err := h.Alloc(words)
		if err == nil {
			addr = a
			return nil
		}
		if !errors.Is(err, ErrHeapFull) {
			return backoff.Permanent(err)
		}
		if logger != nil {
			logger.Warn("heap: alloc failed, running gc and retrying",
				slog.Int("attempt", attempt), slog.Int("words", words))
		}
		if gcErr := gc(); gcErr != nil {
			return backoff.Permanent(fmt.Errorf("heap: gc hook failed: %w", gcErr))
		}
		return err
	}

	if err := backoff.Retry(op, policy); err != nil {
		if errors.Is(err, ErrHeapFull) {
			return 0, ErrSystemLimit
		}
		return 0, err
	}
	return addr, nil
}
