package repokit

import (
	"context"
	"fmt"
	"time"
)

// MustGuard runs a store guard within timeout (5s when zero) and panics on any error
func MustGuard(ctx context.Context, st interface{ Guard(context.Context) error }, timeout time.Duration) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
