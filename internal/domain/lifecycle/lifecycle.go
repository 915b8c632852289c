// Package lifecycle defines process-wide bounds for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start/stop hook.
const DefaultTimeout = 10 * time.Second
