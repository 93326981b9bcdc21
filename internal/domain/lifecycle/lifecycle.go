// Package lifecycle holds values shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook.
const DefaultTimeout = 10 * time.Second
