// Package lifecycle holds shared start and stop limits for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks.
const DefaultTimeout = 10 * time.Second
