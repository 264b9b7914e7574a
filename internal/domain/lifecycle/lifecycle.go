// Package lifecycle holds shared constants for application start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long start and stop hooks may take.
const DefaultTimeout = 30 * time.Second
