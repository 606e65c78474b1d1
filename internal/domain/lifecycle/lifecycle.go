// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work such as server
// drain and connection pings.
const DefaultTimeout = 10 * time.Second
