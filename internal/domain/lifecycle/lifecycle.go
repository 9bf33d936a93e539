// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of long-lived
// resources (HTTP server, database, broker connection).
const DefaultTimeout = 10 * time.Second
