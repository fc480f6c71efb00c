// Package lifecycle holds shared start/stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks (DB ping) and graceful shutdown.
const DefaultTimeout = 15 * time.Second
