// Package timeouts defines shared timeout constants for command entrypoints.
package timeouts

import "time"

// TelemetryShutdown caps how long a finished run waits for pending spans to
// flush to the trace exporter.
const TelemetryShutdown = 5 * time.Second
