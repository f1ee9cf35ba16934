package server

import "time"

// Aggregation fans out many upstream calls per request, so the write timeout
// is generous relative to typical API services.
const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 120 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)
