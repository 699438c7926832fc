package database

import "errors"

// ErrNotReady is reported by the readiness probe while no live
// connection to PostgreSQL exists yet.
var ErrNotReady = errors.New("database not ready")
