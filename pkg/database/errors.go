package database

import "errors"

// ErrNotReady is returned when a connection is requested before Connect
// has run or after the pool has been closed.
var ErrNotReady = errors.New("database not ready")
