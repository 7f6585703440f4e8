package repository

import "errors"

// ErrNotFound is returned by every lookup that matches no row. GORM-specific
// errors never cross the repository boundary.
var ErrNotFound = errors.New("record not found")
