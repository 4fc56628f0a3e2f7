package repository

import "errors"

// ErrNotFound is returned when an operation references a project id the
// backend does not hold. The store translates it into a domain-level error,
// which keeps driver errors such as sql.ErrNoRows or redis.Nil out of the
// layers above.
var ErrNotFound = errors.New("repository: not found")
