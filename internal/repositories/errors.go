package repositories

import "errors"

// ErrStaleWrite is returned when a conditional update inside a
// transaction touches fewer rows than expected, meaning another writer
// got there first. The whole transaction is rolled back.
var ErrStaleWrite = errors.New("row changed since it was read")
