package service

import "errors"

// ErrDateConflict means the requested days touch an active reservation or
// a blocage.  Nothing is written when it is returned.
var ErrDateConflict = errors.New("these dates are not available")
