package densematrix

import "errors"

// ErrIndexFault indicates an out-of-range (row, col) access. Per spec this
// is a caller bug and is never recovered from.
var ErrIndexFault = errors.New("densematrix: index out of range")
