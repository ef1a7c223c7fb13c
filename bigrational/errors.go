package bigrational

import "errors"

// ErrArithmeticFault indicates division by a zero rational, either during
// construction (den == 0) or in Div. It is fatal for the caller: the
// operation that produced it cannot be completed.
var ErrArithmeticFault = errors.New("bigrational: arithmetic fault (division by zero)")

// ErrParseFault indicates a text value could not be parsed as "a" or "a/b".
var ErrParseFault = errors.New("bigrational: parse fault")
