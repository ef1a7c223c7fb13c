package dictionary

import "errors"

// ErrSingularBasis marks a candidate basis whose d x d coefficient
// submatrix is singular: refactor has no inverse, so the basis does not
// identify a vertex. Callers skip the candidate and move on.
var ErrSingularBasis = errors.New("dictionary: singular basis")

// ErrInfeasible is returned by Phase-I when an original row has negative
// slack and the lex ratio test finds no basis row that may leave for it.
// This does not prove h has no feasible point: the ratio test only
// accepts basis rows with a positive coefficient on the entering
// direction, so some feasible inputs also end here.
var ErrInfeasible = errors.New("dictionary: infeasible")

// ErrDegenerateInfeasibility is returned by Phase-I when every original
// row has nonnegative slack while an artificial row is still in the
// basis. This can happen on full-dimensional feasible inputs too, e.g.
// when the artificial vertex already satisfies every original row.
var ErrDegenerateInfeasibility = errors.New("dictionary: degenerate infeasibility")
