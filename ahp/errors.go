package ahp

import "errors"

// Sentinel errors for every failure this package can surface. Callers match
// with errors.Is; returned errors wrap these with the offending criterion or
// pair where applicable.
var (
	// ErrInvalidObjective signals an objective that is neither the
	// maximize-all sentinel nor a minimize list.
	ErrInvalidObjective = errors.New("ahp: invalid objective")

	// ErrUnknownCriterion signals a minimize-list entry that is not a column
	// of the table being resolved against.
	ErrUnknownCriterion = errors.New("ahp: unknown criterion")

	// ErrInvalidScale signals a judgment matrix entry outside Saaty's
	// fundamental scale [1/9, 9].
	ErrInvalidScale = errors.New("ahp: judgment outside Saaty scale")

	// ErrShapeMismatch signals a non-square judgment matrix, misaligned row
	// and column labels, or a judgment/decision criterion-set mismatch.
	ErrShapeMismatch = errors.New("ahp: shape mismatch")

	// ErrReciprocityViolation signals a judgment pair (i,j) whose value is
	// not the reciprocal of (j,i).
	ErrReciprocityViolation = errors.New("ahp: reciprocity violation")

	// ErrTooManyCriteria signals more criteria than the tabulated random
	// consistency index covers.
	ErrTooManyCriteria = errors.New("ahp: too many criteria")

	// ErrInvalidCriterionValue signals a zero in a minimize criterion, where
	// the reciprocal transform would divide by zero.
	ErrInvalidCriterionValue = errors.New("ahp: invalid criterion value")

	// ErrDegenerateCriterion signals a criterion whose normalization or
	// dispersion statistics are undefined (zero sum, zero mean, no variance).
	ErrDegenerateCriterion = errors.New("ahp: degenerate criterion")
)
