package checker

import (
	"errors"
	"fmt"
)

// ErrEmptyCoveringArray is returned when Check is asked to verify an empty
// array.
var ErrEmptyCoveringArray = errors.New("checker: covering array is empty")

// MissingCombination reports the first combination of parameter names and
// values found to be uncovered by every row. Check stops at the first
// failure rather than enumerating every gap.
type MissingCombination struct {
	Combination []string
	Values      []any
}

func (e *MissingCombination) Error() string {
	return fmt.Sprintf("checker: missing combination=%v, values=%v", e.Combination, e.Values)
}

// Detect a coverage failure with errors.As:
//
//	var missing *checker.MissingCombination
//	if errors.As(err, &missing) { ... }
var _ error = (*MissingCombination)(nil)
