package checker_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/covarray/checker"
)

// ExampleCheck_missing demonstrates reporting the first uncovered
// combination.
func ExampleCheck_missing() {
	params := map[string][]any{
		"a": {0, 1},
		"b": {0, 1},
	}
	ca := []map[string]any{
		{"a": 0, "b": 0},
		{"a": 0, "b": 1},
		{"a": 1, "b": 0},
	}

	err := checker.Check(params, ca, 2)

	var missing *checker.MissingCombination
	if errors.As(err, &missing) {
		fmt.Println("missing:", missing.Combination, missing.Values)
	}

	// Output:
	// missing: [a b] [1 1]
}
