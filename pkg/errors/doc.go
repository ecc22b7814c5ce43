// Package errors provides structured error types for better observability
// and programmatic error handling across the engine.
//
// Build-time failures (UNKNOWN_INGREDIENT, UNRESOLVED_TOKEN) are recovered at
// single-recipe granularity by the index builder. Query-time failures
// (INVALID_BIT, UNINDEXED_COOKJOB) are returned to the caller untouched.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeUnresolvedToken,
//	    "grammar token matches no ingredient or category",
//	    map[string]any{
//	        "recipe": 42,
//	        "token":  "Unicorn",
//	    },
//	)
//
//	if errors.Is(err, errors.ErrCodeUnresolvedToken) {
//	    // skip the recipe
//	}
package errors
