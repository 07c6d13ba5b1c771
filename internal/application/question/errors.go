package question

import (
	"fmt"

	"questboard/internal/domain/errs"
)

// Question use case errors. They wrap the domain sentinels so transport-level
// error mapping keeps working through errors.Is.
var (
	// ErrQuestionNotFound is returned when the referenced question does not exist.
	// Handlers turn it into a "does not exist" flash, not a hard failure.
	ErrQuestionNotFound = fmt.Errorf("question: %w", errs.ErrNotFound)
)
