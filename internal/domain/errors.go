package domain

import "errors"

var (
	// Scoring.
	ErrInvalidQuestionIndex = errors.New("invalid question index")
	ErrOutOfRangeAnswer     = errors.New("answer out of range")
	ErrEmptyResponseSet     = errors.New("no responses supplied")

	// Preferences.
	ErrTierConflict      = errors.New("category appears in more than one tier")
	ErrDuplicateCategory = errors.New("category listed twice in the same tier")
	ErrUnknownCategory   = errors.New("unknown category")
)
