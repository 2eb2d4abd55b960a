package board

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// BoardError is a custom error type for board-related errors
type BoardError string

// Error implements the error interface
func (e BoardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound        BoardError = "game not found"
	ErrCategoryNotFound    BoardError = "category not found"
	ErrQuestionNotFound    BoardError = "question not found"
	ErrNotEnoughQuestions  BoardError = "not enough unanswered questions for daily doubles"
	ErrInvalidDailyDoubles BoardError = "daily double count cannot be negative"
	ErrNilConfig           BoardError = "config cannot be nil"
	ErrNilGameRepo         BoardError = "game repository cannot be nil"
	ErrNilDiceRoller       BoardError = "dice roller cannot be nil"
	ErrNilClock            BoardError = "clock cannot be nil"
)

// FieldError describes one invalid field
type FieldError struct {
	// Field is the namespaced field, e.g. Game.Categories[0].Name
	Field string

	// Rule is the failed validation rule
	Rule string
}

// ValidationError is returned when a board fails validation
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" failed "+f.Rule)
	}
	return "invalid game: " + strings.Join(parts, ", ")
}

func newValidationError(errs validator.ValidationErrors) *ValidationError {
	fields := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, FieldError{Field: fe.Namespace(), Rule: fe.Tag()})
	}
	return &ValidationError{Fields: fields}
}
