package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that the input data is invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternalError indicates an internal server error.
	ErrInternalError = errors.New("internal error")
)

// Client-facing messages shared by the repositories and the HTTP layer.
const (
	MsgInvalidInput       = "Invalid input"
	MsgInvalidID          = "Invalid ID format"
	MsgInvalidVotes       = "Invalid votes format"
	MsgMissingProperties  = "Missing required properties"
	MsgEmptyCommentBody   = "Comment body cannot be empty"
	MsgNoArticlesForQuery = "No articles found for that query"
	MsgArticleNotFound    = "Article not found"
	MsgCommentNotFound    = "Comment not found"
	MsgCommentsNotFound   = "Comments not found"
	MsgUserNotFound       = "User not found"
	MsgInternalError      = "Internal server error"
)

// ValidationError represents a validation error for a specific field.
// Message is safe to show to clients.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotFoundError provides details about a not found entity.
type NotFoundError struct {
	Entity string
	ID     string
	// Message overrides the generated client-facing message when set.
	Message string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AlreadyExistsError provides details about a duplicate entity.
type AlreadyExistsError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *AlreadyExistsError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s already exists", e.Entity)
	}
	return fmt.Sprintf("%s already exists: %s", e.Entity, e.ID)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// ConstraintViolationError reports a write that referenced a row which does not exist.
type ConstraintViolationError struct {
	// Column is the referencing column named by the store, empty when it could not be determined.
	Column string
	// Value is the offending value.
	Value string
}

// Error implements the error interface.
func (e *ConstraintViolationError) Error() string {
	switch e.Column {
	case "author", "username":
		return fmt.Sprintf("User '%s' does not exist", e.Value)
	case "topic", "slug":
		return fmt.Sprintf("Topic '%s' does not exist", e.Value)
	case "article_id":
		return fmt.Sprintf("Article with ID '%s' not found", e.Value)
	case "":
		return "Invalid input: related resource not found"
	default:
		return fmt.Sprintf("Invalid input: %s '%s' does not exist", e.Column, e.Value)
	}
}

// Unwrap classifies the violation: missing users, topics and articles are not-found
// conditions, anything else is invalid input.
func (e *ConstraintViolationError) Unwrap() error {
	switch e.Column {
	case "author", "username", "topic", "slug", "article_id":
		return ErrNotFound
	default:
		return ErrInvalidInput
	}
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{
		Entity: entity,
		ID:     id,
	}
}

// NewNotFoundErrorWithMessage creates a NotFoundError carrying a client-facing message.
func NewNotFoundErrorWithMessage(entity, id, message string) *NotFoundError {
	return &NotFoundError{
		Entity:  entity,
		ID:      id,
		Message: message,
	}
}

// NewAlreadyExistsError creates a new AlreadyExistsError.
func NewAlreadyExistsError(entity, id string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Entity: entity,
		ID:     id,
	}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewConstraintViolationError creates a new ConstraintViolationError.
func NewConstraintViolationError(column, value string) *ConstraintViolationError {
	return &ConstraintViolationError{
		Column: column,
		Value:  value,
	}
}
