// Package errors provides custom error types for the skymatch system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the skymatch system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrShapeMismatch indicates that a catalog's RA and Dec sequences differ in length
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrNonFiniteInput indicates that a coordinate is NaN or infinite
	ErrNonFiniteInput = errors.New("non-finite input")

	// ErrEmptyMatch indicates that an operation requiring matched pairs received none
	ErrEmptyMatch = errors.New("empty match set")

	// ErrInvalidMode indicates a match mode outside the defined set
	ErrInvalidMode = errors.New("invalid match mode")

	// ErrEmptyCatalog indicates that a reference catalog has no points to search
	ErrEmptyCatalog = errors.New("empty catalog")
)

// ShapeError reports a length mismatch between a catalog's RA and Dec sequences.
type ShapeError struct {
	Catalog string
	RALen   int
	DecLen  int
}

// Error implements the error interface
func (e *ShapeError) Error() string {
	return fmt.Sprintf("catalog %s: ra length %d does not match dec length %d", e.Catalog, e.RALen, e.DecLen)
}

// Is implements errors.Is support
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch || target == ErrInvalidInput
}

// NewShapeError creates a new ShapeError
func NewShapeError(catalog string, raLen, decLen int) *ShapeError {
	return &ShapeError{Catalog: catalog, RALen: raLen, DecLen: decLen}
}

// NonFiniteError reports a NaN or infinite coordinate value.
type NonFiniteError struct {
	Catalog string
	Axis    string // "ra" or "dec"
	Index   int
	Value   float64
}

// Error implements the error interface
func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("catalog %s: non-finite %s value %v at index %d", e.Catalog, e.Axis, e.Value, e.Index)
}

// Is implements errors.Is support
func (e *NonFiniteError) Is(target error) bool {
	return target == ErrNonFiniteInput || target == ErrInvalidInput
}

// NewNonFiniteError creates a new NonFiniteError
func NewNonFiniteError(catalog, axis string, index int, value float64) *NonFiniteError {
	return &NonFiniteError{Catalog: catalog, Axis: axis, Index: index, Value: value}
}

// EmptyMatchError reports that offset correction was requested but the first
// pass produced no matched pairs, leaving the median offset undefined.
type EmptyMatchError struct {
	RadiusArcsec float64
}

// Error implements the error interface
func (e *EmptyMatchError) Error() string {
	return fmt.Sprintf("no pairs matched within %g arcsec: median offset is undefined", e.RadiusArcsec)
}

// Is implements errors.Is support
func (e *EmptyMatchError) Is(target error) bool {
	return target == ErrEmptyMatch
}

// NewEmptyMatchError creates a new EmptyMatchError
func NewEmptyMatchError(radiusArcsec float64) *EmptyMatchError {
	return &EmptyMatchError{RadiusArcsec: radiusArcsec}
}

// ModeError reports a match mode outside the defined set.
type ModeError struct {
	Mode string
}

// Error implements the error interface
func (e *ModeError) Error() string {
	return fmt.Sprintf("unknown match mode %q", e.Mode)
}

// Is implements errors.Is support
func (e *ModeError) Is(target error) bool {
	return target == ErrInvalidMode || target == ErrInvalidInput
}

// NewModeError creates a new ModeError
func NewModeError(mode string) *ModeError {
	return &ModeError{Mode: mode}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "csv", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsShapeMismatch checks if an error is a catalog shape mismatch
func IsShapeMismatch(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}

// IsNonFiniteInput checks if an error reports a non-finite coordinate
func IsNonFiniteInput(err error) bool {
	return errors.Is(err, ErrNonFiniteInput)
}

// IsEmptyMatch checks if an error reports an empty match set
func IsEmptyMatch(err error) bool {
	return errors.Is(err, ErrEmptyMatch)
}

// IsInvalidMode checks if an error reports an unknown match mode
func IsInvalidMode(err error) bool {
	return errors.Is(err, ErrInvalidMode)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
