package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError is returned when the requested operation is not allowed in the
// current state of the target (locked project, double consumption, ...).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// InsufficientStockError is returned when a deduction exceeds the current on-hand quantity.
type InsufficientStockError struct {
	Component string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("cannot deduct %d pcs of '%s': only %d in stock", e.Requested, e.Component, e.Available)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrComponentNotFound   = &NotFoundError{Entity: "component"}
	ErrProjectNotFound     = &NotFoundError{Entity: "project"}
	ErrProjectItemNotFound = &NotFoundError{Entity: "project item"}
	ErrOfferNotFound       = &NotFoundError{Entity: "supplier offer"}
	ErrLocationNotFound    = &NotFoundError{Entity: "location"}
)

// Conflict Errors
var (
	ErrProjectLocked          = &ConflictError{Message: "project is locked: stock has already been consumed"}
	ErrProjectAlreadyConsumed = &ConflictError{Message: "project has already been consumed"}
	ErrComponentInUse         = &ConflictError{Message: "component is referenced by an unconsumed project"}
	ErrLocationExists         = &ConflictError{Message: "location with this rack, drawer and box already exists"}
)

// Business Logic Errors
var (
	ErrNothingToExport   = errors.New("nothing to export: no item has a selected offer")
	ErrInvalidTimeRange  = errors.New("invalid time range")
	ErrUnknownConnector  = errors.New("unknown supplier connector")
	ErrConnectorDisabled = &ConfigurationError{Message: "supplier connector is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsInsufficientStock checks if an error is an InsufficientStockError
func IsInsufficientStock(err error) bool {
	var stockErr *InsufficientStockError
	return errors.As(err, &stockErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInsufficientStockError creates a new InsufficientStockError
func NewInsufficientStockError(component string, requested, available int) error {
	return &InsufficientStockError{Component: component, Requested: requested, Available: available}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
