package xconv

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for use with errors.Is
var (
	// ErrConversion matches every error reported by the converter
	ErrConversion = errors.New("conversion error")

	// ErrUnresolvedType indicates a type reference that does not resolve to a type
	ErrUnresolvedType = errors.New("unresolved type")

	// ErrUnresolvableClass indicates a target with no concrete runtime type
	ErrUnresolvableClass = errors.New("unresolvable class")

	// ErrNoStrategy indicates that no conversion strategy accepted the value
	ErrNoStrategy = errors.New("no conversion strategy")
)

// UnresolvedTypeError represents a type reference that unwraps to an unknown type with no default to borrow from
type UnresolvedTypeError struct {
	// Type is the type reference description
	Type string
}

// Error returns a human-readable error message.
func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("unsupported convert to unknown type: %v", e.Type)
}

// Is reports whether target matches this error type.
func (e *UnresolvedTypeError) Is(target error) bool {
	return target == ErrUnresolvedType || target == ErrConversion
}

// UnresolvableClassError represents a symbolic target with no runtime type and no default
type UnresolvableClassError struct {
	// Type is the target description
	Type string
}

// Error returns a human-readable error message.
func (e *UnresolvableClassError) Error() string {
	return fmt.Sprintf("can not get class from type: %v", e.Type)
}

// Is reports whether target matches this error type.
func (e *UnresolvableClassError) Is(target error) bool {
	return target == ErrUnresolvableClass || target == ErrConversion
}

// NoStrategyError represents a value that no strategy could convert to the target
type NoStrategyError struct {
	// SourceType is the value runtime type
	SourceType reflect.Type
	// Value is the value rendering
	Value string
	// Target is the target description
	Target string
}

// Error returns a human-readable error message.
func (e *NoStrategyError) Error() string {
	return fmt.Sprintf("can not convert from %v: [%v] to [%v]", e.SourceType, e.Value, e.Target)
}

// Is reports whether target matches this error type.
func (e *NoStrategyError) Is(target error) bool {
	return target == ErrNoStrategy || target == ErrConversion
}
