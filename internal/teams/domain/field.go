package domain

// FieldState distinguishes an absent input from a present but unusable one.
type FieldState uint8

const (
	FieldUnset FieldState = iota
	FieldValid
	FieldInvalid
)

// Field is the result of parsing one optional input: Unset, Valid(value) or
// Invalid(reason).
type Field[T any] struct {
	state  FieldState
	value  T
	reason string
}

func Unset[T any]() Field[T] { return Field[T]{} }

func Valid[T any](v T) Field[T] { return Field[T]{state: FieldValid, value: v} }

func Invalid[T any](reason string) Field[T] {
	return Field[T]{state: FieldInvalid, reason: reason}
}

func (f Field[T]) State() FieldState { return f.state }
func (f Field[T]) IsUnset() bool     { return f.state == FieldUnset }
func (f Field[T]) IsValid() bool     { return f.state == FieldValid }
func (f Field[T]) IsInvalid() bool   { return f.state == FieldInvalid }

// Get returns the value and whether it is valid.
func (f Field[T]) Get() (T, bool) { return f.value, f.state == FieldValid }

// Reason is empty unless the field is Invalid.
func (f Field[T]) Reason() string { return f.reason }
