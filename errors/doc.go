// Package errors provides structured error types for the zwtext library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries a human-readable detail, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidBase64).
//		Value(text).
//		Cause(err).
//		Detail("%d bytes recovered", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NoBitsFound(errors.PhaseDecode, 3)
//	err := errors.InvalidUTF8(errors.PhaseDecode, data)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
