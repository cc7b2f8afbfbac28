// Package errors provides structured error types for the cstruct library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, source position, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhasePack, errors.KindInvalidData).
//		Path("primary_sensor", "temperature").
//		Detail("expected numeric value, got %T", v).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownType(errors.PhaseResolve, path, "Vector3D")
//	err := errors.BufferTooSmall("DeviceStatus", 12, 29)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on the (Phase, Kind) pair, so callers can test categories:
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindSyntax})
package errors
