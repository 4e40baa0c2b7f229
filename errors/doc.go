// Package errors provides the structured error type for the firestore codec.
//
// Errors carry a Phase (encode, decode or compile) and a Kind. Encode errors
// use message, outside_int_range, unrepresentable, non_string_key and
// not_a_map; decode errors use message, wrong_type, int_range, missing_field
// and unrepresentable.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindWrongType).
//		Path("user", "age").
//		Expected("int64").
//		Actual("string").
//		Build()
//
// Or the convenience constructors:
//
//	err := errors.IntRange(path, "uint8", 300)
//	err := errors.MissingField(path, "type")
//
// Comparing against a bare &Error{Phase, Kind} with errors.Is matches by
// phase and kind only.
package errors
