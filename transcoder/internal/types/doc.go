// Package types defines the compiled shape plans used by the transcoder.
//
// A CompiledType records which protocol shape a Go type maps to, together with
// the struct fields, enum cases and element plans needed to walk a value of
// that type without re-inspecting its reflect.Type on every call.
//
// # Key Types
//
//   - CompiledType: cached plan for one Go type
//   - Kind: shape discriminator (scalar, option, seq, map, struct, enum, ...)
//   - VariantShape: payload shape of an enum case
//
// This package is internal to the transcoder.
package types
