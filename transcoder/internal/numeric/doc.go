// Package numeric provides checked integer and float narrowing for the
// transcoder.
//
// The wire format carries every integer as a signed 64-bit value and every
// float as a 64-bit double. Decoding into a narrower Go type goes through the
// helpers here so out-of-range values are reported instead of truncated.
//
// This package is internal to the transcoder.
package numeric
