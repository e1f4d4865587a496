// Package problems holds the typed, pure algorithms behind the warmup
// entry points.
//
// This package uses ONLY the Go standard library. Every function is
// stateless and safe for concurrent use; nothing here performs I/O.
//
// Validation that depends on the fundamental type of an argument lives in
// the root package, which accepts dynamically typed values. Functions here
// receive Go-typed arguments and only report range-kind failures (negative
// years, bad radixes, malformed hex) plus the structural type-kind failures
// of Transpose.
package problems
