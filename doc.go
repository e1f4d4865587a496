// Package warmup provides nine small, independent, pure functions:
// integer addition, century-from-year, hex-to-RGB conversion, Fibonacci,
// matrix transposition, base conversion, phone-number format checks,
// emoticon counting and tic-tac-toe winner detection.
//
// The entry points accept dynamically typed arguments (values decoded from
// YAML or JSON, or plain Go values) and validate them eagerly. A failure is
// always an *ArgumentError that unwraps to ErrType, when an argument has the
// wrong fundamental type, or ErrRange, when it has the right type but an
// invalid value:
//
//	c, err := warmup.Century(2000) // 20, nil
//	_, err = warmup.Century(-1)    // errors.Is(err, warmup.ErrRange)
//	_, err = warmup.Century("x")   // errors.Is(err, warmup.ErrType)
//
// Every function is also reachable by name through Call, which is what the
// warmup command and case files use.
//
// All functions are stateless and safe for concurrent use.
package warmup
