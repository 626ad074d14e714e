// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package expect provides runtime expectation checks whose failure
// behavior is chosen by a handler instead of being fixed to a crash or a
// silent pass.
//
// A check such as [ContinueReceiver.IsTrue] either passes or builds an
// [Exception] and hands it to the handler its receiver is bound to. The
// handler decides what a failure means at that call site: log and keep
// going, abandon the surrounding block with a fallback value, or turn the
// failure into an error.
//
// # Handler Families
//
// Continuing handlers return normally. The failing check returns false
// and the caller continues:
//
//   - [ContinueHandler]: HandleFail(Exception)
//   - [ContinueFunc]: Adapt a function
//   - [Continue]: Run optional callbacks, then return
//   - [Panic]: Run optional callbacks, then panic with the exception
//
// Exiting handlers never resume the failing check. They return an [Exit]
// directive that ends the enclosing [Run]:
//
//   - [ExitHandler]: HandleFail(Exception) Exit[T]
//   - [ExitFunc]: Adapt a function
//   - [ExitWith]: The run yields a value
//   - [ExitWithError]: The run returns an error
//   - [Return], [ReturnZero]: Yield a fixed value
//   - [ReturnLast]: Yield the last value a run produced, or a default
//   - [Throw], [ThrowWith]: Return the exception, or an error built from it
//
// A handler that returns the zero Exit is reported as [ErrNoExit].
//
// # Receivers
//
// [ContinueReceiver] and [ExitReceiver] share one vocabulary: Fail,
// IsTrue, IsFalse, IsNotNull, IsNull and NoError. Continuing checks report
// success as a bool. Exiting checks return nothing: if they return at all,
// the check passed.
//
// Typed checks are free functions over a receiver:
//
//   - [IsType], [Deref]: Any [Receiver], report success
//   - [MustType], [MustNotNil], [MustDeref]: [ExitReceiver] only, the
//     result is guaranteed present and of the requested type
//
// Absence follows Go's notion of nil, including typed nil pointers, maps,
// slices, channels and funcs stored in an interface.
//
// # Scope Exit
//
// [Run] gives its block an [ExitReceiver]. A failing check unwinds to that
// Run with a private signal tagged with the run's identity, so nested runs
// never intercept each other's exits and unrelated panics pass through.
// Each run exits at most once, and a receiver used after its block
// returned panics. [CatchPanics] routes other panics in the block through
// the handler as a [CaughtException] whose cause is a [PanicError].
//
// # Global Facade
//
// [Expect] holds a replaceable global handler and exposes the continuing
// vocabulary directly. [Check] and [Guard] run a block whose failures are
// sent to the global handler first and then to a local handler.
//
// The default global handler is [Continue]. Building with the expectdebug
// tag makes it [Panic].
//
// # Example
//
//	price, err := expect.Run(expect.Return(0.0), func(r *expect.ExitReceiver[float64]) float64 {
//		item := expect.MustNotNil(r, catalog[id])
//		r.IsTrue(item.Price > 0, "price must be positive")
//		return item.Price * qty
//	})
//
// Adapters live in subpackages: expectzap logs failures with zap,
// expectotel records them on OpenTelemetry spans, expectconf builds the
// global handler from YAML and the environment, and expecttest records
// failures for tests.
package expect
