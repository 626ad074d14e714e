// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect

// Unit is the result type of blocks that produce no value.
type Unit = struct{}

// RunOption configures a single [Run].
type RunOption func(*runConfig)

type runConfig struct {
	catchPanics bool
}

// CatchPanics makes the run treat a panic inside the block as a failure.
// The recovered value is wrapped in a [PanicError] and passed to the
// handler as a [CaughtException] with [MessageExceptionOccurred]; the
// handler's outcome becomes the run's result. Exit signals of the run
// itself or of enclosing runs are never reclassified.
//
// A panic raised by the handler while it handles a caught panic
// propagates to the caller.
func CatchPanics() RunOption {
	return func(c *runConfig) { c.catchPanics = true }
}

// Run executes block with a receiver bound to h.
//
// When every check passes, Run returns the block's result. When a check
// fails, h decides the outcome: [ExitWith] makes Run return the value as
// if the block had produced it, [ExitWithError] makes Run return the
// error. Code after the failing check does not run.
//
// If h implements [RunObserver], OnRun sees every value Run returns with
// a nil error.
//
// Runs nest: a check on an outer receiver inside an inner block exits the
// outer run and passes through the inner one untouched.
func Run[T any](h ExitHandler[T], block func(r *ExitReceiver[T]) T, opts ...RunOption) (T, error) {
	if h == nil {
		misuse("nil exit handler")
	}
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &ExitReceiver[T]{handler: h, scope: new(scope)}
	result, err := runScoped(r, cfg, block)
	if err == nil {
		if o, ok := h.(RunObserver[T]); ok {
			o.OnRun(result)
		}
	}
	return result, err
}

// runScoped runs block and turns the exit signal of r's scope back into
// an ordinary return.
func runScoped[T any](r *ExitReceiver[T], cfg runConfig, block func(*ExitReceiver[T]) T) (result T, err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		r.scope.close()
		if sig, ok := r.scope.owns(v); ok {
			result, err = sig.outcome.(Exit[T]).unpack()
			return
		}
		if _, foreign := v.(*exitSignal); foreign || !cfg.catchPanics {
			panic(v)
		}
		e := NewCaughtException(MessageExceptionOccurred, newPanicError(v))
		result, err = settle(r.handler.HandleFail(e), e).unpack()
	}()
	result = block(r)
	r.scope.close()
	return result, nil
}

// RunContinue executes block with a continuing receiver bound to h and
// returns its result. Failed checks notify h and return false.
func RunContinue[T any](h ContinueHandler, block func(r *ContinueReceiver) T) T {
	return block(NewContinueReceiver(h))
}

// Do is [Run] for blocks without a result.
func Do(h ExitHandler[Unit], block func(r *ExitReceiver[Unit]), opts ...RunOption) error {
	_, err := Run(h, func(r *ExitReceiver[Unit]) Unit {
		block(r)
		return Unit{}
	}, opts...)
	return err
}
