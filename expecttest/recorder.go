// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package expecttest provides handlers that record expectation failures
// and testify-style assertions over what they recorded.
//
//	rec := expecttest.NewRecorder()
//	got, _ := expect.Run(expecttest.Exit(rec, -1), func(r *expect.ExitReceiver[int]) int {
//		r.IsTrue(false)
//		return 1
//	})
//	expecttest.AssertFailedWith[*expect.FailedExpectation](t, rec, expect.MessageExpectedConditionTrue, nil)
package expecttest

import (
	"fmt"
	"sync"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/expect"
)

// Recorder stores every exception passed to its handlers.
// It is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	exceptions []expect.Exception
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// HandleFail records e. A Recorder is itself a continuing handler.
func (r *Recorder) HandleFail(e expect.Exception) {
	r.mu.Lock()
	r.exceptions = append(r.exceptions, e)
	r.mu.Unlock()
}

// Continue returns a continuing handler that records and returns.
func (r *Recorder) Continue() expect.ContinueHandler {
	return expect.ContinueFunc(r.HandleFail)
}

// Exit returns an exiting handler that records and then makes the run
// yield value.
func Exit[T any](r *Recorder, value T) expect.ExitHandler[T] {
	return expect.ExitFunc[T](func(e expect.Exception) expect.Exit[T] {
		r.HandleFail(e)
		return expect.ExitWith(value)
	})
}

// Raise returns an exiting handler that records and then makes the run
// return the exception.
func Raise[T any](r *Recorder) expect.ExitHandler[T] {
	return expect.ExitFunc[T](func(e expect.Exception) expect.Exit[T] {
		r.HandleFail(e)
		return expect.ExitWithError[T](e)
	})
}

// Exceptions returns a copy of the recorded exceptions in order.
func (r *Recorder) Exceptions() []expect.Exception {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]expect.Exception(nil), r.exceptions...)
}

// Messages returns the messages of the recorded exceptions in order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := make([]string, len(r.exceptions))
	for i, e := range r.exceptions {
		msgs[i] = e.Message()
	}
	return msgs
}

// Len returns the number of recorded exceptions.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.exceptions)
}

// Reset forgets all recorded exceptions.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.exceptions = nil
	r.mu.Unlock()
}

// AssertNoFailures asserts that nothing was recorded.
func (r *Recorder) AssertNoFailures(t assert.TestingT) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	n := r.Len()
	return assert.Equal(t, 0, n, "No expectation failures were expected but got %d.", n)
}

// AssertFailed asserts that exactly one exception was recorded.
func (r *Recorder) AssertFailed(t assert.TestingT) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	n := r.Len()
	return assert.Equal(t, 1, n, "One exception expected but got %d.", n)
}

// AssertFailedWith asserts that exactly one exception was recorded, that
// it is an E, and that it carries message and cause. An empty message
// skips the message comparison.
func AssertFailedWith[E expect.Exception](t assert.TestingT, r *Recorder, message string, cause error) (E, bool) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	var zero E
	if !r.AssertFailed(t) {
		return zero, false
	}
	got := r.Exceptions()[0]
	e, ok := got.(E)
	if !assert.True(t, ok, "Expected exception of type %T but got %T.", zero, got) {
		return zero, false
	}
	if message != "" && !assert.Equal(t, message, e.Message()) {
		return e, false
	}
	if !assert.Equal(t, cause, e.Cause()) {
		return e, false
	}
	return e, true
}

// String summarises the recorded messages.
func (r *Recorder) String() string {
	return fmt.Sprintf("expecttest.Recorder%q", r.Messages())
}
