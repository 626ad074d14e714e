// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect

import (
	"sync/atomic"
)

// misuse panics with a descriptive message for API misuse.
//
//go:noinline
func misuse(what string) {
	panic("expect: " + what)
}

// scope is the dynamic extent of one Run. Its address is the identity tag
// of the exit signals raised inside it.
//
// An exit is one-shot: once a signal left the scope, further exits panic.
type scope struct {
	used   atomic.Uintptr
	closed atomic.Bool
}

// exitSignal unwinds the stack from a failing check to the Run that owns
// scope. outcome holds a settled Exit[T] for that run's T.
type exitSignal struct {
	scope   *scope
	outcome any
}

func (s *scope) checkOpen() {
	if s.closed.Load() {
		misuse("receiver used outside its block")
	}
}

// exit unwinds to the owning Run carrying outcome. It never returns.
func (s *scope) exit(outcome any) {
	s.checkOpen()
	if s.used.Add(1) != 1 {
		misuse("scope exited twice")
	}
	panic(&exitSignal{scope: s, outcome: outcome})
}

func (s *scope) close() {
	s.closed.Store(true)
}

// owns reports whether v is an exit signal raised in s.
func (s *scope) owns(v any) (*exitSignal, bool) {
	sig, ok := v.(*exitSignal)
	if !ok || sig.scope != s {
		return nil, false
	}
	return sig, true
}
