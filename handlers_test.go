// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/expect"
)

// calls collects callback invocations in order.
type calls []string

func (tr *calls) note(name string) func(expect.Exception) {
	return func(e expect.Exception) { *tr = append(*tr, name+":"+e.Message()) }
}

func TestContinueNoCallback(t *testing.T) {
	reached := false
	expect.RunContinue(expect.Continue(), func(r *expect.ContinueReceiver) expect.Unit {
		r.IsTrue(false, "bad")
		reached = true
		return expect.Unit{}
	})
	assert.True(t, reached)
}

func TestContinueCallbacksInOrder(t *testing.T) {
	var tr calls
	h := expect.Continue(tr.note("a"), nil, tr.note("b"))
	h.HandleFail(expect.NewFailedExpectation("x", nil))
	h.HandleFail(expect.NewFailedExpectation("y", nil))

	if diff := cmp.Diff(calls{"a:x", "b:x", "a:y", "b:y"}, tr); diff != "" {
		t.Fatalf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestPanicPolicy(t *testing.T) {
	var tr calls
	e := expect.NewFailedExpectation("fatal", nil)
	assert.PanicsWithValue(t, expect.Exception(e), func() {
		expect.Panic(tr.note("log")).HandleFail(e)
	})
	assert.Equal(t, calls{"log:fatal"}, tr)
}

func TestReturn(t *testing.T) {
	var tr calls
	got, err := expect.Run(expect.Return("fallback", tr.note("cb")), func(r *expect.ExitReceiver[string]) string {
		r.IsTrue(false)
		return "ok"
	})
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
	assert.Equal(t, calls{"cb:" + expect.MessageExpectedConditionTrue}, tr)
}

func TestReturnZero(t *testing.T) {
	got, err := expect.Run(expect.ReturnZero[*banana](), func(r *expect.ExitReceiver[*banana]) *banana {
		r.IsFalse(true)
		return &banana{}
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReturnLastRoundTrip(t *testing.T) {
	h := expect.ReturnLast("default")

	failing := func(r *expect.ExitReceiver[string]) string {
		r.IsTrue(false)
		return "never"
	}

	got, err := expect.Run(h, failing)
	require.NoError(t, err)
	assert.Equal(t, "default", got, "before any success the default is used")

	got, err = expect.Run(h, func(r *expect.ExitReceiver[string]) string { return "X" })
	require.NoError(t, err)
	assert.Equal(t, "X", got)

	got, err = expect.Run(h, failing)
	require.NoError(t, err)
	assert.Equal(t, "X", got)

	got, _ = expect.Run(h, func(r *expect.ExitReceiver[string]) string { return "Y" })
	assert.Equal(t, "Y", got)
	got, _ = expect.Run(h, failing)
	assert.Equal(t, "Y", got)
}

func TestReturnLastInstancesAreIndependent(t *testing.T) {
	a, b := expect.ReturnLast(0), expect.ReturnLast(0)
	_, _ = expect.Run(a, func(r *expect.ExitReceiver[int]) int { return 1 })

	_, ok := b.Last()
	assert.False(t, ok)
	v, ok := a.Last()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestReturnLastCallback(t *testing.T) {
	var tr calls
	h := expect.ReturnLast(0, tr.note("cb"))
	_, _ = expect.Run(h, func(r *expect.ExitReceiver[int]) int {
		r.Fail("oops", nil)
		return 1
	})
	assert.Equal(t, calls{"cb:oops"}, tr)
}

func TestThrowRaisesException(t *testing.T) {
	var seen expect.Exception
	_, err := expect.Run(expect.Throw[int](func(e expect.Exception) { seen = e }), func(r *expect.ExitReceiver[int]) int {
		r.IsTrue(false)
		return 1
	})
	require.Error(t, err)
	assert.Same(t, seen, err, "the raised error is the exception itself")
	assert.Equal(t, expect.MessageExpectedConditionTrue, err.Error())
}

func TestThrowWithFactory(t *testing.T) {
	type wrapped struct{ error }
	var made error
	factory := func(e expect.Exception) error {
		made = &wrapped{e}
		return made
	}
	_, err := expect.Run(expect.ThrowWith[int](factory), func(r *expect.ExitReceiver[int]) int {
		r.IsTrue(false)
		return 1
	})
	assert.Same(t, made, err, "the raised error is exactly f(E)")
}

func TestThrowWithNilFactoryResult(t *testing.T) {
	_, err := expect.Run(expect.ThrowWith[int](func(expect.Exception) error { return nil }), func(r *expect.ExitReceiver[int]) int {
		r.IsNull("x")
		return 1
	})
	var failed *expect.FailedExpectation
	require.ErrorAs(t, err, &failed)

	_, err = expect.Run(expect.ThrowWith[int](nil), func(r *expect.ExitReceiver[int]) int {
		r.Fail("nil factory", nil)
		return 1
	})
	assert.EqualError(t, err, "nil factory")
}

func TestThrowCarriesCause(t *testing.T) {
	cause := errors.New("io")
	_, err := expect.Run(expect.Throw[int](), func(r *expect.ExitReceiver[int]) int {
		r.NoError(cause)
		return 1
	})
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, expect.ErrExpectation)
}

func TestFuncAdapters(t *testing.T) {
	var got expect.Exception
	var c expect.ContinueHandler = expect.ContinueFunc(func(e expect.Exception) { got = e })
	e := expect.NewCaughtException("", nil)
	c.HandleFail(e)
	assert.Same(t, e, got)

	var x expect.ExitHandler[int] = expect.ExitFunc[int](func(expect.Exception) expect.Exit[int] { return expect.ExitWith(3) })
	v, ok := x.HandleFail(e).Value()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}
