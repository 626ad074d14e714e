// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect_test

import (
	"errors"
	"strconv"
	"testing"

	"code.hybscloud.com/expect"
)

func TestExitWith(t *testing.T) {
	x := expect.ExitWith(42)
	if !x.IsReturn() || x.IsRaise() {
		t.Fatal("expected return directive")
	}
	v, ok := x.Value()
	if !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
	if x.Err() != nil {
		t.Fatalf("unexpected error %v", x.Err())
	}
}

func TestExitWithError(t *testing.T) {
	boom := errors.New("boom")
	x := expect.ExitWithError[int](boom)
	if x.IsReturn() || !x.IsRaise() {
		t.Fatal("expected raise directive")
	}
	if _, ok := x.Value(); ok {
		t.Fatal("raise must not carry a value")
	}
	if x.Err() != boom {
		t.Fatalf("got %v, want %v", x.Err(), boom)
	}
}

func TestZeroExit(t *testing.T) {
	var x expect.Exit[string]
	if x.IsReturn() || x.IsRaise() {
		t.Fatal("zero exit declares nothing")
	}
	got := expect.MatchExit(x,
		func(string) error { return nil },
		func(err error) error { return err },
	)
	if got != expect.ErrNoExit {
		t.Fatalf("got %v, want ErrNoExit", got)
	}
}

func TestMatchExit(t *testing.T) {
	onReturn := func(v int) string { return "value " + strconv.Itoa(v) }
	onRaise := func(err error) string { return "error " + err.Error() }

	if got := expect.MatchExit(expect.ExitWith(7), onReturn, onRaise); got != "value 7" {
		t.Fatalf("got %q", got)
	}
	if got := expect.MatchExit(expect.ExitWithError[int](errors.New("x")), onReturn, onRaise); got != "error x" {
		t.Fatalf("got %q", got)
	}
}

func TestMapExit(t *testing.T) {
	double := func(x int) int { return x * 2 }

	v, _ := expect.MapExit(expect.ExitWith(21), double).Value()
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}

	boom := errors.New("boom")
	if err := expect.MapExit(expect.ExitWithError[int](boom), double).Err(); err != boom {
		t.Fatalf("got %v, want %v", err, boom)
	}

	if z := expect.MapExit(expect.Exit[int]{}, double); z.IsReturn() || z.IsRaise() {
		t.Fatal("mapping the zero exit must stay zero")
	}
}
