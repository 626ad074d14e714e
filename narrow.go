// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expect

// Narrowing checks. Go methods cannot carry type parameters, so the
// typed checks are free functions over a receiver.
//
// The Must forms take an [ExitReceiver]: when they return, the result is
// present and of the requested type. The other forms work on any
// [Receiver] and report success alongside the value.

// IsType fails unless value holds a V. It returns the converted value and
// whether the check passed.
func IsType[V any](r Receiver, value any, message ...string) (V, bool) {
	v, ok := value.(V)
	if !ok {
		r.Fail(messageOr(message, MessageExpectedType), nil)
	}
	return v, ok
}

// Deref fails if p is nil, otherwise returns *p.
func Deref[V any](r Receiver, p *V, message ...string) (V, bool) {
	if p == nil {
		r.Fail(messageOr(message, MessageExpectedNonNull), nil)
		var zero V
		return zero, false
	}
	return *p, true
}

// MustType returns value as a V or exits the run.
//
//	n := expect.MustType[int](r, v)
func MustType[V, T any](r *ExitReceiver[T], value any, message ...string) V {
	v, _ := IsType[V](r, value, message...)
	return v
}

// MustNotNil returns value or exits the run if it is absent.
func MustNotNil[V, T any](r *ExitReceiver[T], value V, message ...string) V {
	r.IsNotNull(value, message...)
	return value
}

// MustDeref returns *p or exits the run if p is nil.
func MustDeref[V, T any](r *ExitReceiver[T], p *V, message ...string) V {
	v, _ := Deref(r, p, message...)
	return v
}
