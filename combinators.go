package parsekit

import "fmt"

// Expect runs child; on failure it discards child's error and emits a
// fresh expected-mismatch error at the current position whose single
// expected entry is label. On success child's output passes through
// unchanged.
func Expect[V any](child *Parser[V], label string) *Parser[V] {
	return &Parser[V]{Kind: KindExpect, child: child, label: label}
}

// Predict disables backtracking for the duration of child's
// evaluation: no mark/unmark/rewind inside child has any effect. Used
// to commit to a branch once enough of it has matched.
func Predict[V any](child *Parser[V]) *Parser[V] {
	return &Parser[V]{Kind: KindPredict, child: child}
}

// Maybe tries child; on failure it discards the error, rewinds, and
// produces lift()'s default instead of failing.
func Maybe[V any](child *Parser[V], lift func() V) *Parser[V] {
	return &Parser[V]{Kind: KindMaybe, child: child, lift: lift}
}

// Not succeeds, consuming nothing, exactly when child fails. If child
// succeeds, its output is destroyed with destroy and Not fails with
// expected label "opposite".
func Not[V, O any](child *Parser[V], destroy func(V), lift func() O) *Parser[O] {
	return &Parser[O]{
		Kind: KindNot,
		produce: func(in *Input) Result[O] {
			mk := in.Mark()
			res := Eval(child, in)
			if res.Err == nil {
				in.Rewind(mk)
				destroy(res.Value)
				return Failure[O](newExpected(in, "opposite"))
			}
			in.Unmark(mk)
			return Success(lift())
		},
	}
}

// Apply maps child's output through f on success; errors propagate
// unchanged.
func Apply[V, W any](child *Parser[V], f func(V) W) *Parser[W] {
	return &Parser[W]{
		Kind: KindApply,
		produce: func(in *Input) Result[W] {
			res := Eval(child, in)
			if res.Err != nil {
				return Failure[W](res.Err)
			}
			return Success(f(res.Value))
		},
	}
}

// TryApply is like Apply but f may itself fail; a non-nil error from f
// becomes an outright parse failure at the position where child
// finished matching.
func TryApply[V, W any](child *Parser[V], f func(V) (W, error)) *Parser[W] {
	return &Parser[W]{
		Kind: KindApply,
		produce: func(in *Input) Result[W] {
			res := Eval(child, in)
			if res.Err != nil {
				return Failure[W](res.Err)
			}
			w, err := f(res.Value)
			if err != nil {
				return Failure[W](newFailure(in, err.Error()))
			}
			return Success(w)
		},
	}
}

// ApplyTo is Apply with an extra, fixed context value threaded into f
// — used by the grammar compiler to tag AST nodes at rule boundaries
// without allocating a closure per rule.
func ApplyTo[V, C, W any](child *Parser[V], f func(V, C) W, ctx C) *Parser[W] {
	return &Parser[W]{
		Kind: KindApplyTo,
		produce: func(in *Input) Result[W] {
			res := Eval(child, in)
			if res.Err != nil {
				return Failure[W](res.Err)
			}
			return Success(f(res.Value, ctx))
		},
	}
}

// Pass succeeds, consuming nothing, producing V's zero value.
func Pass[V any]() *Parser[V] {
	return &Parser[V]{
		Kind: KindPass,
		produce: func(in *Input) Result[V] {
			var zero V
			return Success(zero)
		},
	}
}

// Fail always fails with msg as the failure reason.
func Fail[V any](msg string) *Parser[V] {
	return &Parser[V]{
		Kind: KindFail,
		produce: func(in *Input) Result[V] {
			return Failure[V](newFailure(in, msg))
		},
	}
}

// Failf is Fail with the message built via fmt.Sprintf.
func Failf[V any](format string, args ...any) *Parser[V] {
	return Fail[V](fmt.Sprintf(format, args...))
}

// Lift succeeds, consuming nothing, producing f().
func Lift[V any](f func() V) *Parser[V] {
	return &Parser[V]{
		Kind: KindLift,
		produce: func(in *Input) Result[V] {
			return Success(f())
		},
	}
}

// LiftVal succeeds, consuming nothing, producing the precomputed value
// v on every invocation.
func LiftVal[V any](v V) *Parser[V] {
	return &Parser[V]{
		Kind: KindLift,
		produce: func(in *Input) Result[V] {
			return Success(v)
		},
	}
}
