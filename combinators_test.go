package parsekit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectReplacesChildError(t *testing.T) {
	t.Parallel()

	p := Expect(Digit(), "a number")
	in := newInput("test", "x")
	res := Eval(p, in)

	assert.NotNil(t, res.Err)
	assert.Equal(t, []string{"a number"}, res.Err.Expected)
}

func TestExpectPassesSuccessThrough(t *testing.T) {
	t.Parallel()

	p := Expect(Digit(), "a number")
	in := newInput("test", "5")
	res := Eval(p, in)

	assert.Nil(t, res.Err)
	assert.Equal(t, "5", res.Value)
}

func TestPredictDisablesBacktracking(t *testing.T) {
	t.Parallel()

	// Without Predict, Also rewinds past the '1' on y's failure.
	bare := Also(Digit(), Alpha(), func(string) {}, func(d, a string) string { return d + a })
	in := newInput("test", "1 ")
	Eval(bare, in)
	assert.Equal(t, 0, in.pos)

	// Under Predict, the same Also still fails, but Mark/Rewind inside
	// it are no-ops: the '1' consumed by Digit is not un-consumed.
	predicted := Predict(bare)
	in2 := newInput("test", "1 ")
	res := Eval(predicted, in2)
	assert.NotNil(t, res.Err)
	assert.Equal(t, 1, in2.pos)
}

func TestMaybe(t *testing.T) {
	t.Parallel()

	p := Maybe(Digit(), ConstLift(""))

	in := newInput("test", "5")
	res := Eval(p, in)
	assert.Nil(t, res.Err)
	assert.Equal(t, "5", res.Value)

	in2 := newInput("test", "x")
	res2 := Eval(p, in2)
	assert.Nil(t, res2.Err)
	assert.Equal(t, "", res2.Value)
	assert.Equal(t, 0, in2.pos)
}

func TestNot(t *testing.T) {
	t.Parallel()

	p := Not(Digit(), func(string) {}, ConstLift(true))

	in := newInput("test", "x")
	res := Eval(p, in)
	assert.Nil(t, res.Err)
	assert.Equal(t, 0, in.pos, "Not must not consume input on success")

	in2 := newInput("test", "5")
	res2 := Eval(p, in2)
	assert.NotNil(t, res2.Err)
	assert.Equal(t, 0, in2.pos, "Not must rewind the child's consumption on its own failure")
}

func TestApply(t *testing.T) {
	t.Parallel()

	p := Apply(Digit(), func(s string) int { return len(s) })
	in := newInput("test", "5")
	res := Eval(p, in)

	assert.Nil(t, res.Err)
	assert.Equal(t, 1, res.Value)
}

func TestApplyPropagatesChildError(t *testing.T) {
	t.Parallel()

	p := Apply(Digit(), func(s string) int { return len(s) })
	in := newInput("test", "x")
	res := Eval(p, in)

	assert.NotNil(t, res.Err)
}

func TestTryApplySuccess(t *testing.T) {
	t.Parallel()

	p := TryApply(Digit(), func(s string) (int, error) { return 7, nil })
	in := newInput("test", "5")
	res := Eval(p, in)

	assert.Nil(t, res.Err)
	assert.Equal(t, 7, res.Value)
}

func TestTryApplyFailureBecomesParseFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	p := TryApply(Digit(), func(string) (int, error) { return 0, boom })
	in := newInput("test", "5")
	res := Eval(p, in)

	assert.NotNil(t, res.Err)
	assert.True(t, res.Err.IsFailure)
}

func TestApplyTo(t *testing.T) {
	t.Parallel()

	p := ApplyTo(Digit(), func(s string, ctx int) string {
		return s + string(rune('0'+ctx))
	}, 3)
	in := newInput("test", "5")
	res := Eval(p, in)

	assert.Nil(t, res.Err)
	assert.Equal(t, "53", res.Value)
}

func TestPass(t *testing.T) {
	t.Parallel()

	p := Pass[string]()
	in := newInput("test", "anything")
	res := Eval(p, in)

	assert.Nil(t, res.Err)
	assert.Equal(t, "", res.Value)
	assert.Equal(t, 0, in.pos)
}

func TestFail(t *testing.T) {
	t.Parallel()

	p := Fail[string]("nope")
	in := newInput("test", "x")
	res := Eval(p, in)

	assert.NotNil(t, res.Err)
	assert.True(t, res.Err.IsFailure)
	assert.Equal(t, "nope", res.Err.Failure)
}

func TestFailf(t *testing.T) {
	t.Parallel()

	p := Failf[string]("expected %d things", 3)
	in := newInput("test", "x")
	res := Eval(p, in)

	assert.NotNil(t, res.Err)
	assert.Equal(t, "expected 3 things", res.Err.Failure)
}

func TestLift(t *testing.T) {
	t.Parallel()

	calls := 0
	p := Lift(func() int { calls++; return 42 })
	in := newInput("test", "")
	res := Eval(p, in)

	assert.Nil(t, res.Err)
	assert.Equal(t, 42, res.Value)
	assert.Equal(t, 1, calls)
}

func TestLiftVal(t *testing.T) {
	t.Parallel()

	p := LiftVal(42)
	in := newInput("test", "")
	res := Eval(p, in)

	assert.Nil(t, res.Err)
	assert.Equal(t, 42, res.Value)
}
