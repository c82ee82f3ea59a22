package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		input         string
		wantErr       bool
		wantOutput    int
		wantRemaining int
	}{
		{name: "plain integer", input: "12345", wantOutput: 12345, wantRemaining: 5},
		{name: "explicit plus sign", input: "+42x", wantOutput: 42, wantRemaining: 3},
		{name: "negative", input: "-7", wantOutput: -7, wantRemaining: 2},
		{name: "no digits fails", input: "abc", wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := newInput("test", tc.input)
			res := Eval(Int(), in)
			assert.Equal(t, tc.wantErr, res.Err != nil)
			if tc.wantErr {
				return
			}
			assert.Equal(t, tc.wantOutput, res.Value)
			assert.Equal(t, tc.wantRemaining, in.pos)
		})
	}
}

func TestReal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		input      string
		wantErr    bool
		wantOutput float64
	}{
		{name: "integral part only", input: "123", wantOutput: 123},
		{name: "fractional part", input: "123.456", wantOutput: 123.456},
		{name: "negative with fraction", input: "-123.456", wantOutput: -123.456},
		{name: "signed exponent", input: "+3.14e-2", wantOutput: 3.14e-2},
		{name: "no digits fails", input: "abc", wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := newInput("test", tc.input)
			res := Eval(Real(), in)
			assert.Equal(t, tc.wantErr, res.Err != nil)
			if tc.wantErr {
				return
			}
			assert.InDelta(t, tc.wantOutput, res.Value, 1e-9)
		})
	}
}
