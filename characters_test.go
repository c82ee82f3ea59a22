package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAny(t *testing.T) {
	t.Parallel()

	in := newInput("test", "x")
	res := Eval(Any(), in)
	assert.Nil(t, res.Err)
	assert.Equal(t, "x", res.Value)
	assert.Equal(t, 1, in.pos)

	in = newInput("test", "")
	res = Eval(Any(), in)
	if assert.NotNil(t, res.Err) {
		assert.Equal(t, []string{"any character"}, res.Err.Expected)
	}
}

func TestSingle(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		c       byte
		input   string
		wantErr bool
	}{
		{name: "match", c: 'a', input: "abc"},
		{name: "mismatch", c: 'a', input: "xbc", wantErr: true},
		{name: "empty input", c: 'a', input: "", wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := newInput("test", tc.input)
			res := Eval(Single(tc.c), in)
			assert.Equal(t, tc.wantErr, res.Err != nil)
			if !tc.wantErr {
				assert.Equal(t, string(tc.c), res.Value)
				assert.Equal(t, 1, in.pos)
			}
		})
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	p := Range('a', 'f')

	in := newInput("test", "c")
	res := Eval(p, in)
	assert.Nil(t, res.Err)
	assert.Equal(t, "c", res.Value)

	in = newInput("test", "z")
	res = Eval(p, in)
	assert.NotNil(t, res.Err)
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	p := OneOf("xyz")

	in := newInput("test", "y")
	res := Eval(p, in)
	assert.Nil(t, res.Err)
	assert.Equal(t, "y", res.Value)

	in = newInput("test", "a")
	res = Eval(p, in)
	assert.NotNil(t, res.Err)
}

func TestNoneOf(t *testing.T) {
	t.Parallel()

	p := NoneOf("xyz")

	in := newInput("test", "a")
	res := Eval(p, in)
	assert.Nil(t, res.Err)
	assert.Equal(t, "a", res.Value)

	in = newInput("test", "x")
	res = Eval(p, in)
	assert.NotNil(t, res.Err)
}

func TestSatisfy(t *testing.T) {
	t.Parallel()

	isVowel := func(b byte) bool {
		switch b {
		case 'a', 'e', 'i', 'o', 'u':
			return true
		}
		return false
	}
	p := Satisfy(isVowel, "vowel")

	in := newInput("test", "e")
	res := Eval(p, in)
	assert.Nil(t, res.Err)

	in = newInput("test", "b")
	res = Eval(p, in)
	if assert.NotNil(t, res.Err) {
		assert.Equal(t, []string{"vowel"}, res.Err.Expected)
	}
}

func TestSOIEOI(t *testing.T) {
	t.Parallel()

	in := newInput("test", "abc")
	res := Eval(SOI[string](), in)
	assert.Nil(t, res.Err)

	in.Advance()
	res = Eval(SOI[string](), in)
	assert.NotNil(t, res.Err)

	in = newInput("test", "")
	res = Eval(EOI[string](), in)
	assert.Nil(t, res.Err)

	in = newInput("test", "a")
	res = Eval(EOI[string](), in)
	assert.NotNil(t, res.Err)
}

func TestDigitAcceptsAllTenDigits(t *testing.T) {
	t.Parallel()

	for _, d := range "0123456789" {
		in := newInput("test", string(d))
		res := Eval(Digit(), in)
		assert.Nilf(t, res.Err, "digit %q should be accepted", d)
	}
}

func TestAlpha(t *testing.T) {
	t.Parallel()

	in := newInput("test", "Q")
	res := Eval(Alpha(), in)
	assert.Nil(t, res.Err)

	in = newInput("test", "5")
	res = Eval(Alpha(), in)
	assert.NotNil(t, res.Err)
}

func TestAlphaNum(t *testing.T) {
	t.Parallel()

	in := newInput("test", "5")
	res := Eval(AlphaNum(), in)
	assert.Nil(t, res.Err)

	in = newInput("test", "z")
	res = Eval(AlphaNum(), in)
	assert.Nil(t, res.Err)

	in = newInput("test", "$")
	res = Eval(AlphaNum(), in)
	assert.NotNil(t, res.Err)
}

func TestSpaceTab(t *testing.T) {
	t.Parallel()

	in := newInput("test", " ")
	assert.Nil(t, Eval(Space(), in).Err)

	in = newInput("test", "\t")
	assert.Nil(t, Eval(Tab(), in).Err)
}

func TestLFCRCRLF(t *testing.T) {
	t.Parallel()

	in := newInput("test", "\n")
	assert.Nil(t, Eval(LF(), in).Err)

	in = newInput("test", "\r")
	assert.Nil(t, Eval(CR(), in).Err)

	in = newInput("test", "\r\n")
	res := Eval(CRLF(), in)
	assert.Nil(t, res.Err)
	assert.Equal(t, "\r\n", res.Value)
	assert.Equal(t, 2, in.pos)

	in = newInput("test", "\r ")
	res = Eval(CRLF(), in)
	assert.NotNil(t, res.Err)
	assert.Equal(t, 0, in.pos, "a failed CRLF must not consume the lone '\\r'")
}

func TestNewline(t *testing.T) {
	t.Parallel()

	in := newInput("test", "\r\nrest")
	res := Eval(Newline(), in)
	assert.Nil(t, res.Err)
	assert.Equal(t, "\r\n", res.Value)

	in = newInput("test", "\nrest")
	res = Eval(Newline(), in)
	assert.Nil(t, res.Err)
	assert.Equal(t, "\n", res.Value)
}

func TestWhitespace(t *testing.T) {
	t.Parallel()

	in := newInput("test", "  \t\nx")
	res := Eval(Whitespace(), in)
	assert.Nil(t, res.Err)
	assert.Equal(t, "  \t\n", res.Value)
	assert.Equal(t, 4, in.pos)

	// Whitespace never fails: it just produces the empty string.
	in = newInput("test", "x")
	res = Eval(Whitespace(), in)
	assert.Nil(t, res.Err)
	assert.Equal(t, "", res.Value)
	assert.Equal(t, 0, in.pos)
}

func BenchmarkAlphaNum(b *testing.B) {
	p := AlphaNum()
	for i := 0; i < b.N; i++ {
		Eval(p, newInput("bench", "x"))
	}
}
