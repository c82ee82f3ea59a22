package parsekit

import (
	"fmt"
	"strings"
)

// digitSet is the decimal digit charset. Note this lists all ten
// digits; an earlier lineage of this code dropped '7' here, which was
// a bug, not a feature.
const digitSet = "0123456789"

// --- raw primitives -------------------------------------------------
//
// These produce a bare, unlabeled expected-mismatch error on failure.
// Every exported constructor below wraps one of these in Expect with a
// human label, so callers only ever see the Expect label, never a raw
// primitive's own failure.

func rawAny() *Parser[string] {
	return &Parser[string]{
		Kind: KindAny,
		produce: func(in *Input) Result[string] {
			b, ok := in.Peek()
			if !ok {
				return Failure[string](newExpected(in, ""))
			}
			in.Advance()
			return Success(string(b))
		},
	}
}

func rawSingle(c byte) *Parser[string] {
	return &Parser[string]{
		Kind: KindSingle,
		produce: func(in *Input) Result[string] {
			b, ok := in.Peek()
			if !ok || b != c {
				return Failure[string](newExpected(in, ""))
			}
			in.Advance()
			return Success(string(b))
		},
	}
}

func rawRange(lo, hi byte) *Parser[string] {
	return &Parser[string]{
		Kind: KindRange,
		produce: func(in *Input) Result[string] {
			b, ok := in.Peek()
			if !ok || b < lo || b > hi {
				return Failure[string](newExpected(in, ""))
			}
			in.Advance()
			return Success(string(b))
		},
	}
}

func rawOneOf(set string) *Parser[string] {
	return &Parser[string]{
		Kind: KindOneOf,
		produce: func(in *Input) Result[string] {
			b, ok := in.Peek()
			if !ok || !strings.ContainsRune(set, rune(b)) {
				return Failure[string](newExpected(in, ""))
			}
			in.Advance()
			return Success(string(b))
		},
	}
}

func rawNoneOf(set string) *Parser[string] {
	return &Parser[string]{
		Kind: KindNoneOf,
		produce: func(in *Input) Result[string] {
			b, ok := in.Peek()
			if !ok || strings.ContainsRune(set, rune(b)) {
				return Failure[string](newExpected(in, ""))
			}
			in.Advance()
			return Success(string(b))
		},
	}
}

func rawSatisfy(pred func(byte) bool) *Parser[string] {
	return &Parser[string]{
		Kind: KindSatisfy,
		produce: func(in *Input) Result[string] {
			b, ok := in.Peek()
			if !ok || !pred(b) {
				return Failure[string](newExpected(in, ""))
			}
			in.Advance()
			return Success(string(b))
		},
	}
}

// --- exported primitives ---------------------------------------------

// Any consumes a single character, whatever it is.
func Any() *Parser[string] {
	return Expect(rawAny(), "any character")
}

// Single consumes exactly the character c.
func Single(c byte) *Parser[string] {
	return Expect(rawSingle(c), "'"+string(c)+"'")
}

// Range consumes a single character in the inclusive range [lo, hi].
func Range(lo, hi byte) *Parser[string] {
	return Expect(rawRange(lo, hi), fmt.Sprintf("%c-%c", lo, hi))
}

// OneOf consumes a single character present in set.
func OneOf(set string) *Parser[string] {
	return Expect(rawOneOf(set), "one of '"+set+"'")
}

// NoneOf consumes a single character absent from set.
func NoneOf(set string) *Parser[string] {
	return Expect(rawNoneOf(set), "none of '"+set+"'")
}

// Satisfy consumes a single character for which pred returns true,
// reporting label as its Expect name on mismatch.
func Satisfy(pred func(byte) bool, label string) *Parser[string] {
	return Expect(rawSatisfy(pred), label)
}

// SOI succeeds, consuming nothing, only at the start of input.
func SOI[V any]() *Parser[V] {
	return &Parser[V]{
		Kind: KindSOI,
		produce: func(in *Input) Result[V] {
			var zero V
			if in.AtSOI() {
				return Success(zero)
			}
			return Failure[V](newExpected(in, "start of input"))
		},
	}
}

// EOI succeeds, consuming nothing, only at the end of input.
func EOI[V any]() *Parser[V] {
	return &Parser[V]{
		Kind: KindEOI,
		produce: func(in *Input) Result[V] {
			var zero V
			if in.AtEOI() {
				return Success(zero)
			}
			return Failure[V](newExpected(in, "end of input"))
		},
	}
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Digit parses a single decimal digit.
func Digit() *Parser[string] {
	return Expect(rawOneOf(digitSet), "digit")
}

// Alpha parses a single ASCII letter.
func Alpha() *Parser[string] {
	return Expect(rawSatisfy(isAlpha), "alpha")
}

// AlphaNum parses a single ASCII letter or decimal digit.
func AlphaNum() *Parser[string] {
	return Expect(rawSatisfy(func(b byte) bool { return isAlpha(b) || isDigit(b) }), "alphanumeric")
}

// Space parses a single space character.
func Space() *Parser[string] {
	return Expect(rawSingle(' '), "space")
}

// Tab parses a single tab character.
func Tab() *Parser[string] {
	return Expect(rawSingle('\t'), "tab")
}

// LF parses a line feed character.
func LF() *Parser[string] {
	return Expect(rawSingle('\n'), "newline")
}

// CR parses a carriage return character.
func CR() *Parser[string] {
	return Expect(rawSingle('\r'), "carriage return")
}

// CRLF parses the two-character sequence "\r\n".
func CRLF() *Parser[string] {
	return Expect(rawStringLit("\r\n"), "CRLF")
}

// Newline parses a newline, either CRLF or a bare LF.
func Newline() *Parser[string] {
	return Expect(Else(CRLF(), LF()), "new line")
}

// Whitespace parses zero or more space, tab, CR or LF characters,
// concatenating them into a single string.
func Whitespace() *Parser[string] {
	return Many(rawOneOf(" \t\r\n"), ConcatStrings, ConstLift(""))
}
