// Package regex compiles POSIX-like regex literals into parsekit
// parsers. It is a bootstrap in the same sense as parsekit's own
// grammar compiler: the regex grammar is built out of parsekit
// combinators and its fold callbacks return Parser values rather than
// strings, so compiling a pattern emits a Parser directly without an
// intermediate tree.
package regex

import (
	"fmt"
	"strings"

	pk "github.com/parsekit/parsekit"
)

// Ops supplies the payload-type-specific glue the compiled parser
// needs: how to turn matched text into a V, how to concatenate two Vs
// produced by adjacent regex terms, and the identity value for an
// empty match (the lift default for Many/Maybe/{n}).
//
// Concat must treat Zero() as a left identity: Concat(Zero(), v) must
// equal v. This mirrors the original compiler's use of string
// concatenation with "" as the identity.
type Ops[V any] struct {
	Wrap   func(string) V
	Concat func(V, V) V
	Zero   func() V
}

// StringOps is the Ops instance that reproduces the original regex
// compiler's behavior exactly: matched text folds by concatenation.
func StringOps() Ops[string] {
	return Ops[string]{
		Wrap:   func(s string) string { return s },
		Concat: pk.ConcatStrings,
		Zero:   func() string { return "" },
	}
}

// Compile parses the regex literal src and returns the parser it
// describes, specialized to payload type V via ops.
func Compile[V any](src string, ops Ops[V]) (*pk.Parser[V], error) {
	type cv = *pk.Parser[V]

	regexP := pk.New[cv]("regex")
	termP := pk.New[cv]("term")
	factorP := pk.New[cv]("factor")
	baseP := pk.New[cv]("base")

	noopV := func(V) {}
	noopCV := func(cv) {}

	alt := pk.Also(termP, pk.Preceded(pk.Single('|'), regexP), noopCV,
		func(x, y cv) cv { return pk.Or(x, y) })
	pk.Define(regexP, pk.Else(alt, termP))

	factorList := pk.Many(factorP,
		func(acc, next cv) cv {
			return pk.Also(acc, next, noopV, ops.Concat)
		},
		func() cv { return pk.LiftVal(ops.Zero()) },
	)
	pk.Define(termP, factorList)

	star := pk.Also(baseP, pk.Single('*'), noopCV,
		func(b cv, _ string) cv { return pk.Many(b, ops.Concat, ops.Zero) })
	plus := pk.Also(baseP, pk.Single('+'), noopCV,
		func(b cv, _ string) cv { return pk.Many1(b, ops.Concat, ops.Zero) })
	optional := pk.Also(baseP, pk.Single('?'), noopCV,
		func(b cv, _ string) cv { return pk.Maybe(b, ops.Zero) })
	repeatN := pk.Also(baseP, pk.Delimited(pk.Single('{'), pk.Int(), pk.Single('}')), noopCV,
		func(b cv, n int) cv { return pk.Count(b, noopV, ops.Concat, uint(n), ops.Zero) })
	pk.Define(factorP, pk.Or(star, plus, optional, repeatN, baseP))

	parenthesized := pk.Delimited(pk.Single('('), regexP, pk.Single(')'))
	bracketed := pk.Apply(
		pk.Delimited(pk.Single('['), rangeContent(), pk.Single(']')),
		func(s string) cv { return compileRange(s, ops) },
	)
	escaped := pk.Apply(rawEscapeText(), func(s string) cv { return compileEscape(s, ops) })
	literal := pk.Apply(pk.NoneOf("()|"), func(s string) cv { return compileEscape(s, ops) })
	pk.Define(baseP, pk.Or(parenthesized, bracketed, escaped, literal))

	out, errv := pk.Parse("<regex>", src, pk.Terminated(regexP, pk.EOI[string]()))

	pk.Cleanup(regexP, termP, factorP, baseP)

	if errv != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", src, errv)
	}
	return out, nil
}

// rawEscapeText matches a backslash followed by any one character,
// returning both characters as a two-byte string.
func rawEscapeText() *pk.Parser[string] {
	return pk.Also(pk.Single('\\'), pk.Any(), func(string) {},
		func(bs, c string) string { return bs + c })
}

// rangeContent captures the raw text of a bracket expression, exactly
// as written (escapes intact), for compileRange to interpret.
func rangeContent() *pk.Parser[string] {
	elem := pk.Else(rawEscapeText(), pk.NoneOf("]"))
	return pk.Many(elem, pk.ConcatStrings, func() string { return "" })
}

func compileEscape[V any](s string, ops Ops[V]) *pk.Parser[V] {
	if s == "." {
		return pk.Apply(pk.Any(), ops.Wrap)
	}
	if s == "$" {
		return pk.EOI[V]()
	}
	if s == "^" {
		return pk.SOI[V]()
	}
	if len(s) == 2 && s[0] == '\\' {
		switch s[1] {
		case 'd':
			return pk.Apply(pk.Digit(), ops.Wrap)
		case 'D':
			return pk.Not[string, V](pk.Digit(), func(string) {}, ops.Zero)
		case 's':
			return pk.Apply(pk.Space(), ops.Wrap)
		case 'S':
			return pk.Not[string, V](pk.Space(), func(string) {}, ops.Zero)
		case 'w':
			return pk.Apply(pk.AlphaNum(), ops.Wrap)
		case 'W':
			return pk.Not[string, V](pk.AlphaNum(), func(string) {}, ops.Zero)
		case 'Z':
			return pk.EOI[V]()
		default:
			return pk.Apply(pk.Single(s[1]), ops.Wrap)
		}
	}
	return pk.Apply(pk.Single(s[0]), ops.Wrap)
}

// compileRange interprets a bracket-expression body (already stripped
// of its enclosing '[' ']') into a matcher: a leading '^' negates, a-z
// spans expand into the enumerated characters, and a backslash escape
// suppresses both range and negation meaning on the character that
// follows it.
func compileRange[V any](s string, ops Ops[V]) *pk.Parser[V] {
	if s == "" {
		return pk.Fail[V]("invalid regex range specifier: empty")
	}
	negate := false
	if s[0] == '^' {
		negate = true
		s = s[1:]
	}
	if s == "" {
		return pk.Fail[V]("invalid regex range specifier: empty after '^'")
	}

	var set strings.Builder
	runes := []byte(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '\\' && i+1 >= len(runes) {
			// Trailing lone backslash: the original compiler stops
			// here rather than emitting it literally.
			break
		}
		switch {
		case c == '\\':
			i++
			set.WriteByte(runes[i])
		case c == '-' && i > 0 && i+1 < len(runes) && runes[i+1] != '\\':
			start, end := runes[i-1], runes[i+1]
			if end >= start {
				for b := start + 1; b <= end; b++ {
					set.WriteByte(b)
				}
			}
			i++
		default:
			set.WriteByte(c)
		}
	}
	charset := set.String()
	if negate {
		return pk.Apply(pk.NoneOf(charset), ops.Wrap)
	}
	return pk.Apply(pk.OneOf(charset), ops.Wrap)
}
