package grammar

import (
	"fmt"
	"strconv"

	pk "github.com/parsekit/parsekit"
)

// unescapeTable is the backslash-escape table shared by string and
// character literals: \n \t \r \0 \a \b \f \v \\ \' \".
var unescapeTable = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'v':  '\v',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// Unescape replaces each recognized backslash escape in s with the
// character it stands for, leaving any other byte (including an
// unrecognized escape, backslash and all) untouched. Regex literals do
// not go through Unescape: their escapes have their own, different
// meaning and are interpreted by the regex compiler instead.
func Unescape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			if r, ok := unescapeTable[s[i+1]]; ok {
				out = append(out, r)
				i++
				continue
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}

// lexeme skips leading whitespace before p; every token in the grammar
// dialect except the name or index inside a "<...>" reference and its
// closing '>' is built this way, so whitespace handling never needs a
// dedicated rule of its own.
func lexeme[V any](p *pk.Parser[V]) *pk.Parser[V] {
	return pk.Preceded(pk.Whitespace(), p)
}

// lexEOI requires, after skipping trailing whitespace, that no input
// remains.
func lexEOI() *pk.Parser[string] {
	return pk.Preceded(pk.Whitespace(), pk.EOI[string]())
}

func escapePair() *pk.Parser[string] {
	return pk.Also(pk.Single('\\'), pk.Any(), func(string) {},
		func(bs, c string) string { return bs + c })
}

func identCore() *pk.Parser[string] {
	tail := pk.Many(pk.Else(pk.AlphaNum(), pk.Single('_')), pk.ConcatStrings, pk.ConstLift(""))
	return pk.Also(pk.Alpha(), tail, func(string) {}, func(h, t string) string { return h + t })
}

func digitsCore() *pk.Parser[string] {
	return pk.Many1(pk.Digit(), pk.ConcatStrings, pk.ConstLift(""))
}

// tokenInner matches the text inside a "<...>" reference: either a
// bare name or a positional index.
func tokenInner() *pk.Parser[string] {
	return pk.Else(identCore(), digitsCore())
}

func stringTextParser() *pk.Parser[string] {
	body := pk.Many(pk.Else(escapePair(), pk.NoneOf(`"`)), pk.ConcatStrings, pk.ConstLift(""))
	raw := pk.Delimited(pk.Single('"'), body, pk.Single('"'))
	return pk.Apply(raw, Unescape)
}

func charTextParser() *pk.Parser[string] {
	body := pk.Else(escapePair(), pk.NoneOf("'"))
	raw := pk.Delimited(pk.Single('\''), body, pk.Single('\''))
	return pk.Apply(raw, Unescape)
}

// regexTextParser captures a "/.../" literal's raw body, escapes
// intact; the regex compiler interprets those escapes itself.
func regexTextParser() *pk.Parser[string] {
	body := pk.Many(pk.Else(escapePair(), pk.NoneOf("/")), pk.ConcatStrings, pk.ConstLift(""))
	return pk.Delimited(pk.Single('/'), body, pk.Single('/'))
}

// resolveRef finds the parser a "<token>" reference names: a decimal
// token is a positional index into refs, anything else a name lookup
// against each ref's Name field.
func resolveRef(refs []cv, token string) (cv, error) {
	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 || n >= len(refs) {
			return nil, fmt.Errorf("grammar reference <%d> out of range (have %d)", n, len(refs))
		}
		return refs[n], nil
	}
	return findByName(refs, token)
}

func findByName(refs []cv, name string) (cv, error) {
	for _, r := range refs {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("grammar reference %q not found among supplied parsers", name)
}
