package parsekit

import "strconv"

// rawStringLit matches the exact literal s at the cursor.
func rawStringLit(s string) *Parser[string] {
	return &Parser[string]{
		Kind: KindStringLit,
		produce: func(in *Input) Result[string] {
			mk := in.Mark()
			for i := 0; i < len(s); i++ {
				b, ok := in.Peek()
				if !ok || b != s[i] {
					in.Rewind(mk)
					return Failure[string](newExpected(in, ""))
				}
				in.Advance()
			}
			in.Unmark(mk)
			return Success(s)
		},
	}
}

// StringLit matches the exact literal s, failing atomically (no
// partial consumption survives a mismatch) and reporting s itself,
// quoted, as the Expect label.
func StringLit(s string) *Parser[string] {
	return Expect(rawStringLit(s), strconv.Quote(s))
}
