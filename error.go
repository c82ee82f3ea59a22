package parsekit

import (
	"fmt"
	"strings"
)

// ErrorValue is a positional parse error. It carries either an ordered
// set of unique "expected" labels, or a single free-form failure
// message — never both.
type ErrorValue struct {
	Filename string

	// Pos, Row, Col locate the error; Next/HasNext describe the
	// character that was actually found there (HasNext is false at
	// end of input).
	Pos, Row, Col int
	Next          byte
	HasNext       bool

	// IsFailure selects which carrier below is populated.
	IsFailure bool
	Failure   string
	Expected  []string
}

// Error implements the error interface.
func (e *ErrorValue) Error() string {
	return e.Render()
}

// Render produces the human-readable form:
//
//	<filename>:<row>:<col>: error: <body>
func (e *ErrorValue) Render() string {
	return fmt.Sprintf("%s:%d:%d: error: %s", e.Filename, e.Row, e.Col, e.body())
}

func (e *ErrorValue) body() string {
	if e.IsFailure {
		return e.Failure
	}
	list := oxfordJoin(e.Expected)
	if !e.HasNext {
		return "expected " + list
	}
	return fmt.Sprintf("expected %s at %s\n", list, charName(e.Next))
}

func oxfordJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}

func charName(c byte) string {
	switch c {
	case '\a':
		return "bell"
	case '\b':
		return "backspace"
	case '\f':
		return "formfeed"
	case '\r':
		return "carriage return"
	case '\v':
		return "vertical tab"
	case '\n':
		return "newline"
	case '\t':
		return "tab"
	default:
		return "'" + string(c) + "'"
	}
}

// newExpected mints an expected-mismatch error at the cursor's current
// position with a single expected label.
func newExpected(in *Input, label string) *ErrorValue {
	e := &ErrorValue{
		Filename: in.filename,
		Pos:      in.pos,
		Row:      in.row,
		Col:      in.col,
		Next:     in.next,
		HasNext:  in.hasNext,
	}
	if label != "" {
		e.Expected = []string{label}
	}
	return e
}

// newFailure mints an outright-failure error at the cursor's current
// position.
func newFailure(in *Input, msg string) *ErrorValue {
	return &ErrorValue{
		Filename:  in.filename,
		Pos:       in.pos,
		Row:       in.row,
		Col:       in.col,
		Next:      in.next,
		HasNext:   in.hasNext,
		IsFailure: true,
		Failure:   msg,
	}
}

// either implements the farthest-position-wins combination rule used
// by Else and Or: the error with the greater source position wins and
// the other is discarded; on a tie, y's expected labels are merged
// into x's (set semantics, preserving x's order) and y is discarded.
func either(x, y *ErrorValue) *ErrorValue {
	if x == nil {
		return y
	}
	if y == nil {
		return x
	}
	switch {
	case x.Pos > y.Pos:
		return x
	case y.Pos > x.Pos:
		return y
	default:
		if !x.IsFailure && !y.IsFailure {
			x.Expected = mergeUnique(x.Expected, y.Expected)
		}
		return x
	}
}

func mergeUnique(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// promoteMany1 rewrites e's expected list as the single label "one or
// more of A, B, ..., Z".
func promoteMany1(e *ErrorValue) *ErrorValue {
	if e == nil || e.IsFailure {
		return e
	}
	e.Expected = []string{"one or more of " + strings.Join(e.Expected, ", ")}
	return e
}

// promoteCount rewrites e's expected list with the prefix "<n> of ".
func promoteCount(e *ErrorValue, n uint) *ErrorValue {
	if e == nil || e.IsFailure {
		return e
	}
	e.Expected = []string{fmt.Sprintf("%d of %s", n, strings.Join(e.Expected, ", "))}
	return e
}
