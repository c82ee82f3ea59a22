package parsekit

import "fmt"

// Eval is the parse engine: a recursive interpreter mapping (Parser,
// Input) to a Result. Most kinds are opaque at this level — their
// evaluation rule was compiled into the produce closure by their
// constructor, because they either bridge between two different
// payload types (Apply, Also, Many, ...) or simply synthesize V
// straight from raw input (the character primitives) — but the kinds
// that stay within a single payload type V and whose behavior Eval can
// express directly against Parser[V]'s own structural fields are
// interpreted inline here: Undefined, Expect, Predict, Maybe, Else and
// Or.
func Eval[V any](p *Parser[V], in *Input) Result[V] {
	switch p.Kind {
	case KindUndefined:
		return Failure[V](newFailure(in, fmt.Sprintf("undefined parser %q evaluated", p.Name)))

	case KindExpect:
		res := Eval(p.child, in)
		if res.Err != nil {
			return Failure[V](newExpected(in, p.label))
		}
		return res

	case KindPredict:
		prev := in.backtracking
		in.backtracking = false
		res := Eval(p.child, in)
		in.backtracking = prev
		return res

	case KindMaybe:
		mk := in.Mark()
		res := Eval(p.child, in)
		if res.Err != nil {
			in.Rewind(mk)
			return Success(p.lift())
		}
		in.Unmark(mk)
		return res

	case KindElse:
		r1 := Eval(p.child, in)
		if r1.Err == nil {
			return r1
		}
		r2 := Eval(p.second, in)
		if r2.Err == nil {
			return r2
		}
		return Failure[V](either(r1.Err, r2.Err))

	case KindOr:
		var last *ErrorValue
		for _, c := range p.children {
			r := Eval(c, in)
			if r.Err == nil {
				return r
			}
			last = either(last, r.Err)
		}
		return Failure[V](last)

	default:
		return p.produce(in)
	}
}

// New returns a fresh, retained, Undefined parser that may be
// referenced from inside the bodies of other parsers, including its
// own eventual body — this is what enables recursive grammars.
func New[V any](name string) *Parser[V] {
	return &Parser[V]{Retained: true, Name: name, Kind: KindUndefined}
}

// Define installs body's kind and payload into p. body is consumed: it
// must not be used again after Define returns. If p is not retained,
// the installation is refused and p becomes a Fail parser explaining
// the misuse, rather than silently doing the wrong thing.
func Define[V any](p *Parser[V], body *Parser[V]) {
	if !p.Retained {
		msg := fmt.Sprintf("define: parser %q is not retained", p.Name)
		p.Kind = KindFail
		p.child, p.second, p.children, p.lift = nil, nil, nil, nil
		p.produce = func(in *Input) Result[V] { return Failure[V](newFailure(in, msg)) }
		return
	}
	p.Kind = body.Kind
	p.label = body.label
	p.child = body.child
	p.second = body.second
	p.children = body.children
	p.lift = body.lift
	p.produce = body.produce
}

// Undefine tears down a retained parser's body while preserving its
// shell (identity, Name, Retained), reverting it to Undefined. It is
// what lets Cleanup sever a cyclic set of retained parsers before
// deleting them.
func Undefine[V any](p *Parser[V]) {
	if p == nil {
		return
	}
	p.Kind = KindUndefined
	p.child, p.second, p.children, p.lift, p.produce = nil, nil, nil, nil, nil
	p.label = ""
}

// Delete releases a parser. For a retained parser it tears down both
// body and shell. For an unretained parser it tears down recursively,
// but never crosses a retained boundary — that is how cycles built out
// of unretained combinators embedding retained, named parsers are
// broken without double-freeing the retained ones.
func Delete[V any](p *Parser[V]) {
	if p == nil {
		return
	}
	deleteChildren(p)
	p.Kind = KindUndefined
	p.Name = ""
	p.child, p.second, p.children, p.lift, p.produce = nil, nil, nil, nil, nil
}

func deleteChildren[V any](p *Parser[V]) {
	deleteIfUnretained(p.child)
	deleteIfUnretained(p.second)
	for _, c := range p.children {
		deleteIfUnretained(c)
	}
}

func deleteIfUnretained[V any](p *Parser[V]) {
	if p == nil || p.Retained {
		return
	}
	deleteChildren(p)
	p.Kind = KindUndefined
	p.child, p.second, p.children, p.lift, p.produce = nil, nil, nil, nil, nil
}

// Cleanup releases a set of retained parsers that may refer to each
// other cyclically. It first undefines every one of them, severing
// the cycle, then clears their shells. Calling Cleanup more than once
// on the same (sub)set is safe: an already-undefined parser has
// nothing left to sever, and clearing an already-cleared shell is a
// no-op.
func Cleanup[V any](ps ...*Parser[V]) {
	for _, p := range ps {
		if p != nil {
			Undefine(p)
		}
	}
	for _, p := range ps {
		if p == nil {
			continue
		}
		p.Retained = false
		p.Name = ""
	}
}
