package parsekit

// Many runs child repeatedly, folding each success into an accumulator
// that starts at lift(). It stops, discarding the error, at the first
// failure — which never fails Many itself; an empty run simply
// produces lift()'s default.
func Many[I, O any](child *Parser[I], fold func(O, I) O, lift func() O) *Parser[O] {
	return &Parser[O]{
		Kind: KindMany,
		produce: func(in *Input) Result[O] {
			acc := lift()
			for {
				mk := in.Mark()
				res := Eval(child, in)
				if res.Err != nil {
					in.Rewind(mk)
					return Success(acc)
				}
				in.Unmark(mk)
				acc = fold(acc, res.Value)
			}
		},
	}
}

// Many1 is Many but requires at least one success; on zero matches it
// promotes the failing child's error, prefixing its expected list with
// "one or more of ".
func Many1[I, O any](child *Parser[I], fold func(O, I) O, lift func() O) *Parser[O] {
	return &Parser[O]{
		Kind: KindMany1,
		produce: func(in *Input) Result[O] {
			mk := in.Mark()
			first := Eval(child, in)
			if first.Err != nil {
				in.Rewind(mk)
				return Failure[O](promoteMany1(first.Err))
			}
			in.Unmark(mk)
			acc := fold(lift(), first.Value)
			for {
				mk := in.Mark()
				res := Eval(child, in)
				if res.Err != nil {
					in.Rewind(mk)
					return Success(acc)
				}
				in.Unmark(mk)
				acc = fold(acc, res.Value)
			}
		},
	}
}

// Count runs child exactly n times, folding successes into an
// accumulator starting at lift(). On shortfall it destroys the
// accumulator with destroy, rewinds to the position before the first
// attempt, and fails with the promoted "<n> of " error.
func Count[I, O any](child *Parser[I], destroy func(O), fold func(O, I) O, n uint, lift func() O) *Parser[O] {
	return &Parser[O]{
		Kind: KindCount,
		produce: func(in *Input) Result[O] {
			outer := in.Mark()
			acc := lift()
			for i := uint(0); i < n; i++ {
				mk := in.Mark()
				res := Eval(child, in)
				if res.Err != nil {
					in.Rewind(mk)
					destroy(acc)
					in.Rewind(outer)
					return Failure[O](promoteCount(res.Err, n))
				}
				in.Unmark(mk)
				acc = fold(acc, res.Value)
			}
			in.Unmark(outer)
			return Success(acc)
		},
	}
}

// SeparatedList0 parses zero or more elements separated by sep,
// folding into an accumulator starting at lift(). Succeeds with
// lift()'s default if the first element fails to match.
func SeparatedList0[I, S, O any](elem *Parser[I], sep *Parser[S], fold func(O, I) O, lift func() O) *Parser[O] {
	return &Parser[O]{
		Kind: KindMany,
		produce: func(in *Input) Result[O] {
			mk := in.Mark()
			first := Eval(elem, in)
			if first.Err != nil {
				in.Rewind(mk)
				return Success(lift())
			}
			in.Unmark(mk)
			acc := fold(lift(), first.Value)
			for {
				smk := in.Mark()
				sres := Eval(sep, in)
				if sres.Err != nil {
					in.Rewind(smk)
					return Success(acc)
				}
				emk := in.Mark()
				eres := Eval(elem, in)
				if eres.Err != nil {
					in.Rewind(emk)
					in.Rewind(smk)
					return Success(acc)
				}
				in.Unmark(emk)
				in.Unmark(smk)
				acc = fold(acc, eres.Value)
			}
		},
	}
}

// SeparatedList1 is SeparatedList0 but requires at least one element;
// on zero elements it fails with the first element's own error.
func SeparatedList1[I, S, O any](elem *Parser[I], sep *Parser[S], fold func(O, I) O, lift func() O) *Parser[O] {
	return &Parser[O]{
		Kind: KindMany1,
		produce: func(in *Input) Result[O] {
			mk := in.Mark()
			first := Eval(elem, in)
			if first.Err != nil {
				in.Rewind(mk)
				return Failure[O](first.Err)
			}
			in.Unmark(mk)
			acc := fold(lift(), first.Value)
			for {
				smk := in.Mark()
				sres := Eval(sep, in)
				if sres.Err != nil {
					in.Rewind(smk)
					return Success(acc)
				}
				emk := in.Mark()
				eres := Eval(elem, in)
				if eres.Err != nil {
					in.Rewind(emk)
					in.Rewind(smk)
					return Success(acc)
				}
				in.Unmark(emk)
				in.Unmark(smk)
				acc = fold(acc, eres.Value)
			}
		},
	}
}
