package parsekit

import "strconv"

// signedDigits matches an optional leading '+'/'-' followed by one or
// more decimal digits, concatenated into a single string.
func signedDigits() *Parser[string] {
	sign := Maybe(rawOneOf("+-"), ConstLift(""))
	digits := Many1(rawOneOf(digitSet), ConcatStrings, ConstLift(""))
	return Also(sign, digits, func(string) {}, func(s, d string) string { return s + d })
}

// realText matches a signed decimal literal with an optional fractional
// part and an optional exponent, e.g. "+3.14e-2".
func realText() *Parser[string] {
	frac := Maybe(
		Also(rawSingle('.'), Many1(rawOneOf(digitSet), ConcatStrings, ConstLift("")),
			func(string) {}, func(dot, digs string) string { return dot + digs }),
		ConstLift(""))
	exp := Maybe(
		Also(rawOneOf("eE"), signedDigits(),
			func(string) {}, func(e, digs string) string { return e + digs }),
		ConstLift(""))

	withFrac := Also(signedDigits(), frac, func(string) {}, func(a, b string) string { return a + b })
	return Also(withFrac, exp, func(string) {}, func(a, b string) string { return a + b })
}

// Int parses a signed decimal integer.
func Int() *Parser[int] {
	return Expect(TryApply(signedDigits(), strconv.Atoi), "integer")
}

// Real parses a signed decimal floating-point literal with an optional
// fractional part and exponent.
func Real() *Parser[float64] {
	return Expect(TryApply(realText(), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}), "real number")
}
