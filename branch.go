package parsekit

// Else tries first, and if it fails tries second, both starting from
// the same cursor position. On double failure the two errors are
// combined with farthest-position-wins semantics.
func Else[V any](first, second *Parser[V]) *Parser[V] {
	return &Parser[V]{Kind: KindElse, child: first, second: second}
}

// Or tries each of parsers in order, returning the first success. On
// total failure the errors from every branch are combined with
// farthest-position-wins semantics, merging expected-label sets on a
// tie.
func Or[V any](parsers ...*Parser[V]) *Parser[V] {
	return &Parser[V]{Kind: KindOr, children: parsers}
}
