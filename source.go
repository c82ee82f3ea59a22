package parsekit

import (
	"io"
	"os"
)

// Parse parses an in-memory string against p. filename is carried
// through into any resulting ErrorValue for diagnostics only.
func Parse[V any](filename, text string, p *Parser[V]) (V, *ErrorValue) {
	in := newInput(filename, text)
	res := Eval(p, in)
	return res.Value, res.Err
}

// ParseFile reads r to memory and parses it against p.
func ParseFile[V any](filename string, r io.Reader, p *Parser[V]) (V, *ErrorValue) {
	data, err := io.ReadAll(r)
	if err != nil {
		var zero V
		return zero, &ErrorValue{Filename: filename, IsFailure: true, Failure: err.Error()}
	}
	return Parse(filename, string(data), p)
}

// ParseFilename opens, reads, parses and closes the file at path.
func ParseFilename[V any](path string, p *Parser[V]) (V, *ErrorValue) {
	f, err := os.Open(path)
	if err != nil {
		var zero V
		return zero, &ErrorValue{Filename: path, IsFailure: true, Failure: err.Error()}
	}
	defer f.Close()
	return ParseFile(path, f, p)
}
