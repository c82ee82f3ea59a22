// Package grammar compiles a small BNF-like grammar dialect into
// parsekit parsers that emit ast.Node trees. Like the regex package,
// it is a bootstrap: the dialect's own grammar is built out of
// parsekit combinators, and its fold callbacks construct and return
// Parser values directly, so compiling grammar text emits a parser
// rather than an intermediate tree of its own.
package grammar

import (
	"fmt"

	"github.com/parsekit/parsekit/ast"
	"github.com/parsekit/parsekit/regex"
	pk "github.com/parsekit/parsekit"
)

// cv is the payload type every meta-level production in this package
// evaluates to: a compiled, target-level parser of AST nodes.
type cv = *pk.Parser[*ast.Node]

// grammarLevels holds the four mutually recursive retained parsers
// that describe a single grammar expression:
//
//	grammar := (term "|" grammar) | term
//	term    := factor*
//	factor  := base | base "*" | base "+" | base "?" | base "{" digits "}"
//	base    := "<" (digits | ident) ">" | string | char | regex | "(" grammar ")"
type grammarLevels struct {
	grammarP, termP, factorP, baseP *pk.Parser[cv]
}

func buildGrammarLevels(refs []cv) grammarLevels {
	grammarP := pk.New[cv]("grammar")
	termP := pk.New[cv]("term")
	factorP := pk.New[cv]("factor")
	baseP := pk.New[cv]("base")

	noopCV := func(cv) {}
	noopNode := func(*ast.Node) {}

	alt := pk.Also(termP, pk.Preceded(lexeme(pk.Single('|')), grammarP), noopCV,
		func(x, y cv) cv { return pk.Or(x, y) })
	pk.Define(grammarP, pk.Else(alt, termP))

	// term concatenates its factors. A lone factor passes through
	// unwrapped; two or more fold left-to-right through ast.Merge,
	// which flattens the sequence into a sibling list rather than a
	// deepening binary tree.
	factorList := pk.Many(factorP,
		func(acc []cv, next cv) []cv { return append(acc, next) },
		func() []cv { return nil })
	termBuild := pk.Apply(factorList, func(fs []cv) cv {
		if len(fs) == 0 {
			return pk.Pass[*ast.Node]()
		}
		acc := fs[0]
		for _, f := range fs[1:] {
			acc = pk.Also(acc, f, noopNode, ast.Merge)
		}
		return acc
	})
	pk.Define(termP, termBuild)

	star := pk.Also(baseP, lexeme(pk.Single('*')), noopCV,
		func(b cv, _ string) cv { return pk.Many(b, ast.Merge, ast.EmptyLift) })
	plus := pk.Also(baseP, lexeme(pk.Single('+')), noopCV,
		func(b cv, _ string) cv { return pk.Many1(b, ast.Merge, ast.EmptyLift) })
	optional := pk.Also(baseP, lexeme(pk.Single('?')), noopCV,
		func(b cv, _ string) cv { return pk.Maybe(b, ast.EmptyLift) })
	repeatN := pk.Also(baseP,
		pk.Delimited(lexeme(pk.Single('{')), lexeme(pk.Int()), lexeme(pk.Single('}'))),
		noopCV,
		func(b cv, n int) cv { return pk.Count(b, noopNode, ast.Merge, uint(n), ast.EmptyLift) })
	pk.Define(factorP, pk.Or(star, plus, optional, repeatN, baseP))

	parenthesized := pk.Delimited(lexeme(pk.Single('(')), grammarP, lexeme(pk.Single(')')))
	refBase := pk.TryApply(
		pk.Delimited(lexeme(pk.Single('<')), tokenInner(), pk.Single('>')),
		func(tok string) (cv, error) { return resolveRef(refs, tok) },
	)
	stringBase := pk.Apply(lexeme(stringTextParser()), func(text string) cv {
		return pk.Apply(pk.StringLit(text), ast.Leaf)
	})
	charBase := pk.Apply(lexeme(charTextParser()), func(text string) cv {
		return pk.Apply(pk.StringLit(text), ast.Leaf)
	})
	regexBase := pk.TryApply(lexeme(regexTextParser()), func(text string) (cv, error) {
		compiled, err := regex.Compile(text, regex.StringOps())
		if err != nil {
			return nil, err
		}
		return pk.Apply(compiled, ast.Leaf), nil
	})
	pk.Define(baseP, pk.Or(parenthesized, refBase, stringBase, charBase, regexBase))

	return grammarLevels{grammarP: grammarP, termP: termP, factorP: factorP, baseP: baseP}
}

func (l grammarLevels) cleanup() {
	pk.Cleanup(l.grammarP, l.termP, l.factorP, l.baseP)
}

// Compile compiles one grammar expression into a Parser producing AST
// nodes. References of the form "<name>" and "<N>" resolve against
// refs, by name and by zero-based position respectively. The top-level
// result is wrapped in InsertRoot: a compound expression's anonymous
// sibling-list wrapper becomes the "root"-tagged node, and a bare
// single-literal expression — already a leaf — passes through as-is.
func Compile(src string, refs ...cv) (cv, error) {
	levels := buildGrammarLevels(refs)
	defer levels.cleanup()

	rooted := pk.Apply(levels.grammarP, func(body cv) cv {
		return pk.Apply(body, ast.InsertRoot)
	})
	entry := pk.Terminated(rooted, lexEOI())

	out, errv := pk.Parse("<grammar>", src, entry)
	if errv != nil {
		return nil, fmt.Errorf("invalid grammar %q: %w", src, errv)
	}
	return out, nil
}

// stmtPair is the intermediate value a "ident : grammar ;" statement
// folds to before its side effect (defining the named ref) runs.
type stmtPair struct {
	name string
	body cv
}

func buildStmtParser(refs []cv, levels grammarLevels) *pk.Parser[string] {
	paired := pk.Also(
		pk.Terminated(lexeme(identCore()), lexeme(pk.Single(':'))),
		pk.Terminated(levels.grammarP, lexeme(pk.Single(';'))),
		func(string) {},
		func(name string, body cv) stmtPair { return stmtPair{name: name, body: body} },
	)
	return pk.TryApply(paired, func(p stmtPair) (string, error) {
		ref, err := findByName(refs, p.name)
		if err != nil {
			return "", err
		}
		name := p.name
		final := pk.Apply(p.body, func(n *ast.Node) *ast.Node {
			return &ast.Node{Tag: "root", Children: []*ast.Node{ast.Tag(n, name)}}
		})
		pk.Define(ref, final)
		return name, nil
	})
}

// CompileLang parses a sequence of "ident : grammar ;" statements,
// defining each named ref — supplied by the caller, already retained —
// with its compiled body. A statement's ident must match an entry in
// refs by name; there is no positional form on the left of ":".
//
// Each defined parser, when later run against real input, produces an
// AST rooted at a "root" node whose single child is tagged with the
// rule's name.
func CompileLang(src string, refs ...cv) error {
	levels := buildGrammarLevels(refs)
	defer levels.cleanup()

	stmtP := buildStmtParser(refs, levels)
	langP := pk.Many(stmtP,
		func(acc []string, next string) []string { return append(acc, next) },
		func() []string { return nil })
	entry := pk.Terminated(langP, lexEOI())

	_, errv := pk.Parse("<grammar>", src, entry)
	if errv != nil {
		return fmt.Errorf("invalid grammar %q: %w", src, errv)
	}
	return nil
}
