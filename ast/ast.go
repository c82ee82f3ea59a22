// Package ast provides a generic abstract syntax tree used by the
// grammar compiler to render parsed input as a tagged tree rather than
// a bare value.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a tree node: a tag (the production that produced it, empty
// for untagged matches), its matched text when it is a leaf, and an
// ordered list of children. Children are owned uniquely by their
// parent.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

// Leaf builds a childless node carrying the matched text as contents
// and no tag; this is what every primitive match becomes before a Tag
// call renames it at a rule boundary.
func Leaf(contents string) *Node {
	return &Node{Contents: contents}
}

// Equal reports whether two nodes are structurally identical: same
// tag, same contents, and pairwise-equal children in order.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Tag != other.Tag || n.Contents != other.Contents {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i, c := range n.Children {
		if !c.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the tree indented one level per depth: tag, then
// contents in quotes, then children — mirroring a classic AST dump.
func (n *Node) String() string {
	var b strings.Builder
	n.print(&b, 0)
	return b.String()
}

func (n *Node) print(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	tag := n.Tag
	if tag == "" {
		tag = "<>"
	}
	fmt.Fprintf(b, "%s %s\n", tag, strconv.Quote(n.Contents))
	for _, c := range n.Children {
		c.print(b, depth+1)
	}
}

// Merge combines two nodes under a fresh, untagged parent. An untagged,
// contents-less operand is unwrapped: it contributes its children, or
// nothing at all if it has none (EmptyLift's sentinel). Any other
// operand, tagged or carrying contents, is appended whole as a single
// child. This is the 2-ary fold used to
// flatten concatenation in the grammar compiler's "term" production —
// sequences of rule references become sibling lists rather than a
// deepening binary tree.
func Merge(l, r *Node) *Node {
	n := &Node{}
	n.Children = append(n.Children, flattenOperand(l)...)
	n.Children = append(n.Children, flattenOperand(r)...)
	return n
}

func flattenOperand(n *Node) []*Node {
	if n == nil {
		return nil
	}
	if n.Tag == "" && n.Contents == "" {
		// An untagged, contents-less node contributes its children
		// (or nothing, if it is the Many/Maybe empty-lift sentinel) —
		// this is what flattens concatenation into a sibling list
		// instead of deepening a binary tree.
		return n.Children
	}
	return []*Node{n}
}

// InsertRoot returns a new node tagged "root" that holds n's children;
// n's own tag and contents are not kept. A leaf (no children) passes
// through unchanged, since there is nothing to give a spine to.
func InsertRoot(n *Node) *Node {
	if n == nil || len(n.Children) == 0 {
		return n
	}
	return &Node{Tag: "root", Children: n.Children}
}

// Tag returns a copy of n with its Tag field set to tag; used at rule
// boundaries via parsekit.ApplyTo to label a production's result with
// its rule name.
func Tag(n *Node, tag string) *Node {
	return &Node{Tag: tag, Contents: n.Contents, Children: n.Children}
}

// EmptyLift is the Many/Maybe lift default for Node-valued
// combinators: an untagged, childless node, which Merge will simply
// absorb as a no-op when folded against a real operand.
func EmptyLift() *Node {
	return &Node{}
}
