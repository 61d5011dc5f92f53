// Package model holds the result tree shared by the collector and the encoders.
package model

import (
	"sort"

	"github.com/AndreyAkinshin/gnu-json-result/internal/testparser"
)

// Tree is one level of the result tree. Values are either a nested Tree or
// a testparser.Status.
type Tree map[string]any

// New returns an empty tree.
func New() Tree {
	return Tree{}
}

// Descend walks down the given path segments, creating empty levels as
// needed, and returns the level reached. A status found where a level is
// needed is replaced by a new level.
func (t Tree) Descend(segments []string) Tree {
	node := t
	for _, seg := range segments {
		child, ok := node[seg].(Tree)
		if !ok {
			child = Tree{}
			node[seg] = child
		}
		node = child
	}
	return node
}

// SetStatus records a terminal status, overwriting any previous value.
func (t Tree) SetStatus(key string, s testparser.Status) {
	t[key] = s
}

// SetAutotest records an Autotest subtest at this level as
// {"test N": {name: status}}, replacing any earlier entry for N.
func (t Tree) SetAutotest(r testparser.AutotestResult) {
	t[r.Key()] = Tree{r.Name: r.Status}
}

// Walk calls fn for every terminal status in lexical key order.
func (t Tree) Walk(fn func(path []string, s testparser.Status)) {
	t.walk(nil, fn)
}

func (t Tree) walk(prefix []string, fn func(path []string, s testparser.Status)) {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := append(prefix[:len(prefix):len(prefix)], k)
		switch v := t[k].(type) {
		case Tree:
			v.walk(path, fn)
		case testparser.Status:
			fn(path, v)
		}
	}
}

// Counts totals every terminal status in the tree.
func (t Tree) Counts() testparser.TestCounts {
	var tc testparser.TestCounts
	t.Walk(func(_ []string, s testparser.Status) {
		tc.Count(s)
	})
	return tc
}
