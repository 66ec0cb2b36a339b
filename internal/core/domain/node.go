package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// NodeKind tags the shape of a parsed value.
type NodeKind int

const (
	// KindMissing marks a value that is not there at all.
	KindMissing NodeKind = iota

	// KindNull is an explicit null. Rules treat it as not present.
	KindNull

	// KindScalar is a string, number or boolean.
	KindScalar

	// KindSequence is an ordered list of nodes.
	KindSequence

	// KindMapping is a set of key/value pairs in source order.
	KindMapping
)

// String returns the string representation.
func (k NodeKind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Field is one key/value pair of a mapping node.
type Field struct {
	Key   string
	Value *Node
}

// Node is the typed intermediate representation produced right after parsing.
// All schema rules operate on nodes; none inspect parser-specific values.
type Node struct {
	// Kind is the shape of the node.
	Kind NodeKind

	// Text is the source text of a scalar.
	Text string

	// Value is the resolved scalar value (string, int, int64, uint64,
	// float64 or bool). Nil for non-scalars.
	Value any

	// Items holds the elements of a sequence.
	Items []*Node

	// Fields holds the entries of a mapping in source order.
	Fields []Field

	index map[string]int
}

var missingNode = &Node{Kind: KindMissing}

// Missing returns the shared missing node.
func Missing() *Node {
	return missingNode
}

// NewNull returns an explicit null node.
func NewNull() *Node {
	return &Node{Kind: KindNull}
}

// NewScalar returns a scalar node with its source text and resolved value.
func NewScalar(text string, value any) *Node {
	return &Node{Kind: KindScalar, Text: text, Value: value}
}

// NewSequence returns a sequence node.
func NewSequence(items ...*Node) *Node {
	if items == nil {
		items = []*Node{}
	}
	return &Node{Kind: KindSequence, Items: items}
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node {
	return &Node{Kind: KindMapping, index: make(map[string]int)}
}

// Set adds or replaces a key on a mapping node. Replacing keeps the original position.
func (n *Node) Set(key string, value *Node) {
	if n.index == nil {
		n.index = make(map[string]int, len(n.Fields))
		for i, f := range n.Fields {
			n.index[f.Key] = i
		}
	}
	if i, ok := n.index[key]; ok {
		n.Fields[i].Value = value
		return
	}
	n.index[key] = len(n.Fields)
	n.Fields = append(n.Fields, Field{Key: key, Value: value})
}

// Has reports whether a mapping node defines key, even as null.
func (n *Node) Has(key string) bool {
	if n == nil || n.Kind != KindMapping {
		return false
	}
	if n.index != nil {
		_, ok := n.index[key]
		return ok
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Get returns the value at key, or the missing node when n is not a mapping
// or has no such key.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != KindMapping {
		return missingNode
	}
	if n.index != nil {
		if i, ok := n.index[key]; ok {
			return n.Fields[i].Value
		}
		return missingNode
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return missingNode
}

// Present reports whether the node carries a value. Missing and null are absent.
func (n *Node) Present() bool {
	return n != nil && n.Kind != KindMissing && n.Kind != KindNull
}

// IsSequence reports whether the node is a sequence.
func (n *Node) IsSequence() bool {
	return n != nil && n.Kind == KindSequence
}

// IsMapping reports whether the node is a mapping.
func (n *Node) IsMapping() bool {
	return n != nil && n.Kind == KindMapping
}

// NonBlank reports whether the node is a scalar whose text is not empty after
// trimming whitespace.
func (n *Node) NonBlank() bool {
	return n != nil && n.Kind == KindScalar && strings.TrimSpace(n.Text) != ""
}

// Len returns the number of items or fields, zero for other kinds.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindSequence:
		return len(n.Items)
	case KindMapping:
		return len(n.Fields)
	default:
		return 0
	}
}

// Interface converts the node to plain Go values suitable for encoding:
// map[string]any, []any, scalars and nil. Non-finite floats become nil.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindScalar:
		if f, ok := n.Value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return nil
		}
		return n.Value
	case KindSequence:
		out := make([]any, len(n.Items))
		for i, item := range n.Items {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(n.Fields))
		for _, f := range n.Fields {
			out[f.Key] = f.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// String returns the scalar text, or empty for non-scalars.
func (n *Node) String() string {
	if n == nil || n.Kind != KindScalar {
		return ""
	}
	return n.Text
}

// FromValue builds a node tree from plain Go values such as those produced by
// encoding/json. Map keys are visited in sorted order.
func FromValue(v any) *Node {
	switch val := v.(type) {
	case nil:
		return NewNull()
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			m.Set(k, FromValue(val[k]))
		}
		return m
	case []any:
		items := make([]*Node, len(val))
		for i, item := range val {
			items[i] = FromValue(item)
		}
		return NewSequence(items...)
	case string:
		return NewScalar(val, val)
	default:
		return NewScalar(fmt.Sprint(val), val)
	}
}
