package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeKind_String(t *testing.T) {
	assert.Equal(t, "missing", KindMissing.String())
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "unknown", NodeKind(42).String())
}

func TestNode_Present(t *testing.T) {
	var nilNode *Node

	assert.False(t, nilNode.Present())
	assert.False(t, Missing().Present())
	assert.False(t, NewNull().Present())
	assert.True(t, NewScalar("0", 0).Present())
	assert.True(t, NewSequence().Present())
	assert.True(t, NewMapping().Present())
}

func TestNode_NonBlank(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"text", NewScalar("Ann", "Ann"), true},
		{"number", NewScalar("42", 42), true},
		{"false", NewScalar("false", false), true},
		{"empty", NewScalar("", ""), false},
		{"whitespace", NewScalar(" \t\n", " \t\n"), false},
		{"null", NewNull(), false},
		{"missing", Missing(), false},
		{"sequence", NewSequence(NewScalar("a", "a")), false},
		{"mapping", NewMapping(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.NonBlank())
		})
	}
}

func TestNode_MappingAccess(t *testing.T) {
	m := NewMapping()
	m.Set("b", NewScalar("1", 1))
	m.Set("a", NewNull())
	m.Set("b", NewScalar("2", 2))

	require.Len(t, m.Fields, 2)
	assert.Equal(t, "b", m.Fields[0].Key, "replacing keeps position")
	assert.Equal(t, "2", m.Get("b").String())
	assert.True(t, m.Has("a"))
	assert.False(t, m.Get("a").Present())
	assert.False(t, m.Has("c"))
	assert.Equal(t, KindMissing, m.Get("c").Kind)
	assert.Equal(t, 2, m.Len())
}

func TestNode_GetOnNonMapping(t *testing.T) {
	assert.Equal(t, KindMissing, NewSequence().Get("x").Kind)
	assert.Equal(t, KindMissing, NewScalar("x", "x").Get("x").Kind)
	assert.False(t, NewScalar("x", "x").Has("x"))
}

func TestNode_HasWithoutIndex(t *testing.T) {
	m := &Node{Kind: KindMapping, Fields: []Field{{Key: "k", Value: NewScalar("v", "v")}}}

	assert.True(t, m.Has("k"))
	assert.Equal(t, "v", m.Get("k").String())

	m.Set("k", NewScalar("w", "w"))
	assert.Len(t, m.Fields, 1)
	assert.Equal(t, "w", m.Get("k").String())
}

func TestNode_Interface(t *testing.T) {
	m := NewMapping()
	m.Set("name", NewScalar("Ann", "Ann"))
	m.Set("tags", NewSequence(NewScalar("1", 1), NewNull()))
	m.Set("score", NewScalar("nan", math.NaN()))
	m.Set("inf", NewScalar("inf", math.Inf(1)))

	got := m.Interface()

	assert.Equal(t, map[string]any{
		"name":  "Ann",
		"tags":  []any{1, nil},
		"score": nil,
		"inf":   nil,
	}, got)
}

func TestFromValue(t *testing.T) {
	n := FromValue(map[string]any{
		"people": []any{
			map[string]any{"uid": "u1", "age": float64(3), "ok": true, "none": nil},
		},
	})

	require.True(t, n.IsMapping())
	people := n.Get("people")
	require.True(t, people.IsSequence())
	require.Equal(t, 1, people.Len())
	person := people.Items[0]
	assert.Equal(t, "u1", person.Get("uid").String())
	assert.Equal(t, "3", person.Get("age").String())
	assert.Equal(t, "true", person.Get("ok").String())
	assert.Equal(t, KindNull, person.Get("none").Kind)
	assert.Equal(t, "age", person.Fields[0].Key, "keys are sorted")
}
