package yaml

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

func parse(t *testing.T, text string) *domain.Document {
	t.Helper()
	doc, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func TestParse_PeopleSequence(t *testing.T) {
	doc := parse(t, "people:\n  - uid: u1\n    name: A\n    surname: B\n    email: a@b.com\n")

	people := doc.People()
	require.True(t, people.IsSequence())
	require.Len(t, people.Items, 1)

	person := people.Items[0]
	assert.True(t, person.IsMapping())
	assert.Equal(t, "u1", person.Get("uid").String())
	assert.Equal(t, "a@b.com", person.Get("email").String())
	assert.Equal(t, []string{"uid", "name", "surname", "email"}, keys(person))
}

func TestParse_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   \n", "# only a comment\n"} {
		doc := parse(t, text)
		assert.False(t, doc.People().Present(), "text %q", text)
	}
}

func TestParse_ScalarKinds(t *testing.T) {
	doc := parse(t, `
n: null
tilde: ~
i: 42
f: 1.5
b: true
s: "42"
ts: 2024-01-02T03:04:05Z
empty: ""
`)
	root := doc.Root

	assert.Equal(t, domain.KindNull, root.Get("n").Kind)
	assert.Equal(t, domain.KindNull, root.Get("tilde").Kind)
	assert.Equal(t, 42, root.Get("i").Value)
	assert.Equal(t, "42", root.Get("i").Text)
	assert.Equal(t, 1.5, root.Get("f").Value)
	assert.Equal(t, true, root.Get("b").Value)
	assert.Equal(t, "42", root.Get("s").Value)
	assert.Equal(t, "2024-01-02T03:04:05Z", root.Get("ts").Value)
	assert.Equal(t, domain.KindScalar, root.Get("empty").Kind)
	assert.False(t, root.Get("empty").NonBlank())
	assert.Equal(t, domain.KindMissing, root.Get("absent").Kind)
}

func TestParse_PeopleMapping(t *testing.T) {
	doc := parse(t, "people: {}\n")

	assert.True(t, doc.People().IsMapping())
	assert.Equal(t, 0, doc.People().Len())
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := NewParser().Parse("people:\n  - uid: [unclosed\n")

	require.Error(t, err)
	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "yaml:")
}

func TestParse_TabIndentation(t *testing.T) {
	_, err := NewParser().Parse("people:\n\t- uid: x\n")

	var parseErr *domain.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParse_MultipleDocuments(t *testing.T) {
	_, err := NewParser().Parse("people: []\n---\npeople: []\n")

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "expected a single document in the stream, but found more", parseErr.Message)
}

func TestParse_DuplicateKey(t *testing.T) {
	_, err := NewParser().Parse("people: []\nother: 1\npeople: []\n")

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, `yaml: line 3: mapping key "people" already defined at line 1`, parseErr.Message)
}

func TestParse_Aliases(t *testing.T) {
	doc := parse(t, `
base: &addr
  city: Paris
people:
  - uid: u1
    address: *addr
`)

	addr := doc.People().Items[0].Get("address")
	require.True(t, addr.IsMapping())
	assert.Equal(t, "Paris", addr.Get("city").String())
}

func TestParse_MergeKeys(t *testing.T) {
	doc := parse(t, `
defaults: &defaults
  org: Acme
  title: Engineer
people:
  - <<: *defaults
    uid: u1
    title: Lead
`)

	person := doc.People().Items[0]
	assert.Equal(t, "Acme", person.Get("org").String())
	assert.Equal(t, "Lead", person.Get("title").String())
	assert.Equal(t, []string{"uid", "title", "org"}, keys(person))
}

func TestParse_MergeSequence(t *testing.T) {
	doc := parse(t, `
a: &a {x: 1, y: 1}
b: &b {y: 2, z: 2}
c:
  <<: [*a, *b]
`)

	c := doc.Root.Get("c")
	assert.Equal(t, 1, c.Get("x").Value)
	assert.Equal(t, 1, c.Get("y").Value)
	assert.Equal(t, 2, c.Get("z").Value)
}

func TestParse_MergeNonMapping(t *testing.T) {
	_, err := NewParser().Parse("a: &a 1\nb:\n  <<: *a\n")

	var parseErr *domain.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParse_RootScalar(t *testing.T) {
	doc := parse(t, "just text\n")

	assert.Equal(t, domain.KindScalar, doc.Root.Kind)
	assert.False(t, doc.People().Present())
}

func TestParse_Timestamps(t *testing.T) {
	doc := parse(t, `
date: 2024-01-02
quoted: "2024-01-02"
tagged: !!timestamp 2024-01-02
`)
	root := doc.Root

	assert.Equal(t, "2024-01-02", root.Get("date").Value)
	assert.Equal(t, "2024-01-02", root.Get("quoted").Value)
	tagged, ok := root.Get("tagged").Value.(time.Time)
	require.True(t, ok, "explicit tag resolves to a time")
	assert.True(t, tagged.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-02", root.Get("tagged").Text)
}

// nestedAliases builds depth levels where each level lists the previous one
// ten times, so the expanded size grows tenfold per level.
func nestedAliases(depth int) string {
	var b strings.Builder
	b.WriteString("people:\n  - uid: u1\n    name: A\n    surname: B\n    email: a@b.com\n")
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= depth; i++ {
		refs := strings.TrimSuffix(strings.Repeat(fmt.Sprintf("*l%d, ", i-1), 10), ", ")
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, refs)
	}
	return b.String()
}

func TestParse_ExcessiveAliasing(t *testing.T) {
	for _, depth := range []int{4, 7, 20} {
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			_, err := NewParser().Parse(nestedAliases(depth))

			var parseErr *domain.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "document contains excessive aliasing", parseErr.Message)
		})
	}
}

func TestParse_ModerateAliasing(t *testing.T) {
	doc := parse(t, nestedAliases(1))

	assert.Equal(t, 10, doc.Root.Get("l1").Len())
	assert.Equal(t, 10, doc.Root.Get("l1").Items[9].Len())
}

func TestParse_RepeatedAnchorWithinLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("base: &base\n")
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "  k%d: v%d\n", i, i)
	}
	b.WriteString("people:\n")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "  - uid: u%d\n    name: A\n    surname: B\n    email: a@b.com\n    address: *base\n", i)
	}

	doc := parse(t, b.String())

	assert.Equal(t, 30, doc.People().Len())
	assert.Equal(t, "v3", doc.People().Items[29].Get("address").Get("k3").String())
}

func keys(n *domain.Node) []string {
	out := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		out = append(out, f.Key)
	}
	return out
}
