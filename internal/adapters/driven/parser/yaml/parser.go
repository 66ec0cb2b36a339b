package yaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

const (
	tagNull      = "!!null"
	tagMerge     = "!!merge"
	tagTimestamp = "!!timestamp"
)

// Parser is a driven.DocumentParser backed by yaml.v3.
type Parser struct{}

// NewParser creates a YAML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads text as a single YAML document. Syntax errors are returned as
// *domain.ParseError carrying the parser's message.
func (p *Parser) Parse(text string) (*domain.Document, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewDocument(nil), nil
		}
		return nil, &domain.ParseError{Message: err.Error()}
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, &domain.ParseError{Message: err.Error()}
		}
		return nil, &domain.ParseError{Message: "expected a single document in the stream, but found more"}
	}

	node, err := newNormaliser().normalise(&root)
	if err != nil {
		return nil, &domain.ParseError{Message: err.Error()}
	}
	return domain.NewDocument(node), nil
}

// Alias expansion limits. A document may reference anchors freely, but the
// share of its expanded size reached through aliases is capped the same way
// yaml.v3 caps decoding into Go values.
const (
	aliasMinCount    = 100
	aliasMinTotal    = 1000
	aliasRatioLow    = 400000
	aliasRatioHigh   = 4000000
	aliasRatioRange  = float64(aliasRatioHigh - aliasRatioLow)
	maxExpansionSize = 1 << 30
)

// errExcessiveAliasing is returned when aliases expand far beyond the source.
var errExcessiveAliasing = errors.New("document contains excessive aliasing")

// expansion counts the nodes a subtree produces once every alias is expanded.
// aliased is the part of total reached through an alias.
type expansion struct {
	total   int
	aliased int
}

func (e expansion) add(o expansion) expansion {
	return expansion{
		total:   saturatingAdd(e.total, o.total),
		aliased: saturatingAdd(e.aliased, o.aliased),
	}
}

func saturatingAdd(a, b int) int {
	if a > maxExpansionSize-b {
		return maxExpansionSize
	}
	return a + b
}

// excessive reports whether the aliased share of the expansion is too large.
func (e expansion) excessive() bool {
	if e.aliased <= aliasMinCount || e.total <= aliasMinTotal {
		return false
	}
	return float64(e.aliased)/float64(e.total) > allowedAliasRatio(e.total)
}

func allowedAliasRatio(total int) float64 {
	switch {
	case total <= aliasRatioLow:
		return 0.99
	case total >= aliasRatioHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(total-aliasRatioLow)/aliasRatioRange)
	}
}

type converted struct {
	node *domain.Node
	size expansion
}

// normaliser converts a yaml.v3 tree into domain nodes. Anchored nodes are
// converted once and shared by every alias.
type normaliser struct {
	done   map[*yaml.Node]converted
	active map[*yaml.Node]bool
}

func newNormaliser() *normaliser {
	return &normaliser{
		done:   make(map[*yaml.Node]converted),
		active: make(map[*yaml.Node]bool),
	}
}

// normalise converts the document root and rejects alias bombs.
func (n *normaliser) normalise(root *yaml.Node) (*domain.Node, error) {
	out, size, err := n.convert(root)
	if err != nil {
		return nil, err
	}
	if size.excessive() {
		return nil, errExcessiveAliasing
	}
	return out, nil
}

func (n *normaliser) convert(node *yaml.Node) (*domain.Node, expansion, error) {
	if node == nil {
		return domain.Missing(), expansion{}, nil
	}
	if c, ok := n.done[node]; ok {
		return c.node, c.size, nil
	}
	if n.active[node] {
		return nil, expansion{}, fmt.Errorf("yaml: line %d: anchor %q value contains itself", node.Line, node.Anchor)
	}
	n.active[node] = true
	defer delete(n.active, node)

	var (
		out  *domain.Node
		size = expansion{total: 1}
		err  error
	)
	switch node.Kind {
	case yaml.DocumentNode:
		size = expansion{}
		if len(node.Content) == 0 {
			out = domain.Missing()
		} else {
			out, size, err = n.convert(node.Content[0])
		}
	case yaml.AliasNode:
		out, size, err = n.convert(node.Alias)
		size.aliased = size.total
	case yaml.ScalarNode:
		out = scalar(node)
	case yaml.SequenceNode:
		out, size, err = n.sequence(node)
	case yaml.MappingNode:
		out, size, err = n.mapping(node)
	default:
		err = fmt.Errorf("yaml: line %d: unsupported node", node.Line)
	}
	if err != nil {
		return nil, expansion{}, err
	}

	if node.Anchor != "" {
		n.done[node] = converted{node: out, size: size}
	}
	return out, size, nil
}

func scalar(node *yaml.Node) *domain.Node {
	if node.ShortTag() == tagNull {
		return domain.NewNull()
	}

	// Implicit timestamps keep their source text so stored values match it.
	if node.ShortTag() == tagTimestamp && node.Style&yaml.TaggedStyle == 0 {
		return domain.NewScalar(node.Value, node.Value)
	}

	var value any
	if err := node.Decode(&value); err != nil || value == nil {
		value = node.Value
	}
	return domain.NewScalar(node.Value, value)
}

func (n *normaliser) sequence(node *yaml.Node) (*domain.Node, expansion, error) {
	size := expansion{total: 1}
	items := make([]*domain.Node, 0, len(node.Content))
	for _, child := range node.Content {
		item, childSize, err := n.convert(child)
		if err != nil {
			return nil, expansion{}, err
		}
		size = size.add(childSize)
		items = append(items, item)
	}
	return domain.NewSequence(items...), size, nil
}

func (n *normaliser) mapping(node *yaml.Node) (*domain.Node, expansion, error) {
	out := domain.NewMapping()
	size := expansion{total: 1}
	seen := make(map[string]int, len(node.Content)/2)
	var merges []*yaml.Node

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == tagMerge {
			merges = append(merges, valueNode)
			continue
		}

		key, err := mappingKey(keyNode)
		if err != nil {
			return nil, expansion{}, err
		}
		if line, dup := seen[key]; dup {
			return nil, expansion{}, fmt.Errorf("yaml: line %d: mapping key %q already defined at line %d", keyNode.Line, key, line)
		}
		seen[key] = keyNode.Line

		value, valueSize, err := n.convert(valueNode)
		if err != nil {
			return nil, expansion{}, err
		}
		size = size.add(expansion{total: 1}).add(valueSize)
		out.Set(key, value)
	}

	for _, merge := range merges {
		mergeSize, err := n.merge(out, merge)
		if err != nil {
			return nil, expansion{}, err
		}
		size = size.add(mergeSize)
	}
	return out, size, nil
}

// merge copies keys from a merge value into out, leaving keys out already has.
// The value may be a mapping, an alias of one, or a sequence of those; earlier
// entries in a sequence win. It returns the expansion of the merged sources.
func (n *normaliser) merge(out *domain.Node, value *yaml.Node) (expansion, error) {
	resolved := value
	for resolved.Kind == yaml.AliasNode && resolved.Alias != nil {
		resolved = resolved.Alias
	}

	if resolved.Kind == yaml.SequenceNode {
		var size expansion
		for _, item := range resolved.Content {
			itemSize, err := n.merge(out, item)
			if err != nil {
				return expansion{}, err
			}
			size = size.add(itemSize)
		}
		return size, nil
	}

	src, size, err := n.convert(value)
	if err != nil {
		return expansion{}, err
	}
	if !src.IsMapping() {
		return expansion{}, fmt.Errorf("yaml: line %d: map merge requires map or sequence of maps as the value", value.Line)
	}
	for _, f := range src.Fields {
		if !out.Has(f.Key) {
			out.Set(f.Key, f.Value)
		}
	}
	return size, nil
}

func mappingKey(node *yaml.Node) (string, error) {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("yaml: line %d: mapping keys must be scalars", node.Line)
	}
	return node.Value, nil
}
