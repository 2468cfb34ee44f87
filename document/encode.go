package document

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/canopy-config/canopy"
)

// ToNode translates a section's local mapping into a document mapping
// node in insertion order. Block comments attach to key nodes; inline
// comments attach to the value node for scalar values, but to the key node
// for sections, lists and typed objects, which span multiple lines and
// have no single trailing position.
func ToNode(s *canopy.Section, withComments bool) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	// local pairs, not path enumeration: mapping keys inside sequences may
	// contain the separator rune and must still round-trip
	for _, kv := range s.Pairs() {
		key, v := kv.Path, kv.Value
		if v == nil {
			continue
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valNode := valueNode(v, withComments)
		if withComments {
			keyNode.HeadComment = renderCommentBlock(s.Comments(key))
			inline := renderInlineComment(s.InlineComments(key))
			if v.Kind.IsScalar() {
				valNode.LineComment = inline
			} else {
				keyNode.LineComment = inline
			}
		}
		root.Content = append(root.Content, keyNode, valNode)
	}
	return root
}

func valueNode(v *canopy.Value, withComments bool) *yaml.Node {
	switch v.Kind {
	case canopy.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool)}
	case canopy.KindInt8, canopy.KindInt16, canopy.KindInt32, canopy.KindInt64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.Int, 10)}
	case canopy.KindFloat32:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(v.Float, 32)}
	case canopy.KindFloat64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(v.Float, 64)}
	case canopy.KindChar:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v.Char)}
	case canopy.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Str}
	case canopy.KindList:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elt := range v.List {
			if elt == nil {
				continue
			}
			seq.Content = append(seq.Content, valueNode(elt, withComments))
		}
		return seq
	case canopy.KindSection:
		return ToNode(v.Section, withComments)
	case canopy.KindObject:
		return objectNode(v, withComments)
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// objectNode emits a typed object as a mapping whose first pair is the
// type-tag key carrying the alias, followed by the serialized fields in
// sorted order.
func objectNode(v *canopy.Value, withComments bool) *yaml.Node {
	res := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	res.Content = append(res.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: canopy.TypeTagKey},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Alias},
	)
	var fields map[string]any
	if v.Object != nil {
		fields = v.Object.Serialize()
	}
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if key == canopy.TypeTagKey {
			continue
		}
		fv := canopy.FromAny(fields[key])
		if fv == nil {
			continue
		}
		res.Content = append(res.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode(fv, withComments),
		)
	}
	return res
}

// formatFloat keeps a decimal point or exponent in the representation so
// the engine resolves the scalar as a float without an explicit tag.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
