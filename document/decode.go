package document

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/canopy-config/canopy"
	"github.com/canopy-config/canopy/debug"
	"github.com/canopy-config/canopy/serial"
)

// FromNode walks a mapping node in document order into s. Mapping values
// without the type-tag key become child sections; everything else decodes
// into a Value. Comment metadata is recorded with the attachment rule of
// ToNode, inverted.
func FromNode(root *yaml.Node, s *canopy.Section, reg *serial.Registry, withComments bool) error {
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valNode := deref(root.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode || keyNode.Value == "" {
			continue
		}
		key := keyNode.Value
		if valNode.Kind == yaml.MappingNode && !hasTypeTag(valNode) {
			child, err := s.CreateSection(key)
			if err != nil {
				continue
			}
			if err := FromNode(valNode, child, reg, withComments); err != nil {
				return err
			}
		} else {
			v, err := decodeValue(valNode, reg)
			if err != nil {
				return err
			}
			if v == nil {
				continue
			}
			if err := s.Set(key, v); err != nil {
				continue
			}
		}
		if withComments {
			cs := parseCommentBlock(keyNode.HeadComment)
			if cs != nil {
				s.SetComments(key, cs)
			}
			var inline []*string
			if valNode.Kind == yaml.ScalarNode {
				inline = parseInlineComment(valNode.LineComment)
			} else {
				inline = parseInlineComment(keyNode.LineComment)
			}
			if inline != nil {
				s.SetInlineComments(key, inline)
			}
			if debug.Comments() && (len(cs) > 0 || len(inline) > 0) {
				debug.Logf("comments: %q: %d block, %d inline\n", key, len(cs), len(inline))
			}
		}
	}
	return nil
}

func hasTypeTag(n *yaml.Node) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := deref(n.Content[i])
		if k.Kind == yaml.ScalarNode && k.Value == canopy.TypeTagKey {
			return true
		}
	}
	return false
}

func decodeValue(n *yaml.Node, reg *serial.Registry) (*canopy.Value, error) {
	n = deref(n)
	switch n.Kind {
	case yaml.ScalarNode:
		return scalarValue(n), nil
	case yaml.SequenceNode:
		list := make([]*canopy.Value, 0, len(n.Content))
		for _, elt := range n.Content {
			v, err := decodeValue(elt, reg)
			if err != nil {
				// unregistered list elements are dropped, not errors
				if errors.Is(err, serial.ErrUnknownAlias) {
					continue
				}
				return nil, err
			}
			if v == nil {
				continue
			}
			list = append(list, v)
		}
		return canopy.FromList(list), nil
	case yaml.MappingNode:
		if hasTypeTag(n) {
			return decodeObject(n, reg)
		}
		return decodeMapping(n, reg)
	default:
		return nil, nil
	}
}

// decodeMapping decodes a mapping nested inside a sequence into a
// detached section value, preserving pair order.
func decodeMapping(n *yaml.Node, reg *serial.Registry) (*canopy.Value, error) {
	kvs := make([]canopy.KeyVal, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := deref(n.Content[i])
		if keyNode.Kind != yaml.ScalarNode {
			continue
		}
		v, err := decodeValue(n.Content[i+1], reg)
		if err != nil {
			if errors.Is(err, serial.ErrUnknownAlias) {
				continue
			}
			return nil, err
		}
		kvs = append(kvs, canopy.KeyVal{Path: keyNode.Value, Value: v})
	}
	return canopy.FromMapping(kvs), nil
}

func decodeObject(n *yaml.Node, reg *serial.Registry) (*canopy.Value, error) {
	fields := nodeToMap(n)
	alias, _ := fields[canopy.TypeTagKey].(string)
	delete(fields, canopy.TypeTagKey)
	if reg == nil {
		return nil, fmt.Errorf("%w: %q (no registry)", serial.ErrUnknownAlias, alias)
	}
	h := reg.Resolve(alias)
	if h == nil {
		return nil, fmt.Errorf("%w: %q", serial.ErrUnknownAlias, alias)
	}
	obj, err := reg.Deserialize(h, fields)
	if err != nil {
		return nil, err
	}
	return canopy.FromObject(alias, obj), nil
}

// nodeToMap converts a mapping node into plain Go data for a factory.
// Nested typed mappings stay raw: their type-tag key is passed through.
func nodeToMap(n *yaml.Node) map[string]any {
	res := make(map[string]any, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := deref(n.Content[i])
		if k.Kind != yaml.ScalarNode {
			continue
		}
		res[k.Value] = nodeToAny(n.Content[i+1])
	}
	return res
}

func nodeToAny(n *yaml.Node) any {
	n = deref(n)
	switch n.Kind {
	case yaml.ScalarNode:
		return scalarValue(n).Interface()
	case yaml.SequenceNode:
		res := make([]any, 0, len(n.Content))
		for _, elt := range n.Content {
			res = append(res, nodeToAny(elt))
		}
		return res
	case yaml.MappingNode:
		return nodeToMap(n)
	default:
		return nil
	}
}

func scalarValue(n *yaml.Node) *canopy.Value {
	switch n.Tag {
	case "!!null":
		return nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return canopy.FromString(n.Value)
		}
		return canopy.FromBool(b)
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return canopy.FromString(n.Value)
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return canopy.FromInt32(int32(i))
		}
		return canopy.FromInt64(i)
	case "!!float":
		switch strings.ToLower(n.Value) {
		case ".inf", "+.inf":
			return canopy.FromFloat64(math.Inf(1))
		case "-.inf":
			return canopy.FromFloat64(math.Inf(-1))
		case ".nan":
			return canopy.FromFloat64(math.NaN())
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return canopy.FromString(n.Value)
		}
		return canopy.FromFloat64(f)
	default:
		return canopy.FromString(n.Value)
	}
}
