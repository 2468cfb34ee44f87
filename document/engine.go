package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/canopy-config/canopy"
)

// The text-format engine is yaml.v3, consumed as a black box that turns
// text into a generic node tree and back. This file is the only place the
// engine is touched directly; limits from Options are enforced here.

// parseDocument parses data into the top-level mapping node. A nil node
// with a nil error means an empty document.
func parseDocument(data []byte, opts *canopy.Options) (*yaml.Node, error) {
	if len(data) > opts.MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrSizeLimit, len(data), opts.MaxDocumentSize)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := deref(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top-level content is not a mapping", ErrInvalidConfig)
	}
	if n := countAliases(&doc); n > opts.MaxAliases {
		return nil, fmt.Errorf("%w: %d > %d aliases", ErrAliasLimit, n, opts.MaxAliases)
	}
	return root, nil
}

// emitDocument serializes a mapping node with the configured indent.
func emitDocument(root *yaml.Node, opts *canopy.Options) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(opts.Indent)
	if err := enc.Encode(root); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// deref follows alias nodes to their anchored target.
func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func countAliases(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	count := 0
	if n.Kind == yaml.AliasNode {
		count++
	}
	for _, c := range n.Content {
		count += countAliases(c)
	}
	return count
}
