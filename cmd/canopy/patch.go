package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/canopy-config/canopy"
	"github.com/canopy-config/canopy/debug"
	"github.com/canopy-config/canopy/document"
)

// patch applies a JSON patch to the value tree of a configuration file.
// A JSON array is an RFC 6902 operation list, a JSON object an RFC 7386
// merge patch. Comments of keys that survive the patch are preserved.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch <patch.json> <file>", cli.ErrUsage)
	}
	patchData, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	conf, err := cfg.loadFile(args[1])
	if err != nil {
		return err
	}
	doc, err := json.Marshal(conf.Get("").Interface())
	if err != nil {
		return err
	}
	patched, err := applyPatch(doc, patchData)
	if err != nil {
		return fmt.Errorf("error applying patch %s: %w", args[0], err)
	}
	if debug.CLI() {
		debug.Logf("patch: %d -> %d bytes\n", len(doc), len(patched))
	}
	next, err := rebuild(conf, patched)
	if err != nil {
		return err
	}
	return document.SaveFile(args[1], next)
}

func applyPatch(doc, patchData []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(patchData)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		ops, err := jsonpatch.DecodePatch(trimmed)
		if err != nil {
			return nil, err
		}
		return ops.Apply(doc)
	}
	return jsonpatch.MergePatch(doc, trimmed)
}

// rebuild constructs a fresh configuration from the patched value tree,
// carrying over options, header/footer, and the comments of keys that
// still exist.
func rebuild(prev *canopy.Configuration, doc []byte) (*canopy.Configuration, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	next := canopy.NewWith(*prev.Options())
	for _, key := range patchedOrder(prev, m) {
		switch x := normalize(m[key]).(type) {
		case map[string]any:
			if _, err := next.CreateSectionFrom(key, x); err != nil {
				return nil, err
			}
		default:
			if err := next.SetAny(key, x); err != nil {
				return nil, err
			}
		}
	}
	for _, p := range prev.Keys(true) {
		if !next.Contains(p, true) {
			continue
		}
		if cs := prev.Comments(p); cs != nil {
			next.SetComments(p, cs)
		}
		if cs := prev.InlineComments(p); cs != nil {
			next.SetInlineComments(p, cs)
		}
	}
	return next, nil
}

// patchedOrder keeps surviving keys in their previous document order and
// appends keys the patch introduced, sorted.
func patchedOrder(prev *canopy.Configuration, m map[string]any) []string {
	order := make([]string, 0, len(m))
	seen := map[string]bool{}
	for _, key := range prev.Keys(false) {
		if _, ok := m[key]; ok && !seen[key] {
			order = append(order, key)
			seen[key] = true
		}
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if !seen[key] {
			order = append(order, key)
		}
	}
	return order
}

// normalize rewrites decoded JSON so integral numbers stay integers.
func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	case []any:
		for i := range x {
			x[i] = normalize(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = normalize(x[k])
		}
		return x
	default:
		return v
	}
}
