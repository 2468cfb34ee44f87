package canopy

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/canopy-config/canopy/serial"
)

// TypeTagKey is the reserved mapping key that carries the alias of an
// opaque typed object in the persisted form. A mapping without it is a
// plain section, not a typed object.
const TypeTagKey = "=="

// Value is the tagged union of storable value kinds. The Kind field selects
// which member is populated. A nil *Value denotes absence.
//
// Integer kinds share the Int field and floating-point kinds share the Float
// field; Kind records the declared width.
type Value struct {
	Kind Kind

	Bool    bool
	Int     int64
	Float   float64
	Char    rune
	Str     string
	List    []*Value
	Section *Section

	// Object and Alias are populated for KindObject. Alias is the type tag
	// the object was registered under; it travels with the value so that
	// serialization needs no type lookup.
	Object serial.Serializable
	Alias  string
}

func FromBool(v bool) *Value {
	return &Value{Kind: KindBool, Bool: v}
}

func FromInt8(v int8) *Value {
	return &Value{Kind: KindInt8, Int: int64(v)}
}

func FromInt16(v int16) *Value {
	return &Value{Kind: KindInt16, Int: int64(v)}
}

func FromInt32(v int32) *Value {
	return &Value{Kind: KindInt32, Int: int64(v)}
}

func FromInt64(v int64) *Value {
	return &Value{Kind: KindInt64, Int: v}
}

// FromInt stores v as the narrowest of the int32/int64 kinds that holds it.
func FromInt(v int) *Value {
	if v >= -1<<31 && v < 1<<31 {
		return FromInt32(int32(v))
	}
	return FromInt64(int64(v))
}

func FromFloat32(v float32) *Value {
	return &Value{Kind: KindFloat32, Float: float64(v)}
}

func FromFloat64(v float64) *Value {
	return &Value{Kind: KindFloat64, Float: v}
}

func FromChar(v rune) *Value {
	return &Value{Kind: KindChar, Char: v}
}

func FromString(v string) *Value {
	return &Value{Kind: KindString, Str: v}
}

func FromList(vs []*Value) *Value {
	return &Value{Kind: KindList, List: vs}
}

// FromObject wraps a registered typed object together with its alias.
func FromObject(alias string, obj serial.Serializable) *Value {
	return &Value{Kind: KindObject, Object: obj, Alias: alias}
}

// sectionValue wraps a section. Unexported: sections enter the tree only
// through CreateSection or document decoding, never plain assignment.
func sectionValue(s *Section) *Value {
	return &Value{Kind: KindSection, Section: s}
}

// FromMapping builds a detached section value from ordered key/value
// pairs, preserving pair order. KeyVal paths are treated as literal local
// keys. This is how mappings nested inside lists are represented; the
// resulting value is rejected by Set, like any section-kind value.
func FromMapping(kvs []KeyVal) *Value {
	sec := newDetachedSection()
	for _, kv := range kvs {
		if kv.Value == nil {
			continue
		}
		sec.put(kv.Path, kv.Value)
	}
	return sectionValue(sec)
}

// FromAny converts a plain Go value into a Value. Maps become detached
// sections, slices become lists, numeric types map onto the matching kinds.
// Unsupported types stringify. A nil input returns nil.
func FromAny(v any) *Value {
	switch x := v.(type) {
	case nil:
		return nil
	case *Value:
		return x
	case bool:
		return FromBool(x)
	case int8:
		return FromInt8(x)
	case int16:
		return FromInt16(x)
	case int32:
		return FromInt32(x)
	case int64:
		return FromInt64(x)
	case int:
		return FromInt(x)
	case uint8:
		return FromInt16(int16(x))
	case uint16:
		return FromInt32(int32(x))
	case uint32:
		return FromInt64(int64(x))
	case uint64:
		return FromInt64(int64(x))
	case uint:
		return FromInt64(int64(x))
	case float32:
		return FromFloat32(x)
	case float64:
		return FromFloat64(x)
	case string:
		return FromString(x)
	case []*Value:
		return FromList(x)
	case []any:
		list := make([]*Value, 0, len(x))
		for _, elt := range x {
			if ev := FromAny(elt); ev != nil {
				list = append(list, ev)
			}
		}
		return FromList(list)
	case map[string]any:
		sec := newDetachedSection()
		sec.seed(x)
		return sectionValue(sec)
	case serial.Serializable:
		return FromObject("", x)
	default:
		return FromString(fmt.Sprintf("%v", v))
	}
}

// Text returns the canonical text representation of the value. This is what
// the string accessor yields for non-string kinds.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat32:
		return strconv.FormatFloat(v.Float, 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindChar:
		return string(v.Char)
	case KindString:
		return v.Str
	case KindList:
		parts := make([]string, len(v.List))
		for i, elt := range v.List {
			parts[i] = elt.Text()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindSection:
		if v.Section == nil {
			return "{}"
		}
		return v.Section.describe()
	case KindObject:
		return "!!" + v.Alias
	default:
		return ""
	}
}

// Interface converts the value into plain Go data: scalars to their Go
// types, lists to []any, sections to map[string]any in key order, typed
// objects to their serialized fields plus the type-tag key.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt8:
		return int8(v.Int)
	case KindInt16:
		return int16(v.Int)
	case KindInt32:
		return int32(v.Int)
	case KindInt64:
		return v.Int
	case KindFloat32:
		return float32(v.Float)
	case KindFloat64:
		return v.Float
	case KindChar:
		return string(v.Char)
	case KindString:
		return v.Str
	case KindList:
		res := make([]any, len(v.List))
		for i, elt := range v.List {
			res[i] = elt.Interface()
		}
		return res
	case KindSection:
		if v.Section == nil {
			return map[string]any{}
		}
		res := make(map[string]any, len(v.Section.keys))
		for _, key := range v.Section.keys {
			res[key] = v.Section.values[key].Interface()
		}
		return res
	case KindObject:
		fields := map[string]any{TypeTagKey: v.Alias}
		if v.Object != nil {
			maps.Copy(fields, v.Object.Serialize())
		}
		return fields
	default:
		return nil
	}
}

// Clone deep-copies the value. Section-kind values clone their subtree as a
// detached section; typed objects are shared, not copied.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{}
	*res = *v
	if v.Kind == KindList {
		res.List = make([]*Value, len(v.List))
		for i, elt := range v.List {
			res.List[i] = elt.Clone()
		}
	}
	if v.Kind == KindSection && v.Section != nil {
		sec := newDetachedSection()
		for _, key := range v.Section.keys {
			sec.put(key, v.Section.values[key].Clone())
		}
		res.Section = sec
	}
	return res
}

// AsInt64 returns the numeric value as int64. Zero for non-numeric kinds.
func (v *Value) AsInt64() int64 {
	if v == nil {
		return 0
	}
	switch {
	case v.Kind.IsInteger():
		return v.Int
	case v.Kind.IsFloat():
		return int64(v.Float)
	default:
		return 0
	}
}

// AsFloat64 returns the numeric value as float64. Zero for non-numeric kinds.
func (v *Value) AsFloat64() float64 {
	if v == nil {
		return 0
	}
	switch {
	case v.Kind.IsInteger():
		return float64(v.Int)
	case v.Kind.IsFloat():
		return v.Float
	default:
		return 0
	}
}

func (v *Value) isNumeric() bool {
	return v != nil && v.Kind.IsNumeric()
}
