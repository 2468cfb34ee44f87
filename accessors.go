package canopy

import "github.com/canopy-config/canopy/serial"

// Typed accessors come in three forms per kind: IsK reports an exact kind
// match (defaults-aware, no coercion); GetK coerces a compatible present
// value, then tries the defaults overlay for a compatible fallback, then
// yields the kind's zero value; GetKOr coerces a compatible present value
// and otherwise yields the explicit default without consulting the
// configured defaults. All are total: absence and kind mismatches never
// produce errors.
//
// Numeric accessors cast between numeric kinds but never parse text. The
// string accessor is the exception that accepts any present value via its
// canonical text form.

func (s *Section) IsBool(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindBool
}

func (s *Section) GetBool(path string) bool {
	if v, ok := s.find(path); ok && v != nil && v.Kind == KindBool {
		return v.Bool
	}
	if d := s.getDefault(path); d != nil && d.Kind == KindBool {
		return d.Bool
	}
	return false
}

func (s *Section) GetBoolOr(path string, def bool) bool {
	if v, ok := s.find(path); ok && v != nil && v.Kind == KindBool {
		return v.Bool
	}
	return def
}

// numeric resolves path to a present numeric value, then a numeric
// default, in that order.
func (s *Section) numeric(path string) *Value {
	if v, ok := s.find(path); ok && v.isNumeric() {
		return v
	}
	if d := s.getDefault(path); d.isNumeric() {
		return d
	}
	return nil
}

func (s *Section) IsInt8(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindInt8
}

func (s *Section) GetInt8(path string) int8 {
	return int8(s.numeric(path).AsInt64())
}

func (s *Section) GetInt8Or(path string, def int8) int8 {
	if v, ok := s.find(path); ok && v.isNumeric() {
		return int8(v.AsInt64())
	}
	return def
}

func (s *Section) IsInt16(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindInt16
}

func (s *Section) GetInt16(path string) int16 {
	return int16(s.numeric(path).AsInt64())
}

func (s *Section) GetInt16Or(path string, def int16) int16 {
	if v, ok := s.find(path); ok && v.isNumeric() {
		return int16(v.AsInt64())
	}
	return def
}

func (s *Section) IsInt32(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindInt32
}

func (s *Section) GetInt32(path string) int32 {
	return int32(s.numeric(path).AsInt64())
}

func (s *Section) GetInt32Or(path string, def int32) int32 {
	if v, ok := s.find(path); ok && v.isNumeric() {
		return int32(v.AsInt64())
	}
	return def
}

func (s *Section) IsInt64(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindInt64
}

func (s *Section) GetInt64(path string) int64 {
	return s.numeric(path).AsInt64()
}

func (s *Section) GetInt64Or(path string, def int64) int64 {
	if v, ok := s.find(path); ok && v.isNumeric() {
		return v.AsInt64()
	}
	return def
}

// IsInt reports whether the resolved value is of any integer kind.
func (s *Section) IsInt(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind.IsInteger()
}

func (s *Section) GetInt(path string) int {
	return int(s.numeric(path).AsInt64())
}

func (s *Section) GetIntOr(path string, def int) int {
	if v, ok := s.find(path); ok && v.isNumeric() {
		return int(v.AsInt64())
	}
	return def
}

func (s *Section) IsFloat32(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindFloat32
}

func (s *Section) GetFloat32(path string) float32 {
	return float32(s.numeric(path).AsFloat64())
}

func (s *Section) GetFloat32Or(path string, def float32) float32 {
	if v, ok := s.find(path); ok && v.isNumeric() {
		return float32(v.AsFloat64())
	}
	return def
}

func (s *Section) IsFloat64(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindFloat64
}

func (s *Section) GetFloat64(path string) float64 {
	return s.numeric(path).AsFloat64()
}

func (s *Section) GetFloat64Or(path string, def float64) float64 {
	if v, ok := s.find(path); ok && v.isNumeric() {
		return v.AsFloat64()
	}
	return def
}

func (s *Section) IsChar(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindChar
}

func (s *Section) GetChar(path string) rune {
	if v, ok := s.find(path); ok && v != nil && v.Kind == KindChar {
		return v.Char
	}
	if d := s.getDefault(path); d != nil && d.Kind == KindChar {
		return d.Char
	}
	return 0
}

func (s *Section) GetCharOr(path string, def rune) rune {
	if v, ok := s.find(path); ok && v != nil && v.Kind == KindChar {
		return v.Char
	}
	return def
}

// IsString requires the value to already be text, unlike GetString which
// stringifies any present value.
func (s *Section) IsString(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindString
}

func (s *Section) GetString(path string) string {
	if v, ok := s.find(path); ok && v != nil {
		return v.Text()
	}
	if d := s.getDefault(path); d != nil {
		return d.Text()
	}
	return ""
}

func (s *Section) GetStringOr(path string, def string) string {
	if v, ok := s.find(path); ok && v != nil {
		return v.Text()
	}
	return def
}

func (s *Section) IsList(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindList
}

// GetList returns a snapshot of the list elements at path, or an empty
// list when the path is absent or not a list.
func (s *Section) GetList(path string) []*Value {
	if v, ok := s.find(path); ok && v != nil && v.Kind == KindList {
		return append([]*Value{}, v.List...)
	}
	if d := s.getDefault(path); d != nil && d.Kind == KindList {
		return append([]*Value{}, d.List...)
	}
	return []*Value{}
}

func (s *Section) GetListOr(path string, def []*Value) []*Value {
	if v, ok := s.find(path); ok && v != nil && v.Kind == KindList {
		return append([]*Value{}, v.List...)
	}
	return def
}

func (s *Section) IsSection(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindSection
}

// GetSection returns the section at path. When only the defaults overlay
// has a section there, a fresh empty actual section is created in its
// place so that mutation through the result never reaches the shared
// defaults tree.
func (s *Section) GetSection(path string) *Section {
	if v, ok := s.find(path); ok && v != nil && v.Kind == KindSection {
		return v.Section
	}
	if d := s.getDefault(path); d != nil && d.Kind == KindSection {
		sec, err := s.CreateSection(path)
		if err != nil {
			return nil
		}
		return sec
	}
	return nil
}

func (s *Section) IsObject(path string) bool {
	v := s.Get(path)
	return v != nil && v.Kind == KindObject
}

// GetObject returns the typed object at path, nil on absence or kind
// mismatch. No coercion applies to typed objects.
func (s *Section) GetObject(path string) serial.Serializable {
	if v, ok := s.find(path); ok && v != nil && v.Kind == KindObject {
		return v.Object
	}
	if d := s.getDefault(path); d != nil && d.Kind == KindObject {
		return d.Object
	}
	return nil
}

func (s *Section) GetObjectOr(path string, def serial.Serializable) serial.Serializable {
	if v, ok := s.find(path); ok && v != nil && v.Kind == KindObject {
		return v.Object
	}
	return def
}

// GetSerializable is GetObject restricted to objects registered under
// alias; any other alias is a kind mismatch.
func (s *Section) GetSerializable(path, alias string) serial.Serializable {
	if v, ok := s.find(path); ok && v != nil && v.Kind == KindObject && v.Alias == alias {
		return v.Object
	}
	if d := s.getDefault(path); d != nil && d.Kind == KindObject && d.Alias == alias {
		return d.Object
	}
	return nil
}
