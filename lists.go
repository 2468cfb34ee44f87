package canopy

import (
	"strconv"
	"unicode/utf8"
)

// Typed list accessors coerce each element independently and silently drop
// elements that fail, so the result can be shorter than the source list.
// Unlike the scalar accessors, element coercion does parse text: a list
// holding ["1", "x", 3] yields the int list [1, 3].

func (s *Section) GetBoolList(path string) []bool {
	list := s.GetList(path)
	res := make([]bool, 0, len(list))
	for _, elt := range list {
		if b, ok := boolElement(elt); ok {
			res = append(res, b)
		}
	}
	return res
}

func (s *Section) GetInt8List(path string) []int8 {
	list := s.GetList(path)
	res := make([]int8, 0, len(list))
	for _, elt := range list {
		if i, ok := intElement(elt); ok {
			res = append(res, int8(i))
		}
	}
	return res
}

func (s *Section) GetInt16List(path string) []int16 {
	list := s.GetList(path)
	res := make([]int16, 0, len(list))
	for _, elt := range list {
		if i, ok := intElement(elt); ok {
			res = append(res, int16(i))
		}
	}
	return res
}

func (s *Section) GetInt32List(path string) []int32 {
	list := s.GetList(path)
	res := make([]int32, 0, len(list))
	for _, elt := range list {
		if i, ok := intElement(elt); ok {
			res = append(res, int32(i))
		}
	}
	return res
}

func (s *Section) GetInt64List(path string) []int64 {
	list := s.GetList(path)
	res := make([]int64, 0, len(list))
	for _, elt := range list {
		if i, ok := intElement(elt); ok {
			res = append(res, i)
		}
	}
	return res
}

func (s *Section) GetIntList(path string) []int {
	list := s.GetList(path)
	res := make([]int, 0, len(list))
	for _, elt := range list {
		if i, ok := intElement(elt); ok {
			res = append(res, int(i))
		}
	}
	return res
}

func (s *Section) GetFloat32List(path string) []float32 {
	list := s.GetList(path)
	res := make([]float32, 0, len(list))
	for _, elt := range list {
		if f, ok := floatElement(elt); ok {
			res = append(res, float32(f))
		}
	}
	return res
}

func (s *Section) GetFloat64List(path string) []float64 {
	list := s.GetList(path)
	res := make([]float64, 0, len(list))
	for _, elt := range list {
		if f, ok := floatElement(elt); ok {
			res = append(res, f)
		}
	}
	return res
}

func (s *Section) GetCharList(path string) []rune {
	list := s.GetList(path)
	res := make([]rune, 0, len(list))
	for _, elt := range list {
		if c, ok := charElement(elt); ok {
			res = append(res, c)
		}
	}
	return res
}

// GetStringList stringifies scalar elements; lists, sections and typed
// objects are dropped.
func (s *Section) GetStringList(path string) []string {
	list := s.GetList(path)
	res := make([]string, 0, len(list))
	for _, elt := range list {
		if elt != nil && elt.Kind.IsScalar() {
			res = append(res, elt.Text())
		}
	}
	return res
}

// GetSectionList keeps only the mapping elements of the list. Sections
// inside lists are detached: they have no root or parent.
func (s *Section) GetSectionList(path string) []*Section {
	list := s.GetList(path)
	res := make([]*Section, 0, len(list))
	for _, elt := range list {
		if elt != nil && elt.Kind == KindSection && elt.Section != nil {
			res = append(res, elt.Section)
		}
	}
	return res
}

func boolElement(v *Value) (bool, bool) {
	if v == nil {
		return false, false
	}
	switch v.Kind {
	case KindBool:
		return v.Bool, true
	case KindString:
		switch v.Str {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func intElement(v *Value) (int64, bool) {
	if v == nil {
		return 0, false
	}
	switch {
	case v.Kind.IsInteger():
		return v.Int, true
	case v.Kind.IsFloat():
		return int64(v.Float), true
	case v.Kind == KindChar:
		return int64(v.Char), true
	case v.Kind == KindString:
		i, err := strconv.ParseInt(v.Str, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func floatElement(v *Value) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch {
	case v.Kind.IsNumeric():
		return v.AsFloat64(), true
	case v.Kind == KindChar:
		return float64(v.Char), true
	case v.Kind == KindString:
		f, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func charElement(v *Value) (rune, bool) {
	if v == nil {
		return 0, false
	}
	switch {
	case v.Kind == KindChar:
		return v.Char, true
	case v.Kind == KindString:
		if utf8.RuneCountInString(v.Str) == 1 {
			r, _ := utf8.DecodeRuneInString(v.Str)
			return r, true
		}
	case v.Kind.IsInteger():
		return rune(v.Int), true
	}
	return 0, false
}
