package canopy

import "fmt"

// Kind identifies which member of the Value union is populated.
type Kind int

const (
	KindBool Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindChar
	KindString
	KindList
	KindSection
	KindObject
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindBool:    "Bool",
		KindInt8:    "Int8",
		KindInt16:   "Int16",
		KindInt32:   "Int32",
		KindInt64:   "Int64",
		KindFloat32: "Float32",
		KindFloat64: "Float64",
		KindChar:    "Char",
		KindString:  "String",
		KindList:    "List",
		KindSection: "Section",
		KindObject:  "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Bool":    KindBool,
		"Int8":    KindInt8,
		"Int16":   KindInt16,
		"Int32":   KindInt32,
		"Int64":   KindInt64,
		"Float32": KindFloat32,
		"Float64": KindFloat64,
		"Char":    KindChar,
		"String":  KindString,
		"List":    KindList,
		"Section": KindSection,
		"Object":  KindObject,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindBool,
		KindInt8,
		KindInt16,
		KindInt32,
		KindInt64,
		KindFloat32,
		KindFloat64,
		KindChar,
		KindString,
		KindList,
		KindSection,
		KindObject,
	}
}

// IsInteger reports whether k is one of the integer kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether k is one of the floating-point kinds.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsNumeric reports whether k is an integer or floating-point kind.
func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat()
}

// IsScalar reports whether k is a single-line value kind. Lists, sections
// and typed objects span multiple lines in the persisted form.
func (k Kind) IsScalar() bool {
	switch k {
	case KindList, KindSection, KindObject:
		return false
	default:
		return true
	}
}
