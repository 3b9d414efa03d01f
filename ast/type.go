package ast

import "fmt"

type Type int

const (
	DocumentType Type = iota
	MapType
	ListType
	ScalarType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		DocumentType: "Document",
		MapType:      "Map",
		ListType:     "List",
		ScalarType:   "Scalar",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Document": DocumentType,
		"Map":      MapType,
		"List":     ListType,
		"Scalar":   ScalarType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		DocumentType,
		MapType,
		ListType,
		ScalarType,
	}
}

func (t Type) IsLeaf() bool {
	return t == ScalarType
}
