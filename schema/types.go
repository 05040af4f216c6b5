package schema

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
)

// FieldType is the type of a field in a format.
type FieldType int

const (
	AnyType FieldType = iota
	UnsignedType
	IntegerType
	NumberType
	StringType
	BooleanType
	ScalarType
	ArrayType
	MapType
)

var fieldTypeNames = [...]string{
	AnyType:      "any",
	UnsignedType: "unsigned",
	IntegerType:  "integer",
	NumberType:   "number",
	StringType:   "string",
	BooleanType:  "boolean",
	ScalarType:   "scalar",
	ArrayType:    "array",
	MapType:      "map",
}

func FieldTypes() []FieldType {
	res := make([]FieldType, len(fieldTypeNames))
	for i := range res {
		res[i] = FieldType(i)
	}
	return res
}

func (t FieldType) String() string {
	if t < 0 || int(t) >= len(fieldTypeNames) {
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
	return fieldTypeNames[t]
}

// IsContainer reports whether fields of type t hold other fields.
func (t FieldType) IsContainer() bool {
	return t == ArrayType || t == MapType
}

func ParseFieldType(s string) (FieldType, error) {
	for i, name := range fieldTypeNames {
		if name == s {
			return FieldType(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrFieldType, s)
}

func (t *FieldType) UnmarshalYAML(node ast.Node) error {
	sn, ok := node.(*ast.StringNode)
	if !ok {
		return fmt.Errorf("%w: field type must be a string, got %s", ErrFieldType, node.Type())
	}
	v, err := ParseFieldType(sn.Value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t FieldType) MarshalYAML() (any, error) {
	return t.String(), nil
}
