package ast

// ValueType represents the type of an AST value
type ValueType uint8

// Value types
const (
	ValueTypeNil ValueType = iota
	ValueTypeBoolean
	ValueTypeInteger
	ValueTypeFloat
	ValueTypeString
	ValueTypeSymbol
	ValueTypeList
)

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return ""
}

var valueTypeName = map[ValueType]string{
	ValueTypeNil:     "nil",
	ValueTypeBoolean: "boolean",
	ValueTypeInteger: "integer",
	ValueTypeFloat:   "float",
	ValueTypeString:  "string",
	ValueTypeSymbol:  "symbol",
	ValueTypeList:    "list",
}
