package schema

// Operation is a parsed operation signature
type Operation struct {
	Name       string      `json:"name"`
	ReturnType string      `json:"returnType"`
	Parameters []Parameter `json:"parameters"`
}

// Parameter is a single operation parameter. A parameter with an empty Type
// is untyped and emitted without a type hint.
type Parameter struct {
	Type string `json:"type,omitempty"`
	Name string `json:"name"`
}

// ParsedType is the result of parsing one type signature string
type ParsedType struct {
	Name    string   `json:"name"`
	Members []Member `json:"members"`
}

// Member is a named, typed field of a data type
type Member struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Type is a modeled data type ready for emission
type Type struct {
	RawName       string   `json:"rawName"`
	GeneratedName string   `json:"generatedName"`
	Members       []Member `json:"members"`
	EnumValues    []string `json:"enumValues,omitempty"`
}

// IsEnum reports whether the type carries enumeration values instead of members.
func (t *Type) IsEnum() bool {
	return len(t.Members) == 0 && len(t.EnumValues) > 0
}

// ClassMapEntry maps a raw WSDL type name to its generated class name
type ClassMapEntry struct {
	Raw       string `json:"raw"`
	Generated string `json:"generated"`
}

// Method is a deduplicated service method
type Method struct {
	Name      string     `json:"name"`
	Operation *Operation `json:"operation"`
}

// Service is the modeled service: generated class name, the classmap in type
// discovery order, and the deduplicated methods.
type Service struct {
	Name     string          `json:"name"`
	ClassMap []ClassMapEntry `json:"classMap"`
	Methods  []Method        `json:"methods"`
}
