package schema

// BuildType models a parsed, non-array type: the raw name is decorated with
// the configured prefix/suffix and validated (with the Custom fallback),
// member type and member names are validated the same way, and enumeration
// values are recovered for types with zero members. tree may be nil when no
// schema sections are available.
func BuildType(parsed *ParsedType, prefix, suffix string, tree SchemaTree) *Type {
	generated, err := ValidateClassName(prefix + parsed.Name + suffix)
	if err != nil {
		generated = Fallback(prefix + parsed.Name + suffix)
	}

	t := &Type{RawName: parsed.Name, GeneratedName: generated}
	for _, m := range parsed.Members {
		typ, err := ValidateTypeName(m.Type)
		if err != nil {
			typ = Fallback(m.Type)
		}
		t.Members = append(t.Members, Member{Name: SafeName(m.Name), Type: typ})
	}

	if len(t.Members) == 0 && tree != nil {
		t.EnumValues = ExtractEnum(tree, parsed.Name)
	}
	return t
}
