package schema

import "strings"

// Identifier validation and naming rules for the generated PHP source.

// CustomSuffix is appended to a class or type name rejected by validation.
// The composed name is used as-is and never re-validated.
const CustomSuffix = "Custom"

// primitives are type names that map to scalar PHP values and therefore
// never become generated classes or parameter type hints.
var primitives = map[string]struct{}{
	"int": {}, "integer": {}, "long": {}, "short": {}, "byte": {},
	"unsignedint": {}, "unsignedlong": {}, "unsignedshort": {}, "unsignedbyte": {},
	"float": {}, "double": {}, "decimal": {},
	"string": {}, "token": {}, "anyuri": {}, "qname": {},
	"bool": {}, "boolean": {},
	"datetime": {}, "date": {}, "time": {}, "duration": {},
	"base64binary": {}, "hexbinary": {},
	"anytype": {}, "anysimpletype": {}, "mixed": {}, "void": {},
}

// reservedWords are PHP keywords that cannot name a class.
var reservedWords = map[string]struct{}{
	"abstract": {}, "and": {}, "array": {}, "as": {}, "break": {},
	"case": {}, "catch": {}, "class": {}, "clone": {}, "const": {},
	"continue": {}, "declare": {}, "default": {}, "do": {}, "else": {},
	"elseif": {}, "enddeclare": {}, "endfor": {}, "endforeach": {},
	"endif": {}, "endswitch": {}, "endwhile": {}, "extends": {},
	"final": {}, "for": {}, "foreach": {}, "function": {}, "global": {},
	"goto": {}, "if": {}, "implements": {}, "interface": {},
	"instanceof": {}, "namespace": {}, "new": {}, "or": {}, "private": {},
	"protected": {}, "public": {}, "static": {}, "switch": {}, "throw": {},
	"try": {}, "use": {}, "var": {}, "while": {}, "xor": {}, "list": {},
	"echo": {}, "print": {}, "return": {}, "require": {}, "include": {},
	"require_once": {}, "include_once": {}, "exit": {}, "die": {},
	"empty": {}, "isset": {}, "unset": {}, "eval": {},
}

// IsPrimitive reports whether typeName names a scalar/primitive type.
func IsPrimitive(typeName string) bool {
	_, ok := primitives[strings.ToLower(typeName)]
	return ok
}

// ValidateClassName returns name unchanged when it is usable as a generated
// class name, or a ValidationError.
func ValidateClassName(name string) (string, error) {
	if err := checkIdentifier(name); err != nil {
		return "", err
	}
	if _, ok := reservedWords[strings.ToLower(name)]; ok {
		return "", &ValidationError{Name: name, Reason: "reserved word"}
	}
	return name, nil
}

// ValidateTypeName returns name unchanged when it is usable as a member type
// name, or a ValidationError. Primitive names are acceptable types.
func ValidateTypeName(name string) (string, error) {
	if IsPrimitive(name) {
		return name, nil
	}
	return ValidateClassName(name)
}

// SafeName normalizes a member or parameter name into a usable identifier.
// It never fails: illegal characters are dropped, a leading "$" sigil is
// stripped, and a name left empty or starting with a digit is padded.
func SafeName(name string) string {
	name = strings.TrimPrefix(name, "$")

	var sb strings.Builder
	for _, r := range name {
		if isIdentRune(r, sb.Len() > 0) {
			sb.WriteRune(r)
		}
	}
	cleaned := sb.String()
	if cleaned == "" {
		return "_"
	}
	if cleaned[0] >= '0' && cleaned[0] <= '9' {
		cleaned = "_" + cleaned
	}
	return cleaned
}

// NamingConvention applies the method naming rule: lowercase first letter,
// rest of the name untouched.
func NamingConvention(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// Fallback applies the local recovery policy for a rejected class or type
// name: append the fixed suffix and proceed without re-validating.
func Fallback(name string) string {
	return name + CustomSuffix
}

func checkIdentifier(name string) error {
	if name == "" {
		return &ValidationError{Name: name, Reason: "empty name"}
	}
	for i, r := range name {
		if !isIdentRune(r, i > 0) {
			return &ValidationError{Name: name, Reason: "illegal character"}
		}
	}
	return nil
}

func isIdentRune(r rune, notFirst bool) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		return true
	case r >= '0' && r <= '9':
		return notFirst
	default:
		return false
	}
}
