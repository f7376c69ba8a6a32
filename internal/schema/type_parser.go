package schema

import "strings"

// ParseTypeSignature parses one type signature string. Line 1 is
// "keyword ClassName", lines 2..n-1 are "Type member;" and the final line is
// a terminator. The second return value is false for signatures that do not
// produce a generated class: malformed headers and synthesized collection
// wrappers ("Foo[]", "ArrayOfFoo").
func ParseTypeSignature(sig string) (*ParsedType, bool) {
	lines := strings.Split(sig, "\n")

	header := strings.Fields(lines[0])
	if len(header) < 2 {
		return nil, false
	}
	name := header[1]
	if strings.HasSuffix(name, "[]") || strings.HasPrefix(name, "ArrayOf") {
		return nil, false
	}

	parsed := &ParsedType{Name: name}
	seen := make(map[string]struct{})
	for i := 1; i < len(lines)-1; i++ {
		fields := strings.Fields(strings.TrimSpace(lines[i]))
		if len(fields) < 2 {
			continue
		}
		typ, member := fields[0], strings.TrimSuffix(fields[1], ";")

		// Namespace-style qualifiers: the member keeps the segment after
		// the colon, the type the segment before it.
		if idx := strings.Index(member, ":"); idx >= 0 {
			member = member[idx+1:]
		}
		if idx := strings.Index(typ, ":"); idx >= 0 {
			typ = typ[:idx]
		}

		if _, dup := seen[member]; dup {
			continue
		}
		seen[member] = struct{}{}
		parsed.Members = append(parsed.Members, Member{Name: member, Type: typ})
	}
	return parsed, true
}
