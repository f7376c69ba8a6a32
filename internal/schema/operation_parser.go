package schema

import "strings"

// ParseOperation parses one operation signature string. Two grammars are
// tried in order:
//
//	ReturnType name(paramList)
//	list(...) name(paramList)
//
// A signature matching neither yields a GrammarError.
func ParseOperation(sig string) (*Operation, error) {
	if op, ok := parseScalarReturn(sig); ok {
		return op, nil
	}
	if op, ok := parseListReturn(sig); ok {
		return op, nil
	}
	return nil, &GrammarError{Signature: sig}
}

// parseScalarReturn handles "ReturnType name(paramList)".
func parseScalarReturn(sig string) (*Operation, bool) {
	space := strings.IndexByte(sig, ' ')
	if space <= 0 {
		return nil, false
	}
	ret := sig[:space]
	if strings.ContainsAny(ret, "()") {
		return nil, false
	}
	name, params, ok := splitCall(sig[space+1:])
	if !ok {
		return nil, false
	}
	return &Operation{Name: name, ReturnType: ret, Parameters: parseParams(params)}, true
}

// parseListReturn handles "list(...) name(paramList)". The parenthesized
// return list is only round-tripped as the return-type string.
func parseListReturn(sig string) (*Operation, bool) {
	if !strings.HasPrefix(sig, "list(") {
		return nil, false
	}
	close := strings.IndexByte(sig, ')')
	if close < 0 {
		return nil, false
	}
	ret := sig[:close+1]
	rest := sig[close+1:]
	if !strings.HasPrefix(rest, " ") {
		return nil, false
	}
	name, params, ok := splitCall(rest[1:])
	if !ok {
		return nil, false
	}
	return &Operation{Name: name, ReturnType: ret, Parameters: parseParams(params)}, true
}

// splitCall breaks "name(paramList)" into its parts.
func splitCall(s string) (name, params string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	name = s[:open]
	params = s[open+1 : len(s)-1]
	if strings.ContainsAny(name, " ()") || strings.ContainsAny(params, "()") {
		return "", "", false
	}
	return name, params, true
}

// parseParams splits a parameter list on ", ". A single-token entry is an
// untyped parameter; a two-token entry is (typeHint, name), where a
// primitive type hint collapses to an untyped parameter. Order is preserved.
func parseParams(list string) []Parameter {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	var params []Parameter
	for _, entry := range strings.Split(list, ", ") {
		fields := strings.Fields(entry)
		switch {
		case len(fields) == 0:
			// empty entries are skipped
		case len(fields) == 1:
			params = append(params, Parameter{Name: fields[0]})
		default:
			hint, name := fields[0], fields[1]
			if IsPrimitive(hint) {
				params = append(params, Parameter{Name: name})
			} else {
				params = append(params, Parameter{Type: hint, Name: name})
			}
		}
	}
	return params
}
