package schema

import "github.com/crono/wsdl2phpgenerator-cli/internal/wsdl"

// SchemaTree is the view of the description document needed for enum lookup.
type SchemaTree interface {
	FindSchemaNode(name string) *wsdl.Node
	EnumerationValues(node *wsdl.Node) []string
}

// ExtractEnum recovers the enumeration values for a type with zero parsed
// members. A missing schema node or a node without enumeration descendants
// yields nil, which is not an error.
func ExtractEnum(tree SchemaTree, rawName string) []string {
	node := tree.FindSchemaNode(rawName)
	if node == nil {
		return nil
	}
	return tree.EnumerationValues(node)
}
