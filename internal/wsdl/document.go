package wsdl

// Document is a parsed WSDL description. It exposes the two signature-string
// lists a code generator consumes plus a navigable view of the embedded XSD
// schemas for enumeration lookup.
type Document struct {
	location  string
	messages  map[string]rawMessage
	portTypes []rawPortType
	services  []string
	schemas   []Node
}

// Location returns the path or URL the document was loaded from.
func (d *Document) Location() string {
	return d.location
}

// ServiceName returns the name of the first service element, if any.
func (d *Document) ServiceName() (string, bool) {
	if len(d.services) == 0 {
		return "", false
	}
	return d.services[0], true
}

// FindSchemaNode searches the schema sections for the first element whose
// name attribute equals name, in document order. Returns nil when absent.
func (d *Document) FindSchemaNode(name string) *Node {
	for i := range d.schemas {
		schema := &d.schemas[i]
		var found *Node
		schema.walk(func(n *Node) {
			if found == nil && n.Attr("name") == name {
				found = n
			}
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// EnumerationValues collects the value attribute of every descendant
// enumeration element of node, in document order.
func (d *Document) EnumerationValues(node *Node) []string {
	if node == nil {
		return nil
	}
	var values []string
	node.walk(func(n *Node) {
		if n.Local() == "enumeration" {
			values = append(values, n.Attr("value"))
		}
	})
	return values
}
