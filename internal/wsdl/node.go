package wsdl

import "encoding/xml"

// Node is a generic XML element tree. The XSD schema sections of a WSDL are
// decoded into Nodes so callers can navigate them without this package
// committing to a full XSD object model.
type Node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []Node     `xml:",any"`
}

// Local returns the element's local name without any namespace prefix.
func (n *Node) Local() string {
	return n.XMLName.Local
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// walk visits n and every descendant in document order.
func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for i := range n.Nodes {
		n.Nodes[i].walk(visit)
	}
}
