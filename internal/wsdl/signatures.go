package wsdl

import (
	"fmt"
	"strings"
)

// Signature synthesis. A native SOAP runtime reports operations and types as
// flat signature strings ("string getName(string $id)", "struct Person {...}").
// This file reconstructs the same two lists from the parsed WSDL so the rest
// of the generator can stay agnostic of WSDL/XSD grammar.

// OperationSignatures returns one signature string per portType operation,
// in declaration order across all portTypes.
func (d *Document) OperationSignatures() []string {
	var sigs []string
	for _, pt := range d.portTypes {
		for _, op := range pt.Operations {
			sigs = append(sigs, d.operationSignature(op))
		}
	}
	return sigs
}

func (d *Document) operationSignature(op rawOperation) string {
	params := d.messageValues(op.Input)
	returns := d.messageValues(op.Output)

	var ret string
	switch len(returns) {
	case 0:
		ret = "void"
	case 1:
		ret = returns[0].typ
	default:
		fields := make([]string, len(returns))
		for i, r := range returns {
			fields[i] = fmt.Sprintf("%s $%s", r.typ, r.name)
		}
		ret = "list(" + strings.Join(fields, ", ") + ")"
	}

	args := make([]string, len(params))
	for i, p := range params {
		args[i] = fmt.Sprintf("%s $%s", p.typ, p.name)
	}

	return fmt.Sprintf("%s %s(%s)", ret, op.Name, strings.Join(args, ", "))
}

// value is a typed name extracted from a message part or wrapper element.
type value struct {
	typ  string
	name string
}

// messageValues resolves a portType input/output reference into the typed
// names it carries. RPC-style parts carry a type directly; document-style
// parts reference a wrapper element whose child elements are the values.
func (d *Document) messageValues(ref *rawIORef) []value {
	if ref == nil {
		return nil
	}
	msg, ok := d.messages[localName(ref.Message)]
	if !ok {
		return nil
	}

	var values []value
	for _, part := range msg.Parts {
		switch {
		case part.Type != "":
			values = append(values, value{typ: localName(part.Type), name: part.Name})
		case part.Element != "":
			values = append(values, d.elementValues(localName(part.Element))...)
		}
	}
	return values
}

// elementValues expands a wrapper element into its child element values.
func (d *Document) elementValues(name string) []value {
	el := d.findTopLevel("element", name)
	if el == nil {
		return nil
	}

	// Element with a simple type reference is itself the value.
	if typ := el.Attr("type"); typ != "" {
		ct := d.findTopLevel("complexType", localName(typ))
		if ct == nil {
			return []value{{typ: localName(typ), name: name}}
		}
		return childElementValues(ct)
	}

	return childElementValues(el)
}

func childElementValues(n *Node) []value {
	var values []value
	n.walk(func(c *Node) {
		if c == n || c.Local() != "element" {
			return
		}
		typ := localName(c.Attr("type"))
		if typ == "" {
			typ = c.Attr("name")
		}
		values = append(values, value{typ: typ, name: c.Attr("name")})
	})
	return values
}

// TypeSignatures returns one signature string per schema type, in document
// order: named complexTypes and elements with inline complex content as
// struct signatures, named simpleType restrictions as one-line signatures.
func (d *Document) TypeSignatures() []string {
	var sigs []string
	for i := range d.schemas {
		for j := range d.schemas[i].Nodes {
			n := &d.schemas[i].Nodes[j]
			switch n.Local() {
			case "complexType":
				if n.Attr("name") != "" {
					sigs = append(sigs, structSignature(n.Attr("name"), n))
				}
			case "element":
				if inline := childNode(n, "complexType"); inline != nil {
					sigs = append(sigs, structSignature(n.Attr("name"), inline))
				}
			case "simpleType":
				if n.Attr("name") != "" {
					sigs = append(sigs, simpleSignature(n))
				}
			}
		}
	}
	return sigs
}

func structSignature(name string, ct *Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "struct %s {\n", name)
	for _, v := range childElementValues(ct) {
		fmt.Fprintf(&sb, " %s %s;\n", v.typ, v.name)
	}
	sb.WriteString("}")
	return sb.String()
}

func simpleSignature(n *Node) string {
	base := "string"
	if r := childNode(n, "restriction"); r != nil {
		if b := localName(r.Attr("base")); b != "" {
			base = b
		}
	}
	return fmt.Sprintf("%s %s", base, n.Attr("name"))
}

// findTopLevel locates a direct child of any schema section by local element
// name and name attribute.
func (d *Document) findTopLevel(local, name string) *Node {
	for i := range d.schemas {
		for j := range d.schemas[i].Nodes {
			n := &d.schemas[i].Nodes[j]
			if n.Local() == local && n.Attr("name") == name {
				return n
			}
		}
	}
	return nil
}

func childNode(n *Node, local string) *Node {
	for i := range n.Nodes {
		if n.Nodes[i].Local() == local {
			return &n.Nodes[i]
		}
	}
	return nil
}

// localName strips a namespace prefix from a qualified name.
func localName(qname string) string {
	if idx := strings.LastIndex(qname, ":"); idx >= 0 {
		return qname[idx+1:]
	}
	return qname
}
