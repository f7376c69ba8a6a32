package generator

import (
	"fmt"
	"strings"

	"github.com/crono/wsdl2phpgenerator-cli/internal/codegen/source"
	"github.com/crono/wsdl2phpgenerator-cli/internal/schema"
)

// typeClass builds the class descriptor for one data type: public fields
// per member, string constants per enumeration value, and an optional
// member-assigning constructor.
func (g *Generator) typeClass(t *schema.Type) source.Class {
	c := source.Class{
		Name:        t.GeneratedName,
		GuardExists: g.cfg.ClassExists,
		Doc:         fmt.Sprintf("Generated from the %s WSDL type", t.RawName),
	}

	for _, v := range t.EnumValues {
		c.Constants = append(c.Constants, source.Constant{
			Name:  schema.SafeName(v),
			Value: phpString(v),
		})
	}

	for _, m := range t.Members {
		c.Variables = append(c.Variables, source.Variable{
			Name:       m.Name,
			Visibility: source.Public,
			Doc:        fmt.Sprintf("@var %s", m.Type),
		})
	}

	if len(t.Members) > 0 && !g.cfg.NoTypeConstructor {
		c.Functions = append(c.Functions, typeConstructor(t))
	}
	return c
}

// typeConstructor mirrors member order in its parameter list and assigns
// each parameter to the same-named field positionally.
func typeConstructor(t *schema.Type) source.Function {
	params := make([]source.Param, len(t.Members))
	var body, doc strings.Builder
	for i, m := range t.Members {
		params[i] = source.Param{Name: m.Name}
		fmt.Fprintf(&body, "$this->%s = $%s;", m.Name, m.Name)
		if i < len(t.Members)-1 {
			body.WriteString("\n")
		}
		fmt.Fprintf(&doc, "@param %s $%s", m.Type, m.Name)
		if i < len(t.Members)-1 {
			doc.WriteString("\n")
		}
	}

	return source.Function{
		Name:   "__construct",
		Params: params,
		Doc:    doc.String(),
		Body:   body.String(),
	}
}
