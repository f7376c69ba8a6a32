package generator

import (
	"fmt"
	"strings"

	"github.com/crono/wsdl2phpgenerator-cli/internal/codegen/source"
	"github.com/crono/wsdl2phpgenerator-cli/internal/schema"
)

// serviceClass builds the class descriptor for the SOAP client, including
// the synthesized constructor and method bodies.
func (g *Generator) serviceClass() source.Class {
	svc := g.service

	base := "SoapClient"
	if g.cfg.NamespaceName != "" {
		base = "\\SoapClient"
	}

	c := source.Class{
		Name:        svc.Name,
		Extends:     base,
		GuardExists: g.cfg.ClassExists,
		Doc:         fmt.Sprintf("SOAP client generated from %s", g.doc.Location()),
	}

	c.Variables = []source.Variable{{
		Name:        "classmap",
		Visibility:  source.Private,
		Static:      true,
		Doc:         "@var array maps WSDL types to generated classes",
		Initializer: g.classmapInitializer(),
	}}

	c.Functions = append(c.Functions, source.Function{
		Name: "__construct",
		Params: []source.Param{
			{Name: "wsdl", Default: phpString(g.doc.Location())},
			{Name: "options", Default: "array()"},
		},
		Doc:  "@param string $wsdl URI of the WSDL file\n@param array $options options for the SoapClient",
		Body: g.constructorBody(),
	})

	for _, m := range svc.Methods {
		c.Functions = append(c.Functions, g.serviceMethod(m))
	}
	return c
}

// classmapInitializer renders the classmap entries in type discovery order.
func (g *Generator) classmapInitializer() string {
	var sb strings.Builder
	sb.WriteString("array(\n")
	for _, e := range g.service.ClassMap {
		fmt.Fprintf(&sb, "    %s => %s,\n", phpString(e.Raw), phpString(e.Generated))
	}
	sb.WriteString(")")
	return sb.String()
}

// constructorBody merges the classmap into the caller options without
// overwriting caller entries, seeds configured runtime defaults, and
// delegates to the SoapClient initializer.
func (g *Generator) constructorBody() string {
	var sb strings.Builder

	sb.WriteString("foreach (self::$classmap as $key => $value) {\n")
	sb.WriteString("    if (!isset($options['classmap'][$key])) {\n")
	sb.WriteString("        $options['classmap'][$key] = $value;\n")
	sb.WriteString("    }\n")
	sb.WriteString("}\n")

	if defaults := g.defaultOptions(); len(defaults) > 0 {
		sb.WriteString("$options = array_merge(array(\n")
		for _, d := range defaults {
			fmt.Fprintf(&sb, "    %s,\n", d)
		}
		sb.WriteString("), $options);\n")
	}

	sb.WriteString("parent::__construct($wsdl, $options);")
	return sb.String()
}

// defaultOptions renders the configured runtime option entries, each
// included only when configured. Feature flags are OR-combined in
// declaration order.
func (g *Generator) defaultOptions() []string {
	var defaults []string
	if len(g.cfg.OptionFeatures) > 0 {
		defaults = append(defaults, fmt.Sprintf("'features' => %s", strings.Join(g.cfg.OptionFeatures, " | ")))
	}
	if g.cfg.WsdlCache != "" {
		defaults = append(defaults, fmt.Sprintf("'cache_wsdl' => %s", g.cfg.WsdlCache))
	}
	if g.cfg.Compression != "" {
		defaults = append(defaults, fmt.Sprintf("'compression' => %s", g.cfg.Compression))
	}
	return defaults
}

// serviceMethod builds one public method forwarding its parameters, in
// order, to the remote-invocation primitive.
func (g *Generator) serviceMethod(m schema.Method) source.Function {
	op := m.Operation

	params := make([]source.Param, len(op.Parameters))
	args := make([]string, len(op.Parameters))
	var doc strings.Builder
	for i, p := range op.Parameters {
		name := schema.SafeName(p.Name)
		params[i] = source.Param{TypeHint: p.Type, Name: name}
		args[i] = "$" + name

		docType := p.Type
		if docType == "" {
			docType = "mixed"
		}
		fmt.Fprintf(&doc, "@param %s $%s\n", docType, name)
	}
	fmt.Fprintf(&doc, "@return %s", op.ReturnType)

	return source.Function{
		Name:   m.Name,
		Params: params,
		Doc:    doc.String(),
		Body:   fmt.Sprintf("return $this->__soapCall(%s, array(%s));", phpString(m.Name), strings.Join(args, ", ")),
	}
}

// phpString renders s as a single-quoted PHP string literal.
func phpString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}
