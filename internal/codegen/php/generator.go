package php

import (
	"fmt"
	"strings"

	"github.com/crono/wsdl2phpgenerator-cli/internal/codegen/source"
	"github.com/crono/wsdl2phpgenerator-cli/internal/codegen/writer"
)

// Generator serializes class descriptors into PHP source files
type Generator struct{}

// NewGenerator creates a new PHP code generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "php"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".php"
}

// Generate serializes a file descriptor into PHP source
func (g *Generator) Generate(file *source.File) ([]byte, error) {
	w := writer.NewWriter("    ")

	w.WriteLine("<?php")
	w.BlankLine()

	if file.Namespace != "" {
		w.WriteLinef("namespace %s;", file.Namespace)
		w.BlankLine()
	}

	if len(file.Requires) > 0 {
		for _, req := range file.Requires {
			w.WriteLinef("require_once('%s');", req)
		}
		w.BlankLine()
	}

	for i := range file.Classes {
		if i > 0 {
			w.BlankLine()
		}
		g.generateClass(w, &file.Classes[i])
	}

	return w.Bytes(), nil
}

func (g *Generator) generateClass(w *writer.Writer, c *source.Class) {
	if c.GuardExists {
		w.WriteLinef(`if (!class_exists("%s", false)) {`, c.Name)
	}

	w.WriteDocBlock(c.Doc)
	if c.Extends != "" {
		w.WriteLinef("class %s extends %s", c.Name, c.Extends)
	} else {
		w.WriteLinef("class %s", c.Name)
	}
	w.WriteLine("{")
	w.Indent()

	for _, con := range c.Constants {
		w.WriteLinef("const %s = %s;", con.Name, con.Value)
	}
	if len(c.Constants) > 0 && (len(c.Variables) > 0 || len(c.Functions) > 0) {
		w.BlankLine()
	}

	for i, v := range c.Variables {
		w.WriteDocBlock(v.Doc)
		decl := string(visibility(v.Visibility))
		if v.Static {
			decl += " static"
		}
		if v.Initializer != "" {
			w.Writef("%s $%s = ", decl, v.Name)
			w.WriteBody(v.Initializer + ";")
		} else {
			w.WriteLinef("%s $%s;", decl, v.Name)
		}
		if i < len(c.Variables)-1 || len(c.Functions) > 0 {
			w.BlankLine()
		}
	}

	for i := range c.Functions {
		g.generateFunction(w, &c.Functions[i])
		if i < len(c.Functions)-1 {
			w.BlankLine()
		}
	}

	w.Dedent()
	w.WriteLine("}")

	if c.GuardExists {
		w.WriteLine("}")
	}
}

func (g *Generator) generateFunction(w *writer.Writer, f *source.Function) {
	w.WriteDocBlock(f.Doc)
	w.WriteLinef("%s function %s(%s)", visibility(f.Visibility), f.Name, paramList(f.Params))
	w.WriteLine("{")
	w.Indent()
	w.WriteBody(f.Body)
	w.Dedent()
	w.WriteLine("}")
}

func paramList(params []source.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		var sb strings.Builder
		if p.TypeHint != "" {
			fmt.Fprintf(&sb, "%s ", p.TypeHint)
		}
		fmt.Fprintf(&sb, "$%s", p.Name)
		if p.Default != "" {
			fmt.Fprintf(&sb, " = %s", p.Default)
		}
		parts[i] = sb.String()
	}
	return strings.Join(parts, ", ")
}

func visibility(v source.Visibility) source.Visibility {
	if v == "" {
		return source.Public
	}
	return v
}
