package codegen

import "github.com/crono/wsdl2phpgenerator-cli/internal/codegen/source"

// Generator is the interface all language-specific code generators implement
type Generator interface {
	// Generate serializes a file descriptor and returns the source as bytes
	Generate(file *source.File) ([]byte, error)

	// Language returns the name of the target language (e.g., "php")
	Language() string

	// FileExtension returns the file extension for generated files (e.g., ".php")
	FileExtension() string
}
