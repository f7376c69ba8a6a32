package codegen

import "github.com/crono/wsdl2phpgenerator-cli/internal/codegen/php"

// DefaultRegistry is the global registry instance with pre-registered generators
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register("php", func() Generator {
		return php.NewGenerator()
	})
}
