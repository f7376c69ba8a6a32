package source

// Class/function/variable descriptors consumed by language generators.
// Modelers fill these with names and body text; generators serialize them.

// Visibility of a class member
type Visibility string

const (
	Public    Visibility = "public"
	Protected Visibility = "protected"
	Private   Visibility = "private"
)

// Class describes one generated class
type Class struct {
	Name    string
	Extends string
	Doc     string

	// GuardExists wraps the declaration in a class_exists check so already
	// loaded definitions are not redeclared.
	GuardExists bool

	Constants []Constant
	Variables []Variable
	Functions []Function
}

// Constant is a class constant with a literal value expression
type Constant struct {
	Name  string
	Value string
}

// Variable is a class field. Initializer, when set, is a literal source
// expression assigned at declaration.
type Variable struct {
	Name        string
	Visibility  Visibility
	Static      bool
	Doc         string
	Initializer string
}

// Function is a method with a pre-synthesized source-text body
type Function struct {
	Name       string
	Visibility Visibility
	Params     []Param
	Doc        string
	Body       string
}

// Param is a function parameter. An empty TypeHint means the parameter is
// emitted untyped. Default, when set, is a literal source expression.
type Param struct {
	TypeHint string
	Name     string
	Default  string
}
