package source

// File describes one output source file: an optional namespace, source-file
// dependencies on other generated files, and the classes it declares.
type File struct {
	// Name is the file name without extension.
	Name string

	// Namespace, when set, is declared at the top of the file.
	Namespace string

	// Requires lists file names (with extension) this file depends on.
	Requires []string

	Classes []Class
}
