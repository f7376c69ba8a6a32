package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/crono/wsdl2phpgenerator-cli/internal/codegen"
	"github.com/crono/wsdl2phpgenerator-cli/internal/codegen/source"
	"github.com/crono/wsdl2phpgenerator-cli/internal/config"
	"github.com/crono/wsdl2phpgenerator-cli/internal/schema"
	"github.com/crono/wsdl2phpgenerator-cli/internal/wsdl"
)

// Generator runs one generation pass: load the description, model all types,
// model the service, emit source files. Each Generator owns its model state
// exclusively for the duration of the run.
type Generator struct {
	cfg    *config.Config
	logger zerolog.Logger
	parser *wsdl.Parser

	doc      *wsdl.Document
	types    []*schema.Type
	classMap []schema.ClassMapEntry
	service  *schema.Service
}

// New creates a generator for one run
func New(cfg *config.Config) *Generator {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("component", "generator").
		Logger().Level(level)

	return &Generator{
		cfg:    cfg,
		logger: logger,
		parser: wsdl.NewParser(),
	}
}

// Generate runs the fixed sequence load -> model types -> model service ->
// save. Any error aborts the run; files already written stay on disk.
func (g *Generator) Generate(ctx context.Context) error {
	doc, err := g.parser.Parse(g.cfg.InputFile)
	if err != nil {
		return err
	}
	g.doc = doc
	g.logger.Debug().Str("wsdl", g.cfg.InputFile).Msg("description loaded")

	g.loadTypes()
	if err := g.loadService(); err != nil {
		return err
	}
	return g.Save()
}

// loadTypes models every non-array type signature and records the classmap
// in discovery order.
func (g *Generator) loadTypes() {
	seen := make(map[string]struct{})
	for _, sig := range g.doc.TypeSignatures() {
		parsed, ok := schema.ParseTypeSignature(sig)
		if !ok {
			g.logger.Debug().Str("signature", sig).Msg("skipping collection wrapper type")
			continue
		}
		if _, dup := seen[parsed.Name]; dup {
			continue
		}
		seen[parsed.Name] = struct{}{}

		t := schema.BuildType(parsed, g.cfg.Prefix, g.cfg.Suffix, g.doc)
		g.types = append(g.types, t)
		g.classMap = append(g.classMap, schema.ClassMapEntry{Raw: t.RawName, Generated: t.GeneratedName})
		g.logger.Debug().Str("type", t.GeneratedName).Int("members", len(t.Members)).Msg("modeled type")
	}
}

// loadService parses every operation signature and models the service.
// A signature matching no grammar aborts the whole run.
func (g *Generator) loadService() error {
	var ops []*schema.Operation
	for _, sig := range g.doc.OperationSignatures() {
		op, err := schema.ParseOperation(sig)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	svc, err := schema.BuildService(g.doc, ops, g.classMap, g.cfg.Prefix, g.cfg.Suffix)
	if err != nil {
		return err
	}
	g.service = svc
	g.logger.Debug().Str("service", svc.Name).Int("methods", len(svc.Methods)).Msg("modeled service")
	return nil
}

// Save emits the modeled service and types under the configured output
// policy. It requires Generate (or loadService) to have run first.
func (g *Generator) Save() error {
	if g.service == nil {
		return ErrNoServiceLoaded
	}
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputDir, g.cfg.OutputDir, err)
	}

	gen, err := codegen.DefaultRegistry.Get("php")
	if err != nil {
		return err
	}

	for _, file := range g.planFiles(gen.FileExtension()) {
		data, err := gen.Generate(file)
		if err != nil {
			return err
		}
		path := filepath.Join(g.cfg.OutputDir, file.Name+gen.FileExtension())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		g.logger.Debug().Str("file", path).Msg("wrote generated file")
	}
	return nil
}

// planFiles applies the output policy: a single merged file, or one file per
// allow-listed type plus a service file declaring a dependency on each.
func (g *Generator) planFiles(ext string) []*source.File {
	if g.cfg.OneFilePerService {
		file := &source.File{Name: g.service.Name, Namespace: g.cfg.NamespaceName}
		if g.cfg.ClassAllowed(g.service.Name) {
			file.Classes = append(file.Classes, g.serviceClass())
		}
		for _, t := range g.types {
			if g.cfg.ClassAllowed(t.GeneratedName) {
				file.Classes = append(file.Classes, g.typeClass(t))
			}
		}
		if len(file.Classes) == 0 {
			return nil
		}
		return []*source.File{file}
	}

	var files []*source.File
	var requires []string
	for _, t := range g.types {
		if !g.cfg.ClassAllowed(t.GeneratedName) {
			continue
		}
		files = append(files, &source.File{
			Name:      t.GeneratedName,
			Namespace: g.cfg.NamespaceName,
			Classes:   []source.Class{g.typeClass(t)},
		})
		requires = append(requires, t.GeneratedName+ext)
	}
	if g.cfg.ClassAllowed(g.service.Name) {
		files = append(files, &source.File{
			Name:      g.service.Name,
			Namespace: g.cfg.NamespaceName,
			Requires:  requires,
			Classes:   []source.Class{g.serviceClass()},
		})
	}
	return files
}
