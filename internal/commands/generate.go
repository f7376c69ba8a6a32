package commands

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/crono/wsdl2phpgenerator-cli/internal/generator"
)

// Generate runs one generation pass from WSDL to PHP source files
func (c *Controller) Generate(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	log.Info().Str("wsdl", cfg.InputFile).Str("output", cfg.OutputDir).Msg("generating client")
	if err := generator.New(cfg).Generate(ctx); err != nil {
		return err
	}
	log.Info().Msg("generation complete")
	return nil
}
