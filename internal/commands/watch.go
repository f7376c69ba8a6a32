package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/crono/wsdl2phpgenerator-cli/internal/generator"
)

// Watch regenerates the client whenever the local WSDL file changes
func (c *Controller) Watch(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if strings.HasPrefix(cfg.InputFile, "http://") || strings.HasPrefix(cfg.InputFile, "https://") {
		return fmt.Errorf("watch mode requires a local WSDL file, got %s", cfg.InputFile)
	}

	// Initial run before watching.
	if err := generator.New(cfg).Generate(ctx); err != nil {
		return fmt.Errorf("initial generation failed: %w", err)
	}
	log.Info().Str("wsdl", cfg.InputFile).Msg("watching for changes")

	watcher, err := NewFileWatcher(cfg.InputFile, func(path string) {
		log.Info().Str("wsdl", path).Msg("change detected, regenerating")
		if err := generator.New(cfg).Generate(ctx); err != nil {
			log.Error().Err(err).Msg("regeneration failed")
			return
		}
		log.Info().Msg("regeneration complete")
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	return watcher.Start(ctx)
}
