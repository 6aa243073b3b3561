//go:build !ebiten

package app

import (
	"context"

	"orbitfx/internal/config"
	"orbitfx/internal/config/logger"
	"orbitfx/internal/core"
)

// Run reports that the GUI host is unavailable in headless builds.
func Run(_ context.Context, _ *config.Config, _ core.Scene, _ <-chan *config.Config, log logger.Logger) error {
	log.Error().Msg("Window host not compiled in; rebuild with -tags ebiten or use the term command")
	return config.ErrHeadlessBuild
}
