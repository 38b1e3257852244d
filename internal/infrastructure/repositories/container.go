package repositories

import (
	"github.com/rios0rios0/aptsources/internal/domain/entities"
	domainRepos "github.com/rios0rios0/aptsources/internal/domain/repositories"
	"github.com/rios0rios0/aptsources/internal/infrastructure/repositories/elevated"
	"github.com/rios0rios0/aptsources/internal/infrastructure/repositories/filesystem"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Scanner factory, rooted at runtime from the settings
	if err := container.Provide(func() domainRepos.SourcesScannerFactory {
		return filesystem.NewSourcesScanner
	}); err != nil {
		return err
	}

	// Register writer registry with one writer per write mode
	if err := container.Provide(func() *WriterRegistry {
		reg := NewWriterRegistry()
		reg.Register(domainRepos.ModeOverwrite, func(_ entities.EscalationSettings) domainRepos.SourcesWriter {
			return filesystem.NewOverwriteWriter()
		})
		reg.Register(domainRepos.ModePath, func(_ entities.EscalationSettings) domainRepos.SourcesWriter {
			return filesystem.NewPathWriter()
		})
		reg.Register(domainRepos.ModeElevated, func(settings entities.EscalationSettings) domainRepos.SourcesWriter {
			return elevated.NewElevatedWriter(settings)
		})
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.AccessChecker {
		return filesystem.NewAccessChecker()
	}); err != nil {
		return err
	}

	return nil
}
