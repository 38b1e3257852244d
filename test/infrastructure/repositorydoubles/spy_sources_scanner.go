//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// SpySourcesScanner implements repositories.SourcesScanner as a configurable spy.
type SpySourcesScanner struct {
	// --- Scan ---
	Files     []entities.SourceFile
	ScanErr   error
	ScanCalls int

	// spy: roots the factory was called with
	Roots []string
}

var _ repositories.SourcesScanner = (*SpySourcesScanner)(nil)

func (s *SpySourcesScanner) Scan(_ context.Context) ([]entities.SourceFile, error) {
	s.ScanCalls++
	return s.Files, s.ScanErr
}

// Factory returns a SourcesScannerFactory that records the root and yields the spy.
func (s *SpySourcesScanner) Factory() repositories.SourcesScannerFactory {
	return func(root string) repositories.SourcesScanner {
		s.Roots = append(s.Roots, root)
		return s
	}
}
