package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	domainRepos "github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// WriterRegistry manages the writer implementation of every write mode.
type WriterRegistry struct {
	writers map[domainRepos.WriteMode]domainRepos.SourcesWriterFactory
}

// NewWriterRegistry creates an empty writer registry.
func NewWriterRegistry() *WriterRegistry {
	return &WriterRegistry{
		writers: make(map[domainRepos.WriteMode]domainRepos.SourcesWriterFactory),
	}
}

// Register adds a writer factory under the given mode (e.g. "elevated").
func (r *WriterRegistry) Register(mode domainRepos.WriteMode, factory domainRepos.SourcesWriterFactory) {
	r.writers[mode] = factory
}

// Get returns a writer for the given mode, configured with the escalation settings.
func (r *WriterRegistry) Get(
	mode domainRepos.WriteMode,
	settings entities.EscalationSettings,
) (domainRepos.SourcesWriter, error) {
	factory, ok := r.writers[mode]
	if !ok {
		return nil, fmt.Errorf("no writer registered for mode %q", mode)
	}
	return factory(settings), nil
}

// Modes returns the registered write modes in lexical order.
func (r *WriterRegistry) Modes() []domainRepos.WriteMode {
	modes := make([]domainRepos.WriteMode, 0, len(r.writers))
	for mode := range r.writers {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}
