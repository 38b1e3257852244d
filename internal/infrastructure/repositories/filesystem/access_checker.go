package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// AccessChecker probes write permission with access(2), using the real uid/gid.
type AccessChecker struct{}

var _ repositories.AccessChecker = (*AccessChecker)(nil)

// NewAccessChecker creates an AccessChecker.
func NewAccessChecker() *AccessChecker {
	return &AccessChecker{}
}

// Writable reports whether path can be written. For a path that does not exist
// yet, the parent directory must allow creating entries.
func (it *AccessChecker) Writable(path string) bool {
	err := unix.Access(path, unix.W_OK)
	if err == nil {
		return true
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false
	}
	return unix.Access(filepath.Dir(path), unix.W_OK|unix.X_OK) == nil
}
