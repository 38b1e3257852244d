package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSourcesDir = "/etc/apt"
	DefaultHelper     = "pkexec"
	DefaultShell      = "bash"
	DefaultWriteMode  = "auto"

	mainListName = "sources.list"
	listDirName  = "sources.list.d"
)

// Settings is the top-level configuration for aptsources.
type Settings struct {
	SourcesDir string             `yaml:"sources_dir"`
	WriteMode  string             `yaml:"write_mode"`
	Escalation EscalationSettings `yaml:"escalation"`
}

// EscalationSettings configures the privileged helper used for elevated writes.
type EscalationSettings struct {
	Helper          string `yaml:"helper"`
	Shell           string `yaml:"shell"`
	CheckExitStatus bool   `yaml:"check_exit_status"`
	Quote           bool   `yaml:"quote"` // single-quote payload and path in the shell snippet
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// writeModes lists the accepted values of write_mode.
var writeModes = map[string]bool{"auto": true, "overwrite": true, "elevated": true, "path": true}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		SourcesDir: DefaultSourcesDir,
		WriteMode:  DefaultWriteMode,
		Escalation: EscalationSettings{
			Helper:          DefaultHelper,
			Shell:           DefaultShell,
			CheckExitStatus: true,
		},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variable references.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.SourcesDir = expandEnv(settings.SourcesDir)
	settings.Escalation.Helper = expandEnv(settings.Escalation.Helper)
	settings.Escalation.Shell = expandEnv(settings.Escalation.Shell)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}
	locations = append(locations, "/etc/aptsources")

	patterns := []string{
		".aptsources.yaml",
		".aptsources.yml",
		"aptsources.yaml",
		"aptsources.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks for required configuration values.
func (it *Settings) Validate() error {
	if it.SourcesDir == "" {
		return errors.New("sources_dir is required")
	}
	if !writeModes[it.WriteMode] {
		return fmt.Errorf("write_mode %q is not one of auto, overwrite, elevated, path", it.WriteMode)
	}
	if it.Escalation.Helper == "" {
		return errors.New("escalation.helper is required")
	}
	if it.Escalation.Shell == "" {
		return errors.New("escalation.shell is required")
	}
	return nil
}

// MainListPath returns the path of the main sources.list file.
func (it *Settings) MainListPath() string {
	return filepath.Join(it.SourcesDir, mainListName)
}

// ListDir returns the directory holding the drop-in .list files.
func (it *Settings) ListDir() string {
	return filepath.Join(it.SourcesDir, listDirName)
}

// ListPath resolves a file reference to a path. References containing a
// separator are paths; bare names such as "docker" or "docker.list" map to a
// drop-in file, except "sources" which is the main list.
func (it *Settings) ListPath(file string) string {
	if filepath.Base(file) != file {
		return file
	}
	name := OriginName(file)
	if name == OriginName(mainListName) {
		return it.MainListPath()
	}
	return filepath.Join(it.ListDir(), name+listExtension)
}

// expandEnv expands ${VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
