// config.go - engine configuration, loadable from a YAML file. Holds the
// mode and syndrome-convention selection used by the CLI; the key size is
// not configured here and follows from the length of the key itself.
package aesfd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode names one of the three cipher modes a Context can drive.
type Mode string

const (
	ModeECB Mode = "ecb"
	ModeCBC Mode = "cbc"
	ModeCTR Mode = "ctr"
)

// EngineConfig is the declarative shape a caller supplies to stand up a
// Context: which mode, which syndrome reading the corrector should use, and
// a log level name. It has no key-size field; NewContext picks the variant
// from len(key).
type EngineConfig struct {
	Mode       Mode   `yaml:"mode"`
	Convention string `yaml:"syndrome_convention"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns the engine's baseline configuration: ECB mode,
// the legacy syndrome convention (matching original_source/aes.c), warn
// level logging.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		Mode:       ModeECB,
		Convention: "legacy",
		LogLevel:   "warn",
	}
}

// LoadConfig reads an EngineConfig from a YAML file at path, falling back
// to DefaultConfig for any field left unset.
func LoadConfig(path string) (EngineConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("aesfd: reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("aesfd: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// SyndromeConvention resolves the configured convention name to the
// hamming.go enum value, defaulting to legacy on an unrecognised string.
func (c EngineConfig) SyndromeConvention() SyndromeConvention {
	if c.Convention == "textbook" {
		return SyndromeConventionTextbook
	}
	return SyndromeConventionLegacy
}

// Validate reports whether the config names a supported mode.
func (c EngineConfig) Validate() error {
	switch c.Mode {
	case ModeECB, ModeCBC, ModeCTR:
		return nil
	default:
		return fmt.Errorf("aesfd: unsupported mode %q", c.Mode)
	}
}
