package aesfd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsECBLegacy(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, ModeECB, cfg.Mode)
	require.Equal(t, SyndromeConventionLegacy, cfg.SyndromeConvention())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "mode: ctr\nsyndrome_convention: textbook\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ModeCTR, cfg.Mode)
	require.Equal(t, SyndromeConventionTextbook, cfg.SyndromeConvention())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFileErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsUnsupportedMode(t *testing.T) {
	cfg := EngineConfig{Mode: Mode("ofb")}
	require.Error(t, cfg.Validate())
}

func TestSyndromeConventionDefaultsToLegacyOnUnrecognisedName(t *testing.T) {
	cfg := EngineConfig{Convention: "nonsense"}
	require.Equal(t, SyndromeConventionLegacy, cfg.SyndromeConvention())
}
