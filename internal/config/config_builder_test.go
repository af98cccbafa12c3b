package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "from-env", TokenIssuer: "issuer-env"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer-flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value per field
	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer-env", cfg.App.TokenIssuer)
}

func TestStructuredConfig_Validate_RequiresSignKeyForHTTP(t *testing.T) {
	cfg := &StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg.App.TokenSignKey = "k"
	assert.NoError(t, cfg.validate())
}

func TestStructuredConfig_Validate_ThresholdRange(t *testing.T) {
	cfg := &StructuredConfig{Capture: Capture{WasteLevelThreshold: 101}}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidCaptureConfigs)

	cfg.Capture.WasteLevelThreshold = 80
	assert.NoError(t, cfg.validate())
}

func TestConsoleConfig_Validate(t *testing.T) {
	cfg := &ConsoleConfig{}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidConsoleConfigs)
}
