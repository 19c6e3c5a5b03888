package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PrimaryCredentials(t *testing.T) {
	t.Setenv(EnvCredentials, " key-a, key-b ,, key-c ")
	t.Setenv(EnvCredentialsLegacy, "")
	t.Setenv(EnvModels, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"key-a", "key-b", "key-c"}, cfg.Credentials)
	assert.Equal(t, DefaultModels(), cfg.Models)
}

func TestLoad_LegacyCredentialsFallback(t *testing.T) {
	t.Setenv(EnvCredentials, "")
	t.Setenv(EnvCredentialsLegacy, "legacy-key")
	t.Setenv(EnvModels, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy-key"}, cfg.Credentials)
}

func TestLoad_PrimaryWinsOverLegacy(t *testing.T) {
	t.Setenv(EnvCredentials, "primary-key")
	t.Setenv(EnvCredentialsLegacy, "legacy-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"primary-key"}, cfg.Credentials)
}

func TestLoad_NoCredentials(t *testing.T) {
	t.Setenv(EnvCredentials, "")
	t.Setenv(EnvCredentialsLegacy, "  , ,")

	_, err := Load()
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestLoad_ModelOverride(t *testing.T) {
	t.Setenv(EnvCredentials, "key")
	t.Setenv(EnvModels, "model-x , model-y")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"model-x", "model-y"}, cfg.Models)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "a", []string{"a"}},
		{"trims and drops empties", " a ,, b ,", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.value))
		})
	}
}
