package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	valid := DomainConfig{
		Name:          "flows",
		File:          "flows.csv",
		SearchColumns: []string{"Flow Name"},
		OutputColumns: []string{"Flow Name", "Use Case"},
	}

	t.Run("valid configuration", func(t *testing.T) {
		registry, err := NewRegistry([]DomainConfig{valid})
		require.NoError(t, err)
		assert.Equal(t, 1, registry.Len())

		config, ok := registry.Lookup("flows")
		require.True(t, ok)
		assert.Equal(t, "flows.csv", config.File)
	})

	t.Run("no domains", func(t *testing.T) {
		_, err := NewRegistry(nil)
		assert.ErrorIs(t, err, ErrInvalidRegistry)
	})

	t.Run("missing name", func(t *testing.T) {
		config := valid
		config.Name = ""
		_, err := NewRegistry([]DomainConfig{config})
		assert.ErrorIs(t, err, ErrInvalidRegistry)
	})

	t.Run("missing file", func(t *testing.T) {
		config := valid
		config.File = ""
		_, err := NewRegistry([]DomainConfig{config})
		assert.ErrorIs(t, err, ErrInvalidRegistry)
	})

	t.Run("missing search columns", func(t *testing.T) {
		config := valid
		config.SearchColumns = nil
		_, err := NewRegistry([]DomainConfig{config})
		assert.ErrorIs(t, err, ErrInvalidRegistry)
	})

	t.Run("duplicate names", func(t *testing.T) {
		_, err := NewRegistry([]DomainConfig{valid, valid})
		assert.ErrorIs(t, err, ErrInvalidRegistry)
	})

	t.Run("unknown lookup", func(t *testing.T) {
		registry, err := NewRegistry([]DomainConfig{valid})
		require.NoError(t, err)
		_, ok := registry.Lookup("nope")
		assert.False(t, ok)
	})
}

func TestLoadRegistry(t *testing.T) {
	const yaml = `
domains:
  - name: flows
    file: flows.csv
    search_columns: [Flow Name, Use Case]
    output_columns: [Flow Name, Use Case, Security Level]
    keywords: [pkce, flow]
  - name: guides
    file: guides.csv
    search_columns: [Guideline]
    output_columns: [Stack, Guideline]
    stack_column: Stack
    keywords: [password]
`

	registry, err := LoadRegistry(strings.NewReader(yaml))
	require.NoError(t, err)

	// Registration order is preserved from the file.
	assert.Equal(t, []string{"flows", "guides"}, registry.Names())

	flows, ok := registry.Lookup("flows")
	require.True(t, ok)
	assert.Equal(t, []string{"Flow Name", "Use Case"}, flows.SearchColumns)
	assert.Empty(t, flows.StackColumn)

	guides, ok := registry.Lookup("guides")
	require.True(t, ok)
	assert.Equal(t, "Stack", guides.StackColumn)
	assert.Equal(t, []string{"password"}, guides.Keywords)
}

func TestLoadRegistry_Malformed(t *testing.T) {
	_, err := LoadRegistry(strings.NewReader("domains: [this is not: valid"))
	assert.ErrorIs(t, err, ErrInvalidRegistry)
}

func TestDefaultRegistry(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"auth-methods",
		"oauth2-flows",
		"jwt-claims",
		"security-headers",
		"oidc-providers",
		"security-rules",
		"stack-guidelines",
	}, registry.Names())

	// Every registered dataset is loadable from the embedded FS.
	loader := NewLoader(DefaultFS())
	for _, domain := range registry.Domains() {
		records, err := loader.Load(&domain)
		require.NoError(t, err, "domain %s", domain.Name)
		assert.NotEmpty(t, records, "domain %s", domain.Name)
	}
}
