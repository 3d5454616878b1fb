package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetProfile_CreatesConfig(t *testing.T) {
	rootCmd := newTestRootCmd(t)
	rootCmd.SetArgs([]string{"config", "set-profile", "--name", "staging", "--mappings", "/etc/nrql2dql/staging.yaml", "--output", "json"})
	restore := captureStdout(t)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, restore(), `Profile "staging" saved to`)

	cfg, err := LoadUserConfig()
	require.NoError(t, err)
	require.Contains(t, cfg.Profiles, "staging")
	assert.Equal(t, "/etc/nrql2dql/staging.yaml", cfg.Profiles["staging"].Mappings)
	assert.Equal(t, "json", cfg.Profiles["staging"].Output)
}

func TestConfigSetProfile_RejectsBadOutput(t *testing.T) {
	rootCmd := newTestRootCmd(t)
	rootCmd.SetArgs([]string{"config", "set-profile", "--name", "staging", "--output", "yaml"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestConfigUseProfile_SwitchesActive(t *testing.T) {
	rootCmd := newTestRootCmd(t)
	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "default",
		Profiles: map[string]Profile{
			"default": {},
			"staging": {Output: "json"},
		},
	}))

	rootCmd.SetArgs([]string{"config", "use-profile", "staging"})
	restore := captureStdout(t)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, restore(), `Active profile set to "staging"`)

	cfg, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.CurrentProfile)
}

func TestConfigUseProfile_UnknownProfile(t *testing.T) {
	rootCmd := newTestRootCmd(t)
	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "default",
		Profiles:       map[string]Profile{"default": {}},
	}))

	rootCmd.SetArgs([]string{"config", "use-profile", "missing"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `profile "missing" not found`)
}

func TestConfigShow_PrintsYAML(t *testing.T) {
	rootCmd := newTestRootCmd(t)
	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "default",
		Profiles: map[string]Profile{
			"default": {Mappings: "/etc/nrql2dql/overlay.yaml", Output: "table"},
		},
	}))

	rootCmd.SetArgs([]string{"config", "show"})
	restore := captureStdout(t)

	require.NoError(t, rootCmd.Execute())
	output := restore()

	assert.Contains(t, output, "current-profile: default")
	assert.Contains(t, output, "/etc/nrql2dql/overlay.yaml")
}

func TestConfigShow_NoConfigFile(t *testing.T) {
	rootCmd := newTestRootCmd(t)
	rootCmd.SetArgs([]string{"config", "show"})

	err := rootCmd.Execute()
	require.Error(t, err)
}
