package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavHomeOverridesEverything(t *testing.T) {
	t.Setenv("NAV_HOME", "/opt/navhome")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	assert.Equal(t, "/opt/navhome/config/nav", ConfigDir())
	assert.Equal(t, "/opt/navhome/data/nav", DataDir())
	assert.Equal(t, "/opt/navhome/state/nav", StateDir())
}

func TestXDGEnvWins(t *testing.T) {
	t.Setenv("NAV_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, "/xdg/config/nav", ConfigDir())
	assert.Equal(t, "/xdg/data/nav", DataDir())
	assert.Equal(t, "/xdg/state/nav", StateDir())
}

func TestHomeFallback(t *testing.T) {
	t.Setenv("NAV_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "nav"), ConfigDir())
}

func TestEnsureDirs(t *testing.T) {
	t.Setenv("NAV_HOME", t.TempDir())

	require.NoError(t, EnsureDirs())
	for _, dir := range []string{ConfigDir(), DataDir(), StateDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := Expand("~/datasets/backlog.yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "datasets", "backlog.yml"), got)

	t.Setenv("NAV_TEST_DIR", "/srv/datasets")
	got, err = Expand("$NAV_TEST_DIR/backlog.yml")
	require.NoError(t, err)
	assert.Equal(t, "/srv/datasets/backlog.yml", got)
}
