package repository_test

import (
	"path/filepath"
	"testing"

	"gasvision/internal/config"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{
		"STORE_DRIVER": config.StoreSQLite,
		"SQLITE_PATH":  filepath.Join(t.TempDir(), "gasvision.db"),
	})
	require.NoError(t, err)
	return cfg
}
