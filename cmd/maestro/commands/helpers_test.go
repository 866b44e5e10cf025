package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/maestro/internal/logging"
	"github.com/thoreinstein/maestro/internal/store"
)

const sampleConfig = `{
	"workspaces": [
		{
			"name": "api",
			"description": "Backend services",
			"workspace_path": "/src/api",
			"container_working_dir": "/workspace"
		},
		{
			"name": "web",
			"description": "Frontend",
			"workspace_path": "/src/web",
			"container_working_dir": null
		}
	]
}`

// testEnv is a temp directory with a store whose pointer file lives in it.
type testEnv struct {
	dir   string
	store *store.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Chdir(dir)
	return &testEnv{
		dir:   dir,
		store: store.New(filepath.Join(dir, store.DefaultPointerFile), store.WithLogger(logging.ForTest(t))),
	}
}

func (e *testEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// configured writes content as the user configuration and saves a pointer to it.
func (e *testEnv) configured(t *testing.T, content string) string {
	t.Helper()
	path := e.write(t, "workspaces.json", content)
	_, err := e.store.Save(path)
	require.NoError(t, err)
	return path
}
