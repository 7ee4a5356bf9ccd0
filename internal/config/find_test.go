package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/internal/config"
)

func TestFind(t *testing.T) {
	// /tmp/
	//   project/ (.jot.yaml)
	//     subdir/
	//       nested/
	//   empty/
	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "project")
	nestedDir := filepath.Join(projectDir, "subdir", "nested")
	emptyDir := filepath.Join(baseDir, "empty")

	require.NoError(t, os.MkdirAll(nestedDir, 0o755))
	require.NoError(t, os.MkdirAll(emptyDir, 0o755))
	want := filepath.Join(projectDir, config.FileName)
	require.NoError(t, os.WriteFile(want, []byte("color: false\n"), 0o644))

	tests := []struct {
		name      string
		startPath string
		want      string
		wantErr   bool
	}{
		{"at project root", projectDir, want, false},
		{"nested", nestedDir, want, false},
		{"outside", emptyDir, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.Find(tt.startPath)
			if tt.wantErr {
				// A stray .jot.yaml above the temp dir would make this flaky.
				if err == nil {
					t.Skipf("found unrelated config at %s", got)
				}
				assert.ErrorIs(t, err, config.ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
