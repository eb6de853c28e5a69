package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volfade/volfade/internal/volume"
)

func TestResolve(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name  string
		paths Paths
		want  string
	}{
		{
			name:  "override wins",
			paths: Paths{Override: filepath.Join(tmp, "custom"), XDGCacheHome: filepath.Join(tmp, "xdg"), Home: filepath.Join(tmp, "home")},
			want:  filepath.Join(tmp, "custom", FileName),
		},
		{
			name:  "xdg cache home",
			paths: Paths{XDGCacheHome: filepath.Join(tmp, "xdg"), Home: filepath.Join(tmp, "home")},
			want:  filepath.Join(tmp, "xdg", AppDir, FileName),
		},
		{
			name:  "home dot cache",
			paths: Paths{Home: filepath.Join(tmp, "home")},
			want:  filepath.Join(tmp, "home", ".cache", AppDir, FileName),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.paths)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.DirExists(t, filepath.Dir(got))
		})
	}
}

func TestResolveWithoutHome(t *testing.T) {
	_, err := Resolve(Paths{TempDir: t.TempDir()})
	require.ErrorIs(t, err, ErrNoHome)
}

func TestResolveFallsBackToTempDir(t *testing.T) {
	tmp := t.TempDir()
	// A regular file where the cache root should be makes MkdirAll fail.
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	fallback := filepath.Join(tmp, "tmp")

	got, err := Resolve(Paths{XDGCacheHome: blocker, TempDir: fallback})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fallback, AppDir, FileName), got)
}

func TestQueryDefaultsWhenAbsent(t *testing.T) {
	c, err := New(Paths{XDGCacheHome: t.TempDir()})
	require.NoError(t, err)

	assert.False(t, c.Exists())
	assert.Equal(t, volume.Default, c.Query())
}

func TestSaveQueryRoundTrip(t *testing.T) {
	c, err := New(Paths{XDGCacheHome: t.TempDir()})
	require.NoError(t, err)

	for _, v := range []volume.Volume{1, volume.Norm / 2, volume.Norm, volume.Max, 0xffffffff} {
		require.NoError(t, c.Save(v))
		assert.Equal(t, v, c.Query())
	}
	assert.True(t, c.Exists())
}

func TestSaveWritesLittleEndianRecord(t *testing.T) {
	c, err := New(Paths{XDGCacheHome: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, c.Save(volume.Volume(0x01020304)))
	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, data)
}

func TestQueryMalformedRecord(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "empty", content: []byte{}},
		{name: "too short", content: []byte{1, 2}},
		{name: "too long", content: []byte{1, 2, 3, 4, 5}},
		{name: "legacy text record", content: []byte("32768\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, tt.content, 0644))
			assert.Equal(t, volume.Default, NewAt(path).Query())
		})
	}
}

func TestQueryUnreadableRecord(t *testing.T) {
	// A directory in place of the record cannot be read as a file.
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.Mkdir(path, 0755))
	assert.Equal(t, volume.Default, NewAt(path).Query())
	assert.False(t, NewAt(path).Exists())
}

func TestLastWriteWins(t *testing.T) {
	c, err := New(Paths{Override: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, c.Save(volume.Norm/2))
	require.NoError(t, c.Save(volume.Norm/3))
	assert.Equal(t, volume.Norm/3, c.Query())
}
