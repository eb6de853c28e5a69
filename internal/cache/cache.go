// Package cache stores the volume a sink had before it was muted so that a
// later unmute can fade back to it.
package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/volfade/volfade/internal/colors"
	"github.com/volfade/volfade/internal/volume"
)

const (
	// AppDir is the per-application directory under the cache root.
	AppDir = "volfade"
	// FileName is the cache record file name.
	FileName = "previous_volume"

	recordSize = 4

	// FileModeDir is the permission for the cache directory.
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for the record file.
	FileModeFile os.FileMode = 0644
)

// ErrNoHome is returned when neither XDG_CACHE_HOME nor HOME is set and no
// override directory was configured.
var ErrNoHome = errors.New("cannot resolve cache directory: neither XDG_CACHE_HOME nor HOME is set")

// Paths holds everything needed to resolve the cache file location.
type Paths struct {
	// Override is a directory that holds the record directly (config cache_dir).
	Override string
	// XDGCacheHome is the value of $XDG_CACHE_HOME.
	XDGCacheHome string
	// Home is the value of $HOME.
	Home string
	// TempDir is used when the preferred directory cannot be created.
	TempDir string
}

// PathsFromEnv reads XDG_CACHE_HOME, HOME and the system temp dir.
func PathsFromEnv() Paths {
	return Paths{
		XDGCacheHome: os.Getenv("XDG_CACHE_HOME"),
		Home:         os.Getenv("HOME"),
		TempDir:      os.TempDir(),
	}
}

// Resolve returns the cache file path and creates its directory.
// Priority: Override, $XDG_CACHE_HOME/volfade, $HOME/.cache/volfade.
// If that directory cannot be created, <TempDir>/volfade is used instead.
func Resolve(p Paths) (string, error) {
	var dir string
	switch {
	case p.Override != "":
		dir = p.Override
	case p.XDGCacheHome != "":
		dir = filepath.Join(p.XDGCacheHome, AppDir)
	case p.Home != "":
		dir = filepath.Join(p.Home, ".cache", AppDir)
	default:
		return "", ErrNoHome
	}

	err := os.MkdirAll(dir, FileModeDir)
	if err == nil {
		return filepath.Join(dir, FileName), nil
	}
	if p.TempDir == "" {
		return "", fmt.Errorf("create cache directory %s: %w", dir, err)
	}
	colors.Debug(fmt.Sprintf("cache directory %s unavailable (%v), using temp dir", dir, err))

	fallback := filepath.Join(p.TempDir, AppDir)
	if ferr := os.MkdirAll(fallback, FileModeDir); ferr != nil {
		return "", fmt.Errorf("create cache directory %s: %w", fallback, ferr)
	}
	return filepath.Join(fallback, FileName), nil
}

// Cache is a single-slot store for the pre-mute volume.
type Cache struct {
	path string
}

// New resolves the cache location and returns a Cache bound to it.
func New(p Paths) (*Cache, error) {
	path, err := Resolve(p)
	if err != nil {
		return nil, err
	}
	return &Cache{path: path}, nil
}

// NewAt returns a Cache bound to an explicit file path.
func NewAt(path string) *Cache {
	return &Cache{path: path}
}

// Path returns the record file location.
func (c *Cache) Path() string {
	return c.path
}

// Save overwrites the record with v.
func (c *Cache) Save(v volume.Volume) error {
	var buf [recordSize]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, "."+FileName+".*")
	if err != nil {
		return fmt.Errorf("save previous volume: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf[:]); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save previous volume: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save previous volume: %w", err)
	}
	if err := os.Chmod(tmpName, FileModeFile); err != nil {
		colors.Debug(fmt.Sprintf("chmod %s: %v", tmpName, err))
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save previous volume: %w", err)
	}
	colors.StructuredDebug("cache", "save", "completed", nil, "", map[string]interface{}{"volume": uint32(v), "path": c.path})
	return nil
}

// Query returns the cached volume, or volume.Default when the record is
// missing, unreadable or not exactly four bytes.
func (c *Cache) Query() volume.Volume {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			colors.Debug(fmt.Sprintf("unable to read %s: %v", c.path, err))
		}
		return volume.Default
	}
	if len(data) != recordSize {
		colors.Debug(fmt.Sprintf("ignoring malformed cache record %s (%d bytes)", c.path, len(data)))
		return volume.Default
	}
	return volume.Volume(binary.LittleEndian.Uint32(data))
}

// Exists reports whether a record has been saved.
func (c *Cache) Exists() bool {
	info, err := os.Stat(c.path)
	return err == nil && info.Mode().IsRegular()
}
