// Package storage persists store slices as JSON files.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/bobmcallan/stb/internal/common"
	"github.com/bobmcallan/stb/internal/interfaces"
)

// ErrUnknownSlice is returned for a slice name with no registered codec.
var ErrUnknownSlice = errors.New("unknown state slice")

// FileStore keeps one JSON file per store slice, with optional versioned backups.
type FileStore struct {
	basePath string
	versions int
	logger   *common.Logger
}

var _ interfaces.SliceStore = (*FileStore)(nil)

// NewFileStore creates a FileStore and ensures the base directory exists.
func NewFileStore(logger *common.Logger, config *common.StorageConfig) (*FileStore, error) {
	versions := config.Versions
	if versions < 0 {
		versions = 0
	}

	fs := &FileStore{
		basePath: config.Path,
		versions: versions,
		logger:   logger,
	}

	if err := os.MkdirAll(fs.basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", fs.basePath, err)
	}

	logger.Debug().Str("path", config.Path).Int("versions", versions).Msg("FileStore opened")
	return fs, nil
}

// Load applies every persisted slice to the writer. Missing files are skipped.
func (fs *FileStore) Load(ctx context.Context, w interfaces.StateWriter) error {
	loaded := 0
	for _, name := range Slices() {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := fs.readFile(name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}

		if _, err := Apply(name, data, w); err != nil {
			return fmt.Errorf("failed to load %s: %w", fs.filePath(name), err)
		}
		loaded++
	}

	fs.logger.Info().Str("path", fs.basePath).Int("slices", loaded).Msg("State loaded")
	return nil
}

// Save persists one slice atomically.
func (fs *FileStore) Save(ctx context.Context, slice string, value interface{}) error {
	if _, ok := codecs[slice]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSlice, slice)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fs.writeJSON(slice, value); err != nil {
		return err
	}
	fs.logger.Debug().Str("slice", slice).Msg("State slice saved")
	return nil
}

// sanitizeKey makes a key safe for use as a filename.
// Replaces /, \, : with _ and collapses ".." to "_" to prevent path traversal.
func (fs *FileStore) sanitizeKey(key string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	return r.Replace(key)
}

func (fs *FileStore) filePath(key string) string {
	return filepath.Join(fs.basePath, fs.sanitizeKey(key)+".json")
}

func (fs *FileStore) readFile(key string) ([]byte, error) {
	path := fs.filePath(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("'%s' is empty", key)
	}
	return data, nil
}

// writeJSON marshals data to indented JSON and writes it atomically,
// rotating previous versions first.
func (fs *FileStore) writeJSON(key string, data interface{}) error {
	target := fs.filePath(key)

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonData = append(jsonData, '\n')

	if fs.versions > 0 {
		fs.rotateVersions(target)
	}

	// Atomic write: write to temp file in the same directory, then rename
	tmpFile, err := os.CreateTemp(fs.basePath, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(jsonData); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// rotateVersions shifts existing backups up and moves the current file to v1.
// v{N} -> deleted, v{N-1} -> v{N}, ..., current -> v1
func (fs *FileStore) rotateVersions(target string) {
	os.Remove(fmt.Sprintf("%s.v%d", target, fs.versions))

	for i := fs.versions; i > 1; i-- {
		src := fmt.Sprintf("%s.v%d", target, i-1)
		dst := fmt.Sprintf("%s.v%d", target, i)
		os.Rename(src, dst) // may not exist yet
	}

	if _, err := os.Stat(target); err == nil {
		os.Rename(target, target+".v1")
	}
}
