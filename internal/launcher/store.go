package launcher

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/banter-mcp/banterctl/internal/paths"
	"github.com/banter-mcp/banterctl/pkg/fileutil"
)

// Store reads and writes the launcher configuration at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store bound to the given config file path.
// If path is empty, the default per-user location is used.
func NewStore(path string) *Store {
	if path == "" {
		path = paths.LauncherConfigPath()
	}
	return &Store{path: path}
}

// Path returns the config file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the launcher configuration from disk.
// When the file does not exist it returns DefaultConfig without creating
// the file. Unreadable files surface an I/O error, invalid JSON a parse
// error.
func (s *Store) Load() (*LauncherConfig, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := fileutil.ReadFileWithLimit(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "reading launcher config")
	}

	var cfg LauncherConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing launcher config")
	}
	if cfg.Channels == nil {
		cfg.Channels = []ProjectChannel{}
	}

	return &cfg, nil
}

// Save serializes cfg as pretty-printed JSON and overwrites the config
// file, creating the parent directory if absent. The whole document is
// replaced; the last writer wins.
func (s *Store) Save(cfg *LauncherConfig) error {
	dir := filepath.Dir(s.path)
	if err := paths.EnsureDir(dir, 0); err != nil {
		return errors.Wrapf(err, "creating config directory %s", dir)
	}

	return errors.Wrap(fileutil.AtomicWriteJSON(s.path, cfg), "writing launcher config")
}
