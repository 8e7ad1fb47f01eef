package launcher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// SceneExt is the file extension of Unity scene files.
const SceneExt = ".unity"

// assetsDirName is the directory Unity keeps all project content under.
// Its parent is the project root.
const assetsDirName = "Assets"

// Sentinel errors for channel construction.
var (
	// ErrSceneNotFound indicates the scene file does not exist on disk.
	ErrSceneNotFound = errors.New("scene file does not exist")

	// ErrNotSceneFile indicates the file is not a .unity scene.
	ErrNotSceneFile = errors.New("not a valid Unity scene file (must be .unity)")

	// ErrNoAssetsDir indicates no ancestor directory named Assets was found.
	ErrNoAssetsDir = errors.New("could not find Unity project root (no Assets folder in path)")
)

// NewChannel builds a ProjectChannel from a user-selected scene file.
//
// The scene must exist, carry the .unity extension, and live under a
// directory named Assets; the project root is that directory's parent.
// The returned channel is not persisted — the caller appends it to a
// LauncherConfig and saves.
func NewChannel(name, scenePath string) (*ProjectChannel, error) {
	if _, err := os.Stat(scenePath); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSceneNotFound, "%s", scenePath)
		}
		return nil, errors.Wrap(err, "checking scene file")
	}

	if filepath.Ext(scenePath) != SceneExt {
		return nil, errors.Wrapf(ErrNotSceneFile, "%s", scenePath)
	}

	projectPath, err := projectRoot(scenePath)
	if err != nil {
		return nil, err
	}

	return &ProjectChannel{
		ID:               uuid.NewString(),
		Name:             name,
		UnityProjectPath: projectPath,
		ScenePath:        scenePath,
		Enabled:          true,
	}, nil
}

// projectRoot walks the scene path's ancestor directories looking for one
// literally named Assets and returns its parent. The walk stops at the
// filesystem root.
func projectRoot(scenePath string) (string, error) {
	dir := filepath.Dir(scenePath)
	for {
		if filepath.Base(dir) == assetsDirName {
			return filepath.Dir(dir), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Wrapf(ErrNoAssetsDir, "%s", scenePath)
		}
		dir = parent
	}
}

// ValidateScene reports whether path looks like a usable Unity scene:
// it exists, has the .unity extension, and its separator-normalized
// string contains the literal substring "/Assets/".
//
// The substring check is a heuristic over the path string, not a
// path-segment match; unusual directory naming can produce false
// positives or negatives. Validation failures are reported as false,
// never as an error.
func ValidateScene(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}

	if filepath.Ext(path) != SceneExt {
		return false
	}

	normalized := strings.ReplaceAll(path, "\\", "/")
	return strings.Contains(normalized, "/"+assetsDirName+"/")
}
