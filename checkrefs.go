package bcbioconf

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
)

// CheckReferences verifies that every input file named by the configuration
// resolves to an existing object. Relative local paths are resolved against
// baseDir (typically the directory holding the config file). gs:// URLs are
// checked through the storage client, which may be nil if no entry uses one.
//
// Unlike schema validation this runs batch, not fail-fast: the returned
// *ReferenceError names every dangling path so a user can fix them all in one
// pass.
func (c *Config) CheckReferences(ctx context.Context, baseDir string, client *storage.Client) error {
	missing := []string{}

	for _, entry := range c.Details {
		for _, file := range entry.Files {
			if !referenceExists(ctx, file, baseDir, client) {
				missing = append(missing, file)
			}
		}
	}

	if len(missing) > 0 {
		return &ReferenceError{Missing: missing}
	}

	return nil
}

func referenceExists(ctx context.Context, path, baseDir string, client *storage.Client) bool {
	if strings.HasPrefix(path, "gs://") {
		handle, err := gsObjectHandle(path, client)
		if err != nil {
			return false
		}

		_, err = handle.Attrs(ctx)
		return err == nil
	}

	path = ExpandHome(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	_, err := os.Stat(path)
	return err == nil
}
