package bcbioconf

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// MaybeOpenFromGoogleStorage opens a local path directly, or a gs:// URL via
// the given storage client with default credentials. The client may be nil
// when the path is local.
func MaybeOpenFromGoogleStorage(path string, client *storage.Client) (io.ReadCloser, error) {
	if strings.HasPrefix(path, "gs://") {
		handle, err := gsObjectHandle(path, client)
		if err != nil {
			return nil, err
		}

		rdr, err := handle.NewReader(context.Background())
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return rdr, nil
	}

	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// gsObjectHandle splits a gs:// URL into its bucket and object parts and
// returns a handle for it.
func gsObjectHandle(path string, client *storage.Client) (*storage.ObjectHandle, error) {
	if client == nil {
		return nil, pfx.Err(fmt.Errorf("%s: no google storage client configured", path))
	}

	// Detect the bucket and the path to the actual file
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 {
		return nil, fmt.Errorf("tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
	}
	bucketName := pathParts[0]
	pathName := pathParts[1]

	return client.Bucket(bucketName).Object(pathName), nil
}
