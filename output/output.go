// Package output opens render destinations.  Names of the form
// gs://bucket/object go to Google Cloud Storage; anything else is a local
// path.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
)

const gcsScheme = "gs://"

// ParseGCS splits a gs://bucket/object name.  ok is false for anything that
// is not a well-formed GCS name.
func ParseGCS(name string) (bucket, object string, ok bool) {
	if !strings.HasPrefix(name, gcsScheme) {
		return "", "", false
	}

	rest := strings.TrimPrefix(name, gcsScheme)
	slash := strings.Index(rest, "/")
	if slash <= 0 || slash == len(rest)-1 {
		return "", "", false
	}

	return rest[:slash], rest[slash+1:], true
}

// Create opens name for writing, truncating any existing local file.  The
// object or file is only complete once Close returns nil.
func Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if strings.HasPrefix(name, gcsScheme) {
		bucket, object, ok := ParseGCS(name)
		if !ok {
			return nil, fmt.Errorf("malformed GCS name %q, want gs://bucket/object", name)
		}
		return createGCS(ctx, bucket, object)
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("while opening output file: %w", err)
	}
	return f, nil
}

// gcsWriter owns the client so that closing the object also releases it.
type gcsWriter struct {
	*storage.Writer
	client *storage.Client
}

func (w *gcsWriter) Close() error {
	werr := w.Writer.Close()
	cerr := w.client.Close()
	if werr != nil {
		return fmt.Errorf("while finalizing GCS object: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("while closing GCS client: %w", cerr)
	}
	return nil
}

func createGCS(ctx context.Context, bucket, object string) (io.WriteCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("while creating GCS client: %w", err)
	}

	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType(object)

	return &gcsWriter{Writer: w, client: client}, nil
}

func contentType(object string) string {
	if strings.HasSuffix(object, ".ppm") {
		return "image/x-portable-pixmap"
	}
	return "application/octet-stream"
}
