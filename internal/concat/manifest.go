package concat

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// WriteManifest writes the concat demuxer input list: one line per source of
// the form
//
//	file '<path>'
//
// Embedded single quotes are escaped as '\'' so ffmpeg's manifest parser
// accepts the literal path. The escaping must stay exactly in this form.
func WriteManifest(w io.Writer, sources []string) error {
	for _, src := range sources {
		escaped := strings.ReplaceAll(src, `'`, `'\''`)
		if _, err := fmt.Fprintf(w, "file '%s'\n", escaped); err != nil {
			return err
		}
	}
	return nil
}

// createManifest writes the manifest for sources into dir under a unique
// name and returns its path. On any write error the partial file is removed.
func createManifest(dir string, sources []string) (string, error) {
	path := filepath.Join(dir, "mp3weld-"+uuid.NewString()+".txt")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteManifest(f, sources); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
