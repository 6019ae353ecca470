// Package tag writes ID3v2 metadata onto merged output files. The merged
// file inherits no tag of its own from the concat demuxer beyond whatever
// the first part carried, so a title matching the group key keeps players
// from showing "Part 01" for the whole work.
package tag

import (
	"fmt"

	"github.com/bogem/id3v2"
)

// Apply sets TIT2 (title) and TALB (album) on the MP3 at path, preserving
// any frames already present.
func Apply(path, title, album string) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag: %w", err)
	}
	defer t.Close()

	t.SetDefaultEncoding(id3v2.EncodingUTF8)
	t.SetTitle(title)
	if album != "" {
		t.SetAlbum(album)
	}

	if err := t.Save(); err != nil {
		return fmt.Errorf("save tag: %w", err)
	}
	return nil
}
