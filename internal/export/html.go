package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/shapealbum/internal/album"
	"github.com/san-kum/shapealbum/internal/config"
)

// HTML writes the whole album as one HTML document: one visual block
// per snapshot, each holding its SVG rendering.
func HTML(w io.Writer, snapshots []*album.Snapshot, cfg *config.Config) error {
	if _, err := fmt.Fprint(w, "<!DOCTYPE html>\n<html><head><title>Shape Album</title></head><body>\n"); err != nil {
		return err
	}
	for _, snap := range snapshots {
		if _, err := fmt.Fprintf(w, "<div class=\"snapshot\" id=\"%s\">\n", snap.ID()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, SnapshotToSVG(snap, cfg)); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "</div>\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "</body></html>\n")
	return err
}

// WriteHTMLFile writes the album to path, which must end in .html.
func WriteHTMLFile(path string, snapshots []*album.Snapshot, cfg *config.Config) error {
	if !strings.HasSuffix(path, ".html") {
		return fmt.Errorf("html output path must end with .html, got %q", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html output: %w", err)
	}
	if err := HTML(f, snapshots, cfg); err != nil {
		f.Close()
		return fmt.Errorf("write html output: %w", err)
	}
	return f.Close()
}
