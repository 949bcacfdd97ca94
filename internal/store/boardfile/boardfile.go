// Package boardfile reads and writes boards and gesture scripts as JSON or
// YAML. It is an explicit import/export format; nothing here runs on its own.
package boardfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/model"
)

// Format of a board or script file.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat accepts json, yaml and yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%s: no extension: %w", path, ErrUnknownFormat)
	}
	return ParseFormat(ext)
}

type fileItem struct {
	ID    model.ID `json:"id,omitempty" yaml:"id,omitempty"`
	Title string   `json:"title" yaml:"title"`
}

type fileContainer struct {
	ID          model.ID   `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []fileItem `json:"items" yaml:"items"`
}

type fileBoard struct {
	Containers []fileContainer `json:"containers" yaml:"containers"`
}

// Load reads a board file. A missing file yields an empty board, the same
// way a fresh checkout has no data yet.
func Load(path string) (*board.Board, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return board.Empty(), nil
		}
		return nil, fmt.Errorf("open board: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Save writes b to path in the format implied by its extension.
func Save(path string, b *board.Board) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, b, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write board file: %w", err)
	}
	return nil
}

// Decode parses a board. Entries without an id get a fresh one.
func Decode(r io.Reader, format Format) (*board.Board, error) {
	var fb fileBoard
	if err := decode(r, format, &fb); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	cs := make([]model.Container, 0, len(fb.Containers))
	for _, fc := range fb.Containers {
		c := model.Container{
			ID:          fc.ID,
			Title:       fc.Title,
			Description: fc.Description,
			Items:       make([]model.Item, 0, len(fc.Items)),
		}
		if c.ID == "" {
			c.ID = model.NewContainerID()
		}
		for _, fi := range fc.Items {
			it := model.Item{ID: fi.ID, Title: fi.Title}
			if it.ID == "" {
				it.ID = model.NewItemID()
			}
			c.Items = append(c.Items, it)
		}
		cs = append(cs, c)
	}
	b, err := board.New(cs...)
	if err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	return b, nil
}

// Encode writes b with ids included.
func Encode(w io.Writer, b *board.Board, format Format) error {
	fb := fileBoard{Containers: []fileContainer{}}
	for _, c := range b.Containers() {
		fc := fileContainer{ID: c.ID, Title: c.Title, Description: c.Description, Items: []fileItem{}}
		for _, it := range c.Items {
			fc.Items = append(fc.Items, fileItem{ID: it.ID, Title: it.Title})
		}
		fb.Containers = append(fb.Containers, fc)
	}
	if err := encode(w, format, fb); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return nil
}

func decode(r io.Reader, format Format, v any) error {
	switch format {
	case JSON:
		return json.NewDecoder(r).Decode(v)
	case YAML:
		err := yaml.NewDecoder(r).Decode(v)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}
