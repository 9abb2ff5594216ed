// Package jsonl stores the play's scenes as JSONL files, one block per line.
package jsonl

import (
	"bufio"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/kyle-silver/lear"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var blockSchema []byte

// maxLineSize is the maximum size for a single JSONL line (1MB).
// The longest speech in the play is a few kilobytes.
const maxLineSize = 1024 * 1024

// Loader reads scene files and validates every block against the block
// schema.
type Loader struct {
	schema *gojsonschema.Schema
}

// NewLoader creates a new Loader.
func NewLoader() (*Loader, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(blockSchema))
	if err != nil {
		return nil, fmt.Errorf("compile block schema: %w", err)
	}
	return &Loader{schema: schema}, nil
}

// Load reads the scene file at path in fsys. act and scene are the
// coordinates every dialogue in the file must carry. Failures are returned
// as *lear.DataLoadError.
func (l *Loader) Load(fsys fs.FS, path string, act, scene int) (*lear.Scene, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &lear.DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	result := &lear.Scene{Act: act, Scene: scene}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		b, err := l.decode([]byte(line))
		if err != nil {
			return nil, &lear.DataLoadError{Path: path, Line: lineNum, Err: err}
		}
		if d := b.Dialogue; d != nil && (d.Act != act || d.Scene != scene) {
			return nil, &lear.DataLoadError{Path: path, Line: lineNum,
				Err: fmt.Errorf("dialogue belongs to %d.%d, want %d.%d", d.Act, d.Scene, act, scene)}
		}
		result.Blocks = append(result.Blocks, b)
	}

	if err := scanner.Err(); err != nil {
		return nil, &lear.DataLoadError{Path: path, Err: err}
	}
	if len(result.Blocks) == 0 {
		return nil, &lear.DataLoadError{Path: path, Err: errors.New("no blocks")}
	}

	return result, nil
}

func (l *Loader) decode(data []byte) (lear.Block, error) {
	res, err := l.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return lear.Block{}, err
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return lear.Block{}, fmt.Errorf("schema: %s", strings.Join(msgs, "; "))
	}

	var b lear.Block
	if err := json.Unmarshal(data, &b); err != nil {
		return lear.Block{}, err
	}
	if err := b.Validate(); err != nil {
		return lear.Block{}, err
	}
	return b, nil
}
