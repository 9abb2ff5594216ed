package jsonl

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kyle-silver/lear"
)

// Compile-time interface verification.
var _ lear.SceneSaver = (*Saver)(nil)

// Saver writes scenes in the layout NewStoreFS reads.
type Saver struct{}

// NewSaver creates a new Saver.
func NewSaver() *Saver {
	return &Saver{}
}

// Save writes scene to dir, creating dir if needed. The file name is derived
// from the scene's act and scene numbers.
func (s *Saver) Save(dir string, scene lear.Scene) error {
	i, err := lear.SceneIndex(scene.Act, scene.Scene)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, FileName(i)))
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, b := range scene.Blocks {
		data, err := json.Marshal(b)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	return f.Close()
}
