package jsonl

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/kyle-silver/lear"
)

//go:embed scenes/*.jsonl
var embedded embed.FS

// Compile-time interface verification.
var _ lear.SceneStore = (*Store)(nil)

// Store holds every scene of the play, loaded once. It is read-only after
// construction and safe for concurrent use.
type Store struct {
	scenes []lear.Scene
}

// NewStore loads the scenes embedded in the binary.
func NewStore() (*Store, error) {
	sub, err := fs.Sub(embedded, "scenes")
	if err != nil {
		return nil, &lear.DataLoadError{Path: "scenes", Err: err}
	}
	return NewStoreFS(sub)
}

// NewStoreFS loads one file per scene from the root of fsys, named by the
// scene's position in the play: 01.jsonl through 26.jsonl.
func NewStoreFS(fsys fs.FS) (*Store, error) {
	if err := lear.ValidateContents(lear.Contents, lear.Catalog); err != nil {
		return nil, &lear.DataLoadError{Path: "contents", Err: err}
	}

	loader, err := NewLoader()
	if err != nil {
		return nil, &lear.DataLoadError{Path: "schema.json", Err: err}
	}

	scenes := make([]lear.Scene, 0, len(lear.Catalog))
	for i, info := range lear.Catalog {
		scene, err := loader.Load(fsys, FileName(i), info.Act, info.Scene)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, *scene)
	}
	return &Store{scenes: scenes}, nil
}

// FileName returns the file name of the scene at flat index i.
func FileName(i int) string {
	return fmt.Sprintf("%02d.jsonl", i+1)
}

// Resolve returns the scene at the given act and scene numbers.
func (s *Store) Resolve(act, scene int) (*lear.Scene, error) {
	i, err := lear.SceneIndex(act, scene)
	if err != nil {
		return nil, err
	}
	return &s.scenes[i], nil
}

// RandomScene returns a scene chosen uniformly from the whole play.
func (s *Store) RandomScene(r lear.Rand) (*lear.Scene, error) {
	return &s.scenes[r.IntN(len(s.scenes))], nil
}

// Len returns the number of scenes in the store.
func (s *Store) Len() int {
	return len(s.scenes)
}
