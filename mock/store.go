package mock

import "github.com/kyle-silver/lear"

// Compile-time interface verification.
var (
	_ lear.SceneStore = (*SceneStore)(nil)
	_ lear.SceneSaver = (*SceneSaver)(nil)
)

// SceneStore is a mock implementation of lear.SceneStore.
type SceneStore struct {
	ResolveFn     func(act, scene int) (*lear.Scene, error)
	RandomSceneFn func(r lear.Rand) (*lear.Scene, error)
}

func (s *SceneStore) Resolve(act, scene int) (*lear.Scene, error) {
	return s.ResolveFn(act, scene)
}

func (s *SceneStore) RandomScene(r lear.Rand) (*lear.Scene, error) {
	return s.RandomSceneFn(r)
}

// SceneSaver is a mock implementation of lear.SceneSaver.
type SceneSaver struct {
	SaveFn func(dir string, scene lear.Scene) error
}

func (s *SceneSaver) Save(dir string, scene lear.Scene) error {
	return s.SaveFn(dir, scene)
}
