package lear

import "fmt"

// Work describes the play.
var Work = struct {
	Title        string
	Name         string
	Author       string
	Abbreviation string
}{
	Title:        "The Tragedie of",
	Name:         "KING LEAR",
	Author:       "William Shakespeare",
	Abbreviation: "Lr.",
}

// ActEntry locates an act's scenes in the flat scene array. Scenes are
// numbered 1..Scenes; scene s is stored at index Start+s-1.
type ActEntry struct {
	Start  int
	Scenes int
}

// Index returns the flat index of scene, or false if the act has no such
// scene.
func (e ActEntry) Index(scene int) (int, bool) {
	if scene < 1 || scene > e.Scenes {
		return 0, false
	}
	return e.Start + scene - 1, true
}

// Contents maps act numbers (index+1) to their scenes.
var Contents = []ActEntry{
	{Start: 0, Scenes: 5},
	{Start: 5, Scenes: 4},
	{Start: 9, Scenes: 7},
	{Start: 16, Scenes: 7},
	{Start: 23, Scenes: 3},
}

// SceneInfo is a catalog row: a scene and its length in the complete play.
type SceneInfo struct {
	Act   int
	Scene int
	Lines int
}

// Catalog lists every scene in play order.
var Catalog = []SceneInfo{
	{1, 1, 332}, {1, 2, 191}, {1, 3, 27}, {1, 4, 352}, {1, 5, 48},
	{2, 1, 141}, {2, 2, 177}, {2, 3, 21}, {2, 4, 339},
	{3, 1, 58}, {3, 2, 100}, {3, 3, 25}, {3, 4, 187}, {3, 5, 25}, {3, 6, 117}, {3, 7, 118},
	{4, 1, 90}, {4, 2, 111}, {4, 3, 62}, {4, 4, 32}, {4, 5, 45}, {4, 6, 314}, {4, 7, 110},
	{5, 1, 78}, {5, 2, 13}, {5, 3, 386},
}

// SceneCount returns the number of scenes in the play.
func SceneCount() int {
	last := Contents[len(Contents)-1]
	return last.Start + last.Scenes
}

// SceneIndex translates act and scene numbers to a flat scene index.
func SceneIndex(act, scene int) (int, error) {
	if act < 1 || act > len(Contents) {
		return 0, &ActError{Act: act}
	}
	i, ok := Contents[act-1].Index(scene)
	if !ok {
		return 0, &SceneError{Act: act, Scene: scene}
	}
	return i, nil
}

// ValidateContents checks that the act table tiles the flat scene array
// without gaps or overlaps and agrees with the catalog.
func ValidateContents(contents []ActEntry, catalog []SceneInfo) error {
	next := 0
	for i, e := range contents {
		if e.Scenes < 1 {
			return fmt.Errorf("act %d: no scenes", i+1)
		}
		if e.Start != next {
			return fmt.Errorf("act %d: starts at %d, want %d", i+1, e.Start, next)
		}
		next = e.Start + e.Scenes
	}
	if len(catalog) != next {
		return fmt.Errorf("catalog has %d scenes, contents cover %d", len(catalog), next)
	}
	for i, e := range contents {
		for s := 1; s <= e.Scenes; s++ {
			info := catalog[e.Start+s-1]
			if info.Act != i+1 || info.Scene != s {
				return fmt.Errorf("catalog entry %d is %d.%d, want %d.%d",
					e.Start+s-1, info.Act, info.Scene, i+1, s)
			}
		}
	}
	return nil
}
