package mock

import (
	"context"
	"io"

	"github.com/kyle-silver/lear"
)

// Compile-time interface verification.
var (
	_ lear.Presenter  = (*Presenter)(nil)
	_ lear.Pager      = (*Pager)(nil)
	_ lear.PlayParser = (*PlayParser)(nil)
)

// Presenter is a mock implementation of lear.Presenter.
type Presenter struct {
	RenderFn         func(blocks []lear.Block, cite bool) string
	RenderContentsFn func(catalog []lear.SceneInfo) string
}

func (p *Presenter) Render(blocks []lear.Block, cite bool) string {
	return p.RenderFn(blocks, cite)
}

func (p *Presenter) RenderContents(catalog []lear.SceneInfo) string {
	return p.RenderContentsFn(catalog)
}

// Pager is a mock implementation of lear.Pager.
type Pager struct {
	PageFn func(ctx context.Context, scene *lear.Scene) error
}

func (p *Pager) Page(ctx context.Context, scene *lear.Scene) error {
	return p.PageFn(ctx, scene)
}

// PlayParser is a mock implementation of lear.PlayParser.
type PlayParser struct {
	ParseFn func(r io.Reader) ([]lear.Scene, error)
}

func (p *PlayParser) Parse(r io.Reader) ([]lear.Scene, error) {
	return p.ParseFn(r)
}
