package mock

import "github.com/kyle-silver/lear"

// Compile-time interface verification.
var _ lear.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of lear.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
