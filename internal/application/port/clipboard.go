package port

import "context"

// Pasteboard abstracts the system clipboard for change detection.
type Pasteboard interface {
	// ChangeCount returns a counter that increases every time the clipboard
	// content changes. Values are only comparable within one Pasteboard.
	ChangeCount(ctx context.Context) (uint64, error)

	// ReadText returns the current text content.
	// ok is false when the clipboard is empty or holds no text.
	ReadText(ctx context.Context) (text string, ok bool, err error)

	// WriteText copies text to the clipboard.
	WriteText(ctx context.Context, text string) error
}
