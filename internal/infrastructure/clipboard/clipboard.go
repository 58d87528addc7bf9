// Package clipboard provides a pasteboard adapter using wl-clipboard (Wayland)
// with X11 and atotto/clipboard fallbacks.
package clipboard

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	atotto "github.com/atotto/clipboard"

	"github.com/bnema/pastor/internal/application/port"
	"github.com/bnema/pastor/internal/logging"
)

// ErrNoClipboardTool is returned when no clipboard backend is usable.
var ErrNoClipboardTool = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

// backend moves text to and from the system clipboard.
// read reports ok=false for an empty or non-text clipboard.
type backend interface {
	name() string
	read(ctx context.Context) (text string, ok bool, err error)
	write(ctx context.Context, text string) error
}

// Adapter implements port.Pasteboard on top of a clipboard backend.
//
// The system tools expose no change counter, so the adapter keeps one:
// every ChangeCount reads the clipboard and increments the counter when
// the content fingerprint differs from the previous read.
type Adapter struct {
	backend backend

	mu          sync.Mutex
	count       uint64
	fingerprint [sha256.Size]byte
	seen        bool
	text        string
	hasText     bool
	fresh       bool
}

// New creates a new pasteboard adapter.
// Detects Wayland vs X11 and selects the appropriate clipboard tool.
func New() *Adapter {
	return newAdapter(detect())
}

func newAdapter(b backend) *Adapter {
	return &Adapter{backend: b}
}

// Backend names the clipboard tool in use.
func (a *Adapter) Backend() string {
	return a.backend.name()
}

// ChangeCount reads the clipboard and returns the synthesized change counter.
func (a *Adapter) ChangeCount(ctx context.Context) (uint64, error) {
	text, ok, err := a.backend.read(ctx)
	if err != nil {
		return 0, err
	}

	fp := fingerprint(text, ok)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.seen && fp != a.fingerprint {
		a.count++
	}
	a.seen = true
	a.fingerprint = fp
	a.text, a.hasText, a.fresh = text, ok, true
	return a.count, nil
}

// ReadText returns the text read by the latest ChangeCount, or reads the
// clipboard when none is pending.
func (a *Adapter) ReadText(ctx context.Context) (string, bool, error) {
	a.mu.Lock()
	if a.fresh {
		a.fresh = false
		text, ok := a.text, a.hasText
		a.mu.Unlock()
		return text, ok, nil
	}
	a.mu.Unlock()

	return a.backend.read(ctx)
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if err := a.backend.write(ctx, text); err != nil {
		log.Error().Err(err).Str("tool", a.backend.name()).Msg("clipboard write failed")
		return err
	}

	log.Debug().Str("tool", a.backend.name()).Int("len", len(text)).Msg("clipboard write success")
	return nil
}

func fingerprint(text string, ok bool) [sha256.Size]byte {
	if !ok {
		return [sha256.Size]byte{}
	}
	return sha256.Sum256([]byte("text:" + text))
}

// detect picks the first usable backend for the session.
func detect() backend {
	// Check for Wayland first
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		copyPath, copyErr := exec.LookPath("wl-copy")
		pastePath, pasteErr := exec.LookPath("wl-paste")
		if copyErr == nil && pasteErr == nil {
			return &toolBackend{tool: toolWayland, copyCmd: copyPath, pasteCmd: pastePath}
		}
	}

	// Fall back to X11 if Wayland tools not available
	if os.Getenv("DISPLAY") != "" {
		if path, err := exec.LookPath("xclip"); err == nil {
			return &toolBackend{tool: toolXclip, copyCmd: path, pasteCmd: path}
		}
		if path, err := exec.LookPath("xsel"); err == nil {
			return &toolBackend{tool: toolXsel, copyCmd: path, pasteCmd: path}
		}
	}

	if !atotto.Unsupported {
		return atottoBackend{}
	}
	return noBackend{}
}

type tool string

const (
	toolWayland tool = "wl-clipboard"
	toolXclip   tool = "xclip"
	toolXsel    tool = "xsel"
)

// toolBackend shells out to wl-copy/wl-paste, xclip or xsel.
type toolBackend struct {
	tool     tool
	copyCmd  string
	pasteCmd string
}

func (b *toolBackend) name() string {
	return string(b.tool)
}

func (b *toolBackend) copyArgs() []string {
	switch b.tool {
	case toolXclip:
		return []string{"-selection", "clipboard"}
	case toolXsel:
		return []string{"--clipboard", "--input"}
	default:
		return nil
	}
}

func (b *toolBackend) pasteArgs() []string {
	switch b.tool {
	case toolXclip:
		return []string{"-selection", "clipboard", "-o"}
	case toolXsel:
		return []string{"--clipboard", "--output"}
	default:
		return []string{"--no-newline", "--type", "text/plain"}
	}
}

func (b *toolBackend) read(ctx context.Context) (string, bool, error) {
	out, err := exec.CommandContext(ctx, b.pasteCmd, b.pasteArgs()...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Empty clipboard or no text target
			return "", false, nil
		}
		return "", false, fmt.Errorf("run %s: %w", b.pasteCmd, err)
	}
	return string(out), len(out) > 0, nil
}

func (b *toolBackend) write(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, b.copyCmd, b.copyArgs()...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", b.copyCmd, err)
	}
	return nil
}

// atottoBackend covers pbcopy/pbpaste and the Windows clipboard.
type atottoBackend struct{}

func (atottoBackend) name() string {
	return "atotto/clipboard"
}

func (atottoBackend) read(_ context.Context) (string, bool, error) {
	text, err := atotto.ReadAll()
	if err != nil {
		return "", false, fmt.Errorf("read clipboard: %w", err)
	}
	return text, text != "", nil
}

func (atottoBackend) write(_ context.Context, text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// noBackend fails every operation with ErrNoClipboardTool.
type noBackend struct{}

func (noBackend) name() string { return "none" }

func (noBackend) read(context.Context) (string, bool, error) {
	return "", false, ErrNoClipboardTool
}

func (noBackend) write(context.Context, string) error {
	return ErrNoClipboardTool
}

var _ port.Pasteboard = (*Adapter)(nil)
