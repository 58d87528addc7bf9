// Package codec seals the clipboard history into an authenticated,
// versioned blob and opens it back.
//
// A blob is nonce || ciphertext || tag. The plaintext is a JSON envelope
// {"version":2,"entries":[...]}; the legacy plaintext is a bare JSON list
// of strings and is only ever read.
package codec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/bnema/pastor/internal/domain/entity"
	perrors "github.com/bnema/pastor/internal/errors"
)

// FormatVersion is the version written into every sealed envelope.
const FormatVersion = 2

// Cipher names an AEAD construction.
type Cipher string

const (
	CipherAESGCM            Cipher = "aes-256-gcm"
	CipherXChaCha20Poly1305 Cipher = "xchacha20-poly1305"
)

// ErrUnknownCipher is returned for a Cipher value that is not supported.
var ErrUnknownCipher = errors.New("unknown cipher")

// ParseCipher maps a config value to a Cipher. Empty selects AES-256-GCM.
func ParseCipher(name string) (Cipher, error) {
	switch Cipher(strings.ToLower(strings.TrimSpace(name))) {
	case "", CipherAESGCM:
		return CipherAESGCM, nil
	case CipherXChaCha20Poly1305:
		return CipherXChaCha20Poly1305, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
}

type envelope struct {
	Version int                `json:"version"`
	Entries []entity.ClipEntry `json:"entries"`
}

// Codec seals and opens history blobs with one AEAD construction.
type Codec struct {
	cipher Cipher
}

// New creates a codec for the given cipher.
func New(c Cipher) (*Codec, error) {
	if _, err := ParseCipher(string(c)); err != nil {
		return nil, err
	}
	return &Codec{cipher: c}, nil
}

// Cipher returns the AEAD construction used by the codec.
func (c *Codec) Cipher() Cipher {
	return c.cipher
}

// NewAEAD builds the AEAD for key.
func (c *Codec) NewAEAD(key []byte) (cipher.AEAD, error) {
	switch c.cipher {
	case CipherXChaCha20Poly1305:
		return chacha20poly1305.NewX(key)
	default:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	}
}

// Seal encodes entries and seals them under key with a fresh nonce.
func (c *Codec) Seal(entries []entity.ClipEntry, key []byte) ([]byte, error) {
	if entries == nil {
		entries = []entity.ClipEntry{}
	}
	plaintext, err := json.Marshal(envelope{Version: FormatVersion, Entries: entries})
	if err != nil {
		return nil, perrors.NewEncoding(err)
	}
	return c.seal(plaintext, key)
}

// Open verifies and decrypts blob and decodes the current entry format.
func (c *Codec) Open(blob, key []byte) ([]entity.ClipEntry, error) {
	plaintext, err := c.open(blob, key)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(plaintext))
	dec.DisallowUnknownFields()

	var env envelope
	if err := dec.Decode(&env); err != nil {
		return nil, perrors.NewDecoding("decode entries", err)
	}
	if env.Version != FormatVersion {
		return nil, perrors.NewDecoding("decode entries", fmt.Errorf("unsupported format version %d", env.Version))
	}
	for i, e := range env.Entries {
		if err := e.Validate(); err != nil {
			return nil, perrors.NewDecoding("decode entries", fmt.Errorf("entry %d: %w", i, err))
		}
	}
	if env.Entries == nil {
		env.Entries = []entity.ClipEntry{}
	}
	return env.Entries, nil
}

// OpenLegacy verifies and decrypts blob and decodes the legacy string list.
func (c *Codec) OpenLegacy(blob, key []byte) ([]string, error) {
	plaintext, err := c.open(blob, key)
	if err != nil {
		return nil, err
	}

	var texts []string
	if err := json.Unmarshal(plaintext, &texts); err != nil {
		return nil, perrors.NewDecoding("decode legacy strings", err)
	}
	if texts == nil {
		texts = []string{}
	}
	return texts, nil
}

func (c *Codec) seal(plaintext, key []byte) ([]byte, error) {
	aead, err := c.NewAEAD(key)
	if err != nil {
		return nil, perrors.NewSeal("init cipher", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, perrors.NewSeal("generate nonce", err)
	}

	// Seal appends the ciphertext to nonce, producing: nonce || ciphertext || tag.
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *Codec) open(blob, key []byte) ([]byte, error) {
	aead, err := c.NewAEAD(key)
	if err != nil {
		return nil, perrors.NewAuthentication(fmt.Errorf("init cipher: %w", err))
	}

	nonceSize := aead.NonceSize()
	if len(blob) < nonceSize+aead.Overhead() {
		return nil, perrors.NewAuthentication(errors.New("sealed blob too short"))
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, perrors.NewAuthentication(err)
	}
	return plaintext, nil
}
