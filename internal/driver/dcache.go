package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"jslex/internal/source"
	"jslex/internal/token"
)

// Current schema version - increment when TokenPayload format changes
const tokenCacheSchemaVersion uint16 = 1

// TokenCache хранит результаты токенизации по хешу содержимого на диске.
// Кэшируются только файлы, отлексированные без диагностик: повторный
// прогон чистого файла читается с диска, грязные лексируются заново.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedToken struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
	Num   float64
	Str   string
}

// TokenPayload stores a cached token stream for one source file.
type TokenPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path   string
	Hash   [32]byte
	Tokens []cachedToken
}

// OpenTokenCache initializes and returns a disk cache at the standard location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог "tok" — для удобства читаемости/очистки.
	return filepath.Join(c.dir, "tok", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *TokenCache) Put(key [32]byte, payload *TokenPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if removeErr := os.Remove(f.Name()); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", removeErr)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
// Возвращает false при промахе или несовпадении схемы.
func (c *TokenCache) Get(key [32]byte, out *TokenPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != tokenCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// payloadFromResult converts a clean tokenize result into a cacheable payload.
// Результаты с диагностиками не кэшируются — возвращается nil.
func payloadFromResult(res *TokenizeResult) *TokenPayload {
	if res == nil || res.Bag.Len() > 0 {
		return nil
	}
	payload := &TokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   res.File.Path,
		Hash:   res.File.Hash,
		Tokens: make([]cachedToken, len(res.Tokens)),
	}
	for i, tok := range res.Tokens {
		payload.Tokens[i] = cachedToken{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  tok.Text,
			Num:   tok.Num,
			Str:   tok.Str,
		}
	}
	return payload
}

// tokensFromPayload restores a token stream for the given file.
func tokensFromPayload(payload *TokenPayload, fileID source.FileID) []token.Token {
	tokens := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		tokens[i] = token.Token{
			Kind: token.Kind(ct.Kind),
			Span: source.Span{File: fileID, Start: ct.Start, End: ct.End},
			Text: ct.Text,
			Num:  ct.Num,
			Str:  ct.Str,
		}
	}
	return tokens
}
