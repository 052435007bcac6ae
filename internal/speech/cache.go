package speech

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterbourgon/diskv"

	"github.com/abhisek/kakezan/internal/playback"
)

// cacheMemMax bounds the in-memory copy diskv keeps of recently read clips.
const cacheMemMax = 4 << 20

// Cache stores synthesized clips on disk so the same phrase is fetched
// from a backend only once. A nil *Cache never hits and ignores writes.
//
// Each value is a one-line header naming the encoding, then the audio.
type Cache struct {
	store *diskv.Diskv
}

// NewCache creates the cache directory if needed. Writes go through a
// staging directory under dir so readers never see a partial clip.
func NewCache(dir string) (*Cache, error) {
	tmp := filepath.Join(dir, ".staging")
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, fmt.Errorf("create speech cache: %w", err)
	}
	return &Cache{store: diskv.New(diskv.Options{
		BasePath:     dir,
		TempDir:      tmp,
		Transform:    shard,
		CacheSizeMax: cacheMemMax,
	})}, nil
}

// shard spreads keys over 256 subdirectories by their first hex byte.
func shard(key string) []string {
	if len(key) < 2 {
		return nil
	}
	return []string{key[:2]}
}

// DefaultCacheDir resolves $XDG_CACHE_HOME/kakezan/speech.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "kakezan", "speech"), nil
}

// Get loads a clip. Unreadable or malformed entries count as misses.
func (c *Cache) Get(key string) (Clip, bool) {
	if c == nil {
		return Clip{}, false
	}
	raw, err := c.store.Read(key)
	if err != nil {
		return Clip{}, false
	}
	head, data, found := bytes.Cut(raw, []byte{'\n'})
	if !found || len(data) == 0 {
		return Clip{}, false
	}
	clip, ok := parseCacheHeader(string(head))
	if !ok {
		return Clip{}, false
	}
	clip.Data = data
	return clip, true
}

// Put writes a clip, replacing any previous value for key.
func (c *Cache) Put(key string, clip Clip) error {
	if c == nil {
		return nil
	}
	val := make([]byte, 0, len(clip.Data)+16)
	val = append(val, cacheHeader(clip)...)
	val = append(val, '\n')
	val = append(val, clip.Data...)
	if err := c.store.Write(key, val); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Clear deletes every cached clip.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	return c.store.EraseAll()
}

func cacheKey(backend string, u playback.Utterance) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%.2f|%.2f|%s", backend, u.Lang, u.Rate, u.Pitch, u.Text)))
	return hex.EncodeToString(h[:12])
}

func cacheHeader(clip Clip) string {
	if clip.Encoding == EncodingPCM {
		return fmt.Sprintf("pcm%d", clip.SampleRate)
	}
	return string(clip.Encoding)
}

func parseCacheHeader(head string) (Clip, bool) {
	switch {
	case head == string(EncodingMP3):
		return Clip{Encoding: EncodingMP3}, true
	case strings.HasPrefix(head, "pcm"):
		rate, err := strconv.Atoi(strings.TrimPrefix(head, "pcm"))
		if err != nil || rate <= 0 {
			return Clip{}, false
		}
		return Clip{Encoding: EncodingPCM, SampleRate: rate}, true
	default:
		return Clip{}, false
	}
}
