// Package cache keeps model answers on disk so repeated /ask questions skip
// the remote call.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// FileCache stores answers as JSON blobs addressed by hash key.
type FileCache struct {
	dir        string
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

// NewFileCache returns a cache rooted at dir. Non-positive limits fall back
// to the defaults.
func NewFileCache(dir string, ttl time.Duration, maxEntries int) *FileCache {
	if ttl <= 0 {
		ttl = domain.DefaultAnswerCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = domain.DefaultAnswerCacheEntries
	}
	return &FileCache{dir: dir, maxEntries: maxEntries, ttl: ttl, now: time.Now}
}

// Key normalizes a question (case and whitespace) and hashes it.
func Key(question string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(question)), " ")
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Get retrieves an entry. Expired entries are removed and reported as misses.
func (c *FileCache) Get(key string) (domain.CachedAnswer, bool, error) {
	if key == "" {
		return domain.CachedAnswer{}, false, nil
	}
	path := c.pathFor(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.CachedAnswer{}, false, nil
		}
		return domain.CachedAnswer{}, false, err
	}
	var entry domain.CachedAnswer
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.CachedAnswer{}, false, err
	}
	if c.now().Sub(entry.CreatedAt) > c.ttl {
		_ = os.Remove(path)
		return domain.CachedAnswer{}, false, nil
	}
	return entry, true, nil
}

// Set stores an entry and evicts the oldest ones beyond the cap.
func (c *FileCache) Set(entry domain.CachedAnswer) error {
	if entry.Key == "" {
		return nil
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = c.now()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, domain.DirectoryPermissions); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.pathFor(entry.Key), data, domain.SecureFilePermissions); err != nil {
		return err
	}
	return c.evictIfNeeded()
}

// Dir exposes the cache directory path.
func (c *FileCache) Dir() string {
	return c.dir
}

// Clear removes all cached entries.
func (c *FileCache) Clear() error {
	return os.RemoveAll(c.dir)
}

func (c *FileCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *FileCache) evictIfNeeded() error {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(files) <= c.maxEntries {
		return nil
	}
	type fileInfo struct {
		name string
		mod  time.Time
	}
	var infos []fileInfo
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		infos = append(infos, fileInfo{name: f.Name(), mod: info.ModTime()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].mod.Before(infos[j].mod) })
	for len(infos) > c.maxEntries {
		_ = os.Remove(filepath.Join(c.dir, infos[0].name))
		infos = infos[1:]
	}
	return nil
}

var _ ports.AnswerCache = (*FileCache)(nil)
