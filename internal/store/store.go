package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"

	"local.dev/lennysocial/internal/models"
)

// Store owns the whole application document. Every read takes the read lock,
// every mutation takes the write lock and persists the document before
// releasing it, so a cascade is never partially observable and two writers
// can never lose each other's update.
type Store struct {
	mu    sync.RWMutex
	doc   models.Document
	path  string
	admin string
}

func New(path, adminUsername string) *Store {
	return &Store{
		doc:   models.EmptyDocument(),
		path:  path,
		admin: adminUsername,
	}
}

func nowISO() string { return time.Now().UTC().Format(time.RFC3339) }

// Post IDs stay timestamp-derived strings, same identity scheme the data
// file always carried.
func newPostID() string {
	return fmt.Sprintf("%d", time.Now().UTC().UnixNano())
}

// strict strips all HTML from user-supplied text before it enters the
// document; the consumers are rendering layers.
var strict = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Load reads the persisted document. A missing file yields the fixed empty
// document; a file that fails to decode is ErrCorruptStore.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Reload re-reads the document from disk, keeping the in-memory state
// untouched when the file is unreadable or corrupt.
func (s *Store) Reload() error {
	return s.Load()
}

func (s *Store) loadLocked() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.doc = models.EmptyDocument()
			return nil
		}
		return errors.Wrap(err, "read data file")
	}
	var doc models.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return errors.Wrapf(ErrCorruptStore, "%s: %v", s.path, err)
	}
	normalize(&doc)
	s.doc = doc
	return nil
}

// normalize keeps every collection non-nil so the serialized document always
// carries all six keys.
func normalize(doc *models.Document) {
	if doc.Users == nil {
		doc.Users = []models.User{}
	}
	if doc.Posts == nil {
		doc.Posts = []models.Post{}
	}
	if doc.Comments == nil {
		doc.Comments = []models.Comment{}
	}
	if doc.Likes == nil {
		doc.Likes = []models.Like{}
	}
	if doc.Follows == nil {
		doc.Follows = []models.Follow{}
	}
	if doc.Chats == nil {
		doc.Chats = []models.ChatMessage{}
	}
}

// saveLocked overwrites the persisted document wholesale. Callers hold the
// write lock.
func (s *Store) saveLocked() error {
	b, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return errors.Wrap(err, "write data file")
	}
	return nil
}

// Snapshot returns a deep copy of the document, for tests and diagnostics.
func (s *Store) Snapshot() models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc := models.Document{
		Users:    append([]models.User{}, s.doc.Users...),
		Posts:    append([]models.Post{}, s.doc.Posts...),
		Comments: append([]models.Comment{}, s.doc.Comments...),
		Likes:    append([]models.Like{}, s.doc.Likes...),
		Follows:  append([]models.Follow{}, s.doc.Follows...),
		Chats:    append([]models.ChatMessage{}, s.doc.Chats...),
	}
	return doc
}
