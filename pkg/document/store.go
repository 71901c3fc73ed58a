package document

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Store knows how to persist documents by name.
type Store interface {
	Load(name string) (*Document, error)
	Save(doc *Document) error
	List() ([]string, error)
}

// MemoryStore keeps encoded documents in memory. Loaded documents are fresh
// copies, so changes are only visible after Save.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(name string) (*Document, error) {
	s.mu.RLock()
	data, ok := s.docs[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("document: %w: document %q", ErrNotFound, name)
	}
	return Decode(bytes.NewReader(data))
}

func (s *MemoryStore) Save(doc *Document) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.Name()] = buf.Bytes()
	return nil
}

func (s *MemoryStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DirStore keeps one <name>.arc file per document in a directory.
type DirStore struct {
	Root string
}

// Path returns the file used for the named document.
func (s DirStore) Path(name string) string {
	return filepath.Join(s.Root, name+FileExt)
}

func (s DirStore) Load(name string) (*Document, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("document: %w: %q", ErrInvalidName, name)
	}
	doc, err := ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("document: %w: document %q", ErrNotFound, name)
	}
	return doc, err
}

// Save writes the document to a temporary file and renames it into place.
func (s DirStore) Save(doc *Document) error {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return fmt.Errorf("document: %w", err)
	}
	tmp, err := os.CreateTemp(s.Root, "."+doc.Name()+"-*")
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}
	if err := Encode(tmp, doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("document: save %s: %w", doc.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("document: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(doc.Name())); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("document: %w", err)
	}
	return nil
}

func (s DirStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("document: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FileExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), FileExt)
		if ValidName(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
