package file

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Store persists the session key-value state to a JSON file on every write,
// giving the same reload durability a browser profile gets from local
// storage. Backend failures are logged and swallowed; absence of data is the
// only observable outcome.
type Store struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	values map[string]string
}

// NewStore opens (or creates) the store at path. Malformed file content is
// discarded and treated as an empty store.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:   path,
		logger: logger,
		values: make(map[string]string),
	}
	s.load()
	return s
}

func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.persistLocked()
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	s.persistLocked()
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	s.persistLocked()
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read session file, starting empty", "path", s.path, "error", err)
		}
		return
	}
	if len(data) == 0 {
		return
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		s.logger.Warn("malformed session file, starting empty", "path", s.path, "error", err)
		return
	}
	s.values = values
}

func (s *Store) persistLocked() {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		s.logger.Warn("failed to serialize session file", "path", s.path, "error", err)
		return
	}
	if dir := filepath.Dir(s.path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Warn("failed to write session file", "path", s.path, "error", err)
	}
}
