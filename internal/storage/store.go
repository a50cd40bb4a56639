// Package storage persists user records to a flat JSON file.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/PoluyanbIch/StressBot/internal/service"
)

// Store owns every user record and rewrites the backing file after each
// mutation. Records are created lazily and never deleted.
type Store struct {
	path        string
	master      []string
	defaultRate int

	mu    sync.Mutex
	users map[string]*service.UserRecord
}

// Open loads user records from path, starting empty when the file does not
// exist yet.
func Open(path string, master []string, defaultRate int) (*Store, error) {
	s := &Store{
		path:        path,
		master:      master,
		defaultRate: defaultRate,
		users:       make(map[string]*service.UserRecord),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read user data: %w", err)
	}
	if err := json.Unmarshal(data, &s.users); err != nil {
		return nil, fmt.Errorf("failed to decode user data: %w", err)
	}
	return s, nil
}

// Update runs fn against the record for id, creating the record first when
// absent, then rewrites the file. The whole read-modify-persist happens under
// the store lock, so the poller and the scheduler never interleave on a user.
func (s *Store) Update(id string, fn func(rec *service.UserRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		rec = service.NewUserRecord(s.master, s.defaultRate)
		s.users[id] = rec
	}
	fn(rec)
	return s.save()
}

// UpdateIfExists runs fn only when a record for id exists and never creates
// one. fn reports whether it changed the record; the file is rewritten only
// then. The first result reports whether the record was found.
func (s *Store) UpdateIfExists(id string, fn func(rec *service.UserRecord) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return false, nil
	}
	if !fn(rec) {
		return true, nil
	}
	return true, s.save()
}

// UserIDs returns a sorted snapshot of all known user ids.
func (s *Store) UserIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of known users.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// save rewrites the whole document through a temp file and a rename, so a
// crash mid-write cannot truncate the store. Callers hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.users, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "user_data-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write user data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace user data: %w", err)
	}
	return nil
}
