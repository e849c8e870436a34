package testutils

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// MemStore is an in-memory store.Store for repository tests. Optional
// error hooks simulate read/write failures per path.
type MemStore struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage

	// When set, operations against a matching path fail with the given error.
	FailReads  map[string]error
	FailWrites map[string]error
}

func NewMemStore() *MemStore {
	return &MemStore{
		docs:       make(map[string]json.RawMessage),
		FailReads:  make(map[string]error),
		FailWrites: make(map[string]error),
	}
}

func (m *MemStore) Get(_ context.Context, path string, value any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailReads[path]; ok {
		return false, err
	}

	data, ok := m.docs[path]
	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(data, value)
}

func (m *MemStore) Set(_ context.Context, path string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailWrites[path]; ok {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.docs[path] = data

	return nil
}

func (m *MemStore) Delete(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailWrites[path]; ok {
		return err
	}

	delete(m.docs, path)

	return nil
}

func (m *MemStore) Exists(_ context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailReads[path]; ok {
		return false, err
	}

	_, ok := m.docs[path]

	return ok, nil
}

func (m *MemStore) List(_ context.Context, prefix string) (map[string]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailReads[prefix]; ok {
		return nil, err
	}

	result := make(map[string]json.RawMessage)

	for path, data := range m.docs {
		if strings.HasPrefix(path, prefix+"/") {
			id := path[strings.LastIndex(path, "/")+1:]
			result[id] = data
		}
	}

	return result, nil
}

func (m *MemStore) Close() error {
	return nil
}

// Raw returns the stored JSON at path, for assertions on persisted state.
func (m *MemStore) Raw(path string) (json.RawMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.docs[path]

	return data, ok
}
