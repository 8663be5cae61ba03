package finance_mock

import (
	"context"
	"io"
	"sync"
)

// MemoryFileStore keeps blobs in a map and records deletes so tests
// can assert on attachment lifecycles.
type MemoryFileStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Deleted []string
}

func NewMemoryFileStore() *MemoryFileStore {
	return &MemoryFileStore{
		Objects: map[string][]byte{},
	}
}

func (m *MemoryFileStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = data
	return "https://test-bucket.s3.local/" + key, nil
}

func (m *MemoryFileStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, key)
	m.Deleted = append(m.Deleted, key)
	return nil
}
