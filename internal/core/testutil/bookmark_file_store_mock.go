package testutil

import "github.com/AntonioJCosta/dirmarks/internal/core/ports"

// MockBookmarkFileStore is a mock implementation of ports.BookmarkFileStore for testing.
type MockBookmarkFileStore struct {
	ReadInputFunc   func(path string) (string, error)
	WriteOutputFunc func(path string, content []byte) error

	WriteOutputCalls int
}

// ReadInput mocks the ReadInput method.
func (m *MockBookmarkFileStore) ReadInput(path string) (string, error) {
	if m.ReadInputFunc != nil {
		return m.ReadInputFunc(path)
	}
	return "", nil
}

// WriteOutput mocks the WriteOutput method and counts calls.
func (m *MockBookmarkFileStore) WriteOutput(path string, content []byte) error {
	m.WriteOutputCalls++
	if m.WriteOutputFunc != nil {
		return m.WriteOutputFunc(path, content)
	}
	return nil
}

var _ ports.BookmarkFileStore = (*MockBookmarkFileStore)(nil)
