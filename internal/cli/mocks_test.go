package cli

import (
	"sync"

	"github.com/alnah/go-promptgen/internal/config"
)

// ---------------------------------------------------------------------------
// Mock ConfigLoader
// ---------------------------------------------------------------------------

type mockConfigLoader struct {
	LoadFunc func() (config.Config, error)

	mu        sync.Mutex
	loadCalls int
}

func (m *mockConfigLoader) Load() (config.Config, error) {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return config.Config{}, nil
}

func (m *mockConfigLoader) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

// ---------------------------------------------------------------------------
// Mock Clipboard
// ---------------------------------------------------------------------------

type mockClipboard struct {
	WriteAllFunc func(text string) error

	mu     sync.Mutex
	writes []string
}

func (m *mockClipboard) WriteAll(text string) error {
	m.mu.Lock()
	m.writes = append(m.writes, text)
	m.mu.Unlock()

	if m.WriteAllFunc != nil {
		return m.WriteAllFunc(text)
	}
	return nil
}

func (m *mockClipboard) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}

// Compile-time interface verification.
var (
	_ ConfigLoader = (*mockConfigLoader)(nil)
	_ Clipboard    = (*mockClipboard)(nil)
)
