package credentials

// Memory is an in-process store, used by tests and throwaway sessions
type Memory struct {
	token string
	set   bool
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{}
}

// Token returns the stored token
func (m *Memory) Token() (string, bool) {
	return m.token, m.set
}

// Save replaces the stored token
func (m *Memory) Save(token string) error {
	m.token = token
	m.set = true
	return nil
}

// Delete discards the stored token
func (m *Memory) Delete() error {
	m.token = ""
	m.set = false
	return nil
}

var _ Store = (*Memory)(nil)
