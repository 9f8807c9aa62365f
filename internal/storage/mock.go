package storage

// MockRegistry is an introspectable registry for tests.
type MockRegistry struct {
	Events map[K][]interface{}
}

func NewMockRegistry() *MockRegistry {
	return &MockRegistry{
		Events: make(map[K][]interface{}),
	}
}

func (m *MockRegistry) Root() string {
	return ""
}

func (m *MockRegistry) Add(key K, value interface{}) error {
	if _, ok := m.Events[key]; !ok {
		m.Events[key] = make([]interface{}, 0)
	}
	m.Events[key] = append(m.Events[key], value)
	return nil
}

func (m *MockRegistry) GetAll(key K, values interface{}) error {
	return nil
}
