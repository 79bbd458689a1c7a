package gitconfig

import "context"

// MockCommander is a mock implementation of Commander for testing
type MockCommander struct {
	// OutputFunc is called when Output is invoked
	OutputFunc func(ctx context.Context, args ...string) (string, error)

	// Calls records all method calls for verification
	Calls []MockCommanderCall
}

// MockCommanderCall records a method call
type MockCommanderCall struct {
	Method string
	Args   []string
}

// NewMockCommander creates a new mock commander
func NewMockCommander() *MockCommander {
	return &MockCommander{
		Calls: make([]MockCommanderCall, 0),
	}
}

// Output implements Commander.Output
func (m *MockCommander) Output(ctx context.Context, args ...string) (string, error) {
	m.Calls = append(m.Calls, MockCommanderCall{Method: "Output", Args: args})
	if m.OutputFunc != nil {
		return m.OutputFunc(ctx, args...)
	}
	return "", nil
}

// Reset clears all recorded calls
func (m *MockCommander) Reset() {
	m.Calls = make([]MockCommanderCall, 0)
}

// CallCount returns the number of times a method was called
func (m *MockCommander) CallCount(method string) int {
	count := 0
	for _, call := range m.Calls {
		if call.Method == method {
			count++
		}
	}
	return count
}
