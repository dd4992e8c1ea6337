//nolint:errcheck
package module

import (
	"github.com/arloliu/go-b1500/constants"
	"github.com/stretchr/testify/mock"
)

// MockInstrument implements Instrument interface for testing
type MockInstrument struct {
	mock.Mock
}

var _ Instrument = (*MockInstrument)(nil)

func (m *MockInstrument) Write(cmd string) error {
	args := m.Called(cmd)
	return args.Error(0)
}

func (m *MockInstrument) Ask(cmd string) (string, error) {
	args := m.Called(cmd)
	return args.String(0), args.Error(1)
}

// MockCommandBuilder implements CommandBuilder interface for testing
type MockCommandBuilder struct {
	mock.Mock
}

var _ CommandBuilder = (*MockCommandBuilder)(nil)

func (m *MockCommandBuilder) CloseRelay(channels []constants.ChNr) (string, error) {
	args := m.Called(channels)
	return args.String(0), args.Error(1)
}

func (m *MockCommandBuilder) OpenRelay(channels []constants.ChNr) (string, error) {
	args := m.Called(channels)
	return args.String(0), args.Error(1)
}

func (m *MockCommandBuilder) StatusQuery(t constants.LRNType) (string, error) {
	args := m.Called(t)
	return args.String(0), args.Error(1)
}
