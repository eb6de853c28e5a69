package sink

import (
	"github.com/stretchr/testify/mock"

	"github.com/volfade/volfade/internal/volume"
)

// MockDevice is a testify mock of Device.
//
//	dev := new(MockDevice)
//	dev.On("DefaultSink").Return(Sink{Index: 1, Name: "alsa_output"}, nil)
//	dev.On("Volume", uint32(1)).Return(volume.Norm/2, nil)
type MockDevice struct {
	mock.Mock
}

var _ Device = (*MockDevice)(nil)

func (m *MockDevice) DefaultSink() (Sink, error) {
	args := m.Called()
	return args.Get(0).(Sink), args.Error(1)
}

func (m *MockDevice) Volume(index uint32) (volume.Volume, error) {
	args := m.Called(index)
	return args.Get(0).(volume.Volume), args.Error(1)
}

func (m *MockDevice) IncreaseByPercent(index uint32, percent float64) error {
	args := m.Called(index, percent)
	return args.Error(0)
}

func (m *MockDevice) DecreaseByPercent(index uint32, percent float64) error {
	args := m.Called(index, percent)
	return args.Error(0)
}

func (m *MockDevice) SetMute(index uint32, muted bool) error {
	args := m.Called(index, muted)
	return args.Error(0)
}
