//go:build !windows
// +build !windows

package midiwindows

import (
	"fmt"

	"github.com/miditools/muse/sdk/contracts"
)

type DummyMIDIClient struct {
	logger contracts.Logger
}

func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("Using dummy winmm client for non-Windows system")
	return &DummyMIDIClient{
		logger: options.Logger,
	}, nil
}

func (m *DummyMIDIClient) ListInputDevices() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListInputDevices called on dummy MIDI client")
	return nil, fmt.Errorf("winmm is not available on this platform")
}

func (m *DummyMIDIClient) ListOutputDevices() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListOutputDevices called on dummy MIDI client")
	return nil, fmt.Errorf("winmm is not available on this platform")
}

func (m *DummyMIDIClient) OpenInput(name string, onMessage func(msg contracts.RawMessage)) error {
	m.logger.Warn("OpenInput called on dummy MIDI client")
	return fmt.Errorf("winmm is not available on this platform")
}

func (m *DummyMIDIClient) OpenOutput(name string) error {
	m.logger.Warn("OpenOutput called on dummy MIDI client")
	return fmt.Errorf("winmm is not available on this platform")
}

func (m *DummyMIDIClient) Send(data []byte) error {
	m.logger.Warn("Send called on dummy MIDI client")
	return fmt.Errorf("winmm is not available on this platform")
}

func (m *DummyMIDIClient) Stop() error {
	m.logger.Warn("Stop called on dummy MIDI client")
	return nil
}
