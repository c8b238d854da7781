//go:build darwin
// +build darwin

package mididarwin

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/miditools/muse/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// internalPortConnection is an interface for handling disconnection from a MIDI port.
type internalPortConnection interface {
	Disconnect()
}

// ClientMid manages MIDI operations through CoreMIDI on macOS.
type ClientMid struct {
	logger    contracts.Logger
	filter    *contracts.MIDIEventFilter
	client    coremidi.Client
	onMessage atomic.Value // func(contracts.RawMessage); set by OpenInput.

	mu        sync.Mutex
	inputPort coremidi.InputPort
	portConn  internalPortConnection
	outPort   coremidi.OutputPort
	dest      *coremidi.Destination
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

// NewMIDIClient registers a CoreMIDI client for handling MIDI on macOS.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	client, err := coremidi.NewClient(options.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("MIDI client successfully created")

	return &ClientMid{
		logger: options.Logger,
		filter: options.MIDIEventFilter,
		client: client,
	}, nil
}

// ListInputDevices enumerates CoreMIDI sources.
func (m *ClientMid) ListInputDevices() ([]contracts.DeviceInfo, error) {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI sources: %w", err)
	}

	devices := make([]contracts.DeviceInfo, len(sources))
	for i, source := range sources {
		entity := source.Entity()
		devices[i] = contracts.DeviceInfo{
			Name:         source.Name(),
			EntityName:   entity.Name(),
			Manufacturer: entity.Manufacturer(),
		}
	}
	return devices, nil
}

// ListOutputDevices enumerates CoreMIDI destinations.
func (m *ClientMid) ListOutputDevices() ([]contracts.DeviceInfo, error) {
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI destinations: %w", err)
	}

	devices := make([]contracts.DeviceInfo, len(destinations))
	for i, dest := range destinations {
		entity := dest.Entity()
		devices[i] = contracts.DeviceInfo{
			Name:         dest.Name(),
			EntityName:   entity.Name(),
			Manufacturer: entity.Manufacturer(),
		}
	}
	return devices, nil
}

// OpenInput connects to the named source and forwards raw messages to
// onMessage. The callback runs on the CoreMIDI driver thread.
func (m *ClientMid) OpenInput(name string, onMessage func(msg contracts.RawMessage)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sources, err := coremidi.AllSources()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI sources: %w", err)
	}
	var source *coremidi.Source
	for i := range sources {
		if sources[i].Name() == name {
			source = &sources[i]
			break
		}
	}
	if source == nil {
		return fmt.Errorf("%w: %q", contracts.ErrDeviceNotFound, name)
	}

	if m.portConn != nil {
		m.portConn.Disconnect()
		m.portConn = nil
	}
	m.onMessage.Store(onMessage)

	m.inputPort, err = coremidi.NewInputPort(m.client, "Input Port", m.handleMIDIMessage)
	if err != nil {
		return fmt.Errorf("error creating input port: %w", err)
	}

	m.portConn, err = m.inputPort.Connect(*source)
	if err != nil {
		return fmt.Errorf("error connecting to MIDI device: %w", err)
	}

	m.logger.Info("MIDI input connected", m.logger.Field().String("device", name))
	return nil
}

// handleMIDIMessage forwards one CoreMIDI packet to the registered callback.
func (m *ClientMid) handleMIDIMessage(source coremidi.Source, packet coremidi.Packet) {
	m.wg.Add(1)
	defer m.wg.Done()

	onMessage, _ := m.onMessage.Load().(func(msg contracts.RawMessage))
	if onMessage == nil || len(packet.Data) == 0 {
		return
	}
	if !m.filter.Allows(packet.Data[0]) {
		return
	}

	onMessage(contracts.RawMessage{
		Timestamp: uint64(time.Now().UTC().UnixNano()),
		Status:    packet.Data[0],
		Data:      packet.Data[1:],
	})
}

// OpenOutput connects to the named destination.
func (m *ClientMid) OpenOutput(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI destinations: %w", err)
	}
	var dest *coremidi.Destination
	for i := range destinations {
		if destinations[i].Name() == name {
			dest = &destinations[i]
			break
		}
	}
	if dest == nil {
		return fmt.Errorf("%w: %q", contracts.ErrDeviceNotFound, name)
	}

	m.outPort, err = coremidi.NewOutputPort(m.client, "Output Port")
	if err != nil {
		return fmt.Errorf("error creating output port: %w", err)
	}
	m.dest = dest

	m.logger.Info("MIDI output connected", m.logger.Field().String("device", name))
	return nil
}

// Send writes one raw message to the open destination.
func (m *ClientMid) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dest == nil {
		return contracts.ErrNoOutputOpen
	}
	// Zero timestamp means deliver immediately.
	packet := coremidi.Packet{Data: data}
	return packet.Send(&m.outPort, m.dest)
}

// Stop disconnects open ports and waits for in-flight callbacks.
func (m *ClientMid) Stop() error {
	m.stopOnce.Do(func() {
		m.logger.Info("Stopping MIDI client")
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.portConn != nil {
			m.portConn.Disconnect()
			m.portConn = nil
		}
		m.dest = nil

		// Drop the callback so late driver deliveries are ignored.
		m.onMessage.Store((func(msg contracts.RawMessage))(nil))

		m.wg.Wait()
	})
	return nil
}
