//go:build windows
// +build windows

package midiwindows

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/miditools/muse/sdk/contracts"
	"golang.org/x/sys/windows"
)

// Type definitions for MIDI handles
type (
	HMIDIIN  windows.Handle
	HMIDIOUT windows.Handle
)

// Constants for callback flags
const (
	CALLBACK_FUNCTION = 0x00030000 // Indicates that the callback is a function
	MIDI_IO_STATUS    = 0x00000020 // MIDI input/output status
)

// Constants for MIDI message types
const (
	MIM_OPEN      = 0x3C1 // MIDI device opened
	MIM_CLOSE     = 0x3C2 // MIDI device closed
	MIM_DATA      = 0x3C3 // MIDI data received
	MIM_ERROR     = 0x3C5 // MIDI error
	MIM_LONGERROR = 0x3C6 // Long MIDI error
	MIM_MOREDATA  = 0x3CC // More MIDI data available
)

// Struct representing MIDI input device capabilities
type midiInCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	dwSupport      uint32
}

// Struct representing MIDI output device capabilities
type midiOutCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	wTechnology    uint16
	wVoices        uint16
	wNotes         uint16
	wChannelMask   uint16
	dwSupport      uint32
}

// ClientMid manages MIDI through winmm on Windows.
type ClientMid struct {
	logger    contracts.Logger
	filter    *contracts.MIDIEventFilter
	onMessage atomic.Value // func(contracts.RawMessage); set by OpenInput.

	mu        sync.Mutex
	inHandle  HMIDIIN
	outHandle HMIDIOUT
	callback  uintptr
}

// Load the winmm.dll library and required functions
var (
	winmm                 = windows.NewLazySystemDLL("winmm.dll")
	procMidiInGetNumDevs  = winmm.NewProc("midiInGetNumDevs")
	procMidiInGetDevCaps  = winmm.NewProc("midiInGetDevCapsW")
	procMidiInOpen        = winmm.NewProc("midiInOpen")
	procMidiInStart       = winmm.NewProc("midiInStart")
	procMidiInStop        = winmm.NewProc("midiInStop")
	procMidiInClose       = winmm.NewProc("midiInClose")
	procMidiOutGetNumDevs = winmm.NewProc("midiOutGetNumDevs")
	procMidiOutGetDevCaps = winmm.NewProc("midiOutGetDevCapsW")
	procMidiOutOpen       = winmm.NewProc("midiOutOpen")
	procMidiOutShortMsg   = winmm.NewProc("midiOutShortMsg")
	procMidiOutClose      = winmm.NewProc("midiOutClose")
)

// NewMIDIClient creates a MIDI client for Windows.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("MIDI client created for Windows")

	return &ClientMid{
		logger: options.Logger,
		filter: options.MIDIEventFilter,
	}, nil
}

// ListInputDevices enumerates the available MIDI input devices.
func (m *ClientMid) ListInputDevices() ([]contracts.DeviceInfo, error) {
	r0, _, _ := procMidiInGetNumDevs.Call()
	numDevices := uint32(r0)

	devices := make([]contracts.DeviceInfo, 0, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiInCaps
		r1, _, _ := procMidiInGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			m.logger.Warn(fmt.Sprintf("Failed to get information for MIDI input %d", i))
			continue
		}
		deviceName := windows.UTF16ToString(caps.szPname[:])
		devices = append(devices, contracts.DeviceInfo{
			Name:         deviceName,
			EntityName:   deviceName,
			Manufacturer: fmt.Sprintf("MID: %d PID: %d", caps.wMid, caps.wPid),
		})
	}
	return devices, nil
}

// ListOutputDevices enumerates the available MIDI output devices.
func (m *ClientMid) ListOutputDevices() ([]contracts.DeviceInfo, error) {
	r0, _, _ := procMidiOutGetNumDevs.Call()
	numDevices := uint32(r0)

	devices := make([]contracts.DeviceInfo, 0, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiOutCaps
		r1, _, _ := procMidiOutGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			m.logger.Warn(fmt.Sprintf("Failed to get information for MIDI output %d", i))
			continue
		}
		deviceName := windows.UTF16ToString(caps.szPname[:])
		devices = append(devices, contracts.DeviceInfo{
			Name:         deviceName,
			EntityName:   deviceName,
			Manufacturer: fmt.Sprintf("MID: %d PID: %d", caps.wMid, caps.wPid),
		})
	}
	return devices, nil
}

// deviceIDByName resolves a device name to its winmm device ID.
func deviceIDByName(devices []contracts.DeviceInfo, name string) (int, bool) {
	for i, dev := range devices {
		if dev.Name == name {
			return i, true
		}
	}
	return 0, false
}

// OpenInput opens the named input device and starts capture. The callback runs
// on the winmm driver thread.
func (m *ClientMid) OpenInput(name string, onMessage func(msg contracts.RawMessage)) error {
	devices, err := m.ListInputDevices()
	if err != nil {
		return err
	}
	deviceID, ok := deviceIDByName(devices, name)
	if !ok {
		return fmt.Errorf("%w: %q", contracts.ErrDeviceNotFound, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inHandle != 0 {
		if err := m.closeInput(); err != nil {
			return fmt.Errorf("failed to close previous MIDI input: %w", err)
		}
	}
	m.onMessage.Store(onMessage)

	m.callback = windows.NewCallback(midiInCallback)
	fdwOpen := CALLBACK_FUNCTION | MIDI_IO_STATUS

	r1, _, callErr := procMidiInOpen.Call(
		uintptr(unsafe.Pointer(&m.inHandle)),
		uintptr(deviceID),
		m.callback,
		uintptr(unsafe.Pointer(m)),
		uintptr(fdwOpen),
	)
	if r1 != 0 {
		return fmt.Errorf("failed to open MIDI input %q: %v", name, callErr)
	}

	r1, _, callErr = procMidiInStart.Call(uintptr(m.inHandle))
	if r1 != 0 {
		return fmt.Errorf("failed to start MIDI capture on %q: %v", name, callErr)
	}

	m.logger.Info("MIDI input connected", m.logger.Field().String("device", name))
	return nil
}

// OpenOutput opens the named output device.
func (m *ClientMid) OpenOutput(name string) error {
	devices, err := m.ListOutputDevices()
	if err != nil {
		return err
	}
	deviceID, ok := deviceIDByName(devices, name)
	if !ok {
		return fmt.Errorf("%w: %q", contracts.ErrDeviceNotFound, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.outHandle != 0 {
		procMidiOutClose.Call(uintptr(m.outHandle))
		m.outHandle = 0
	}

	r1, _, callErr := procMidiOutOpen.Call(
		uintptr(unsafe.Pointer(&m.outHandle)),
		uintptr(deviceID),
		0,
		0,
		0,
	)
	if r1 != 0 {
		return fmt.Errorf("failed to open MIDI output %q: %v", name, callErr)
	}

	m.logger.Info("MIDI output connected", m.logger.Field().String("device", name))
	return nil
}

// Send writes one short message (status plus up to two data bytes) to the
// open output.
func (m *ClientMid) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.outHandle == 0 {
		return contracts.ErrNoOutputOpen
	}
	if len(data) == 0 || len(data) > 3 {
		return fmt.Errorf("short message must be 1-3 bytes, got %d", len(data))
	}

	var dwMsg uint32
	for i, b := range data {
		dwMsg |= uint32(b) << (8 * i)
	}
	r1, _, callErr := procMidiOutShortMsg.Call(uintptr(m.outHandle), uintptr(dwMsg))
	if r1 != 0 {
		return fmt.Errorf("failed to send MIDI message: %v", callErr)
	}
	return nil
}

// midiInCallback processes incoming MIDI messages.
func midiInCallback(hMidiIn uintptr, wMsg uint32, dwInstance uintptr, dwParam1 uintptr, dwParam2 uintptr) uintptr {
	m := (*ClientMid)(unsafe.Pointer(dwInstance))

	switch wMsg {
	case MIM_OPEN:
		m.logger.Info("MIDI device opened")
	case MIM_CLOSE:
		m.logger.Info("MIDI device closed")
	case MIM_DATA:
		onMessage, _ := m.onMessage.Load().(func(msg contracts.RawMessage))
		if onMessage == nil {
			return 0
		}

		status := byte(dwParam1 & 0xFF)
		data1 := byte((dwParam1 >> 8) & 0xFF)
		data2 := byte((dwParam1 >> 16) & 0xFF)

		if !m.filter.Allows(status) {
			m.logger.Debug(fmt.Sprintf("MIDI status 0x%X filtered out", status))
			return 0
		}

		onMessage(contracts.RawMessage{
			Timestamp: uint64(time.Now().UTC().UnixNano()),
			Status:    status,
			Data:      []byte{data1, data2},
		})
	case MIM_ERROR, MIM_LONGERROR:
		m.logger.Error(fmt.Sprintf("MIDI error: msg=0x%X", wMsg))
	case MIM_MOREDATA:
		m.logger.Debug("Received MIM_MOREDATA message; ignored")
	default:
		m.logger.Warn(fmt.Sprintf("Unknown MIDI message: 0x%X", wMsg))
	}

	return 0
}

// Stop terminates capture and closes open devices.
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inHandle != 0 {
		if err := m.closeInput(); err != nil {
			return fmt.Errorf("failed to stop MIDI capture: %w", err)
		}
	}
	if m.outHandle != 0 {
		procMidiOutClose.Call(uintptr(m.outHandle))
		m.outHandle = 0
	}
	m.logger.Info("MIDI client stopped")
	return nil
}

// closeInput stops the capture and releases the input handle.
func (m *ClientMid) closeInput() error {
	r1, _, err := procMidiInStop.Call(uintptr(m.inHandle))
	if r1 != 0 {
		m.logger.Error(fmt.Sprintf("Failed to stop MIDI capture: %v", err))
		return err
	}

	r1, _, err = procMidiInClose.Call(uintptr(m.inHandle))
	if r1 != 0 {
		m.logger.Error(fmt.Sprintf("Failed to close MIDI device: %v", err))
		return err
	}

	m.inHandle = 0
	m.onMessage.Store((func(msg contracts.RawMessage))(nil))
	return nil
}
