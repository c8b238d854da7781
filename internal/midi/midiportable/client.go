// Package midiportable implements the MIDI device shim on the portable rtmidi
// driver. It is the default backend on every platform.
package midiportable

import (
	"fmt"
	"sync"

	"github.com/miditools/muse/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Client manages MIDI ports through rtmidi.
type Client struct {
	logger contracts.Logger
	filter *contracts.MIDIEventFilter
	drv    *rtmididrv.Driver

	mu       sync.Mutex
	in       drivers.In
	stopIn   func()
	out      drivers.Out
	send     func(midi.Message) error
	stopOnce sync.Once
}

// NewMIDIClient initializes the rtmidi driver and returns a client over it.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("error initializing rtmidi driver: %w", err)
	}
	options.Logger.Info("MIDI client successfully created")

	return &Client{
		logger: options.Logger,
		filter: options.MIDIEventFilter,
		drv:    drv,
	}, nil
}

// ListInputDevices enumerates input ports in driver order.
func (c *Client) ListInputDevices() ([]contracts.DeviceInfo, error) {
	ins, err := c.drv.Ins()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI inputs: %w", err)
	}
	devices := make([]contracts.DeviceInfo, len(ins))
	for i, in := range ins {
		devices[i] = contracts.DeviceInfo{Name: in.String(), EntityName: in.String()}
	}
	return devices, nil
}

// ListOutputDevices enumerates output ports in driver order.
func (c *Client) ListOutputDevices() ([]contracts.DeviceInfo, error) {
	outs, err := c.drv.Outs()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI outputs: %w", err)
	}
	devices := make([]contracts.DeviceInfo, len(outs))
	for i, out := range outs {
		devices[i] = contracts.DeviceInfo{Name: out.String(), EntityName: out.String()}
	}
	return devices, nil
}

// OpenInput connects to the named input port and forwards every raw message
// to onMessage. The callback runs on the driver's listener goroutine.
func (c *Client) OpenInput(name string, onMessage func(msg contracts.RawMessage)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ins, err := c.drv.Ins()
	if err != nil {
		return fmt.Errorf("error listing MIDI inputs: %w", err)
	}
	var in drivers.In
	for _, p := range ins {
		if p.String() == name {
			in = p
			break
		}
	}
	if in == nil {
		return fmt.Errorf("%w: %q", contracts.ErrDeviceNotFound, name)
	}

	if c.stopIn != nil {
		c.stopIn()
		c.stopIn = nil
	}

	filter := c.filter
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		raw := []byte(msg)
		if len(raw) == 0 {
			return
		}
		if !filter.Allows(raw[0]) {
			return
		}
		onMessage(contracts.RawMessage{
			Timestamp: uint64(timestampms),
			Status:    raw[0],
			Data:      raw[1:],
		})
	})
	if err != nil {
		return fmt.Errorf("error listening to %q: %w", name, err)
	}

	c.in = in
	c.stopIn = stop
	c.logger.Info("MIDI input connected", c.logger.Field().String("device", name))
	return nil
}

// OpenOutput connects to the named output port.
func (c *Client) OpenOutput(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	outs, err := c.drv.Outs()
	if err != nil {
		return fmt.Errorf("error listing MIDI outputs: %w", err)
	}
	var out drivers.Out
	for _, p := range outs {
		if p.String() == name {
			out = p
			break
		}
	}
	if out == nil {
		return fmt.Errorf("%w: %q", contracts.ErrDeviceNotFound, name)
	}

	if err := out.Open(); err != nil {
		return fmt.Errorf("error opening output %q: %w", name, err)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return fmt.Errorf("error preparing sender for %q: %w", name, err)
	}

	c.out = out
	c.send = send
	c.logger.Info("MIDI output connected", c.logger.Field().String("device", name))
	return nil
}

// Send writes one raw message to the open output port.
func (c *Client) Send(data []byte) error {
	c.mu.Lock()
	send := c.send
	c.mu.Unlock()

	if send == nil {
		return contracts.ErrNoOutputOpen
	}
	return send(midi.Message(data))
}

// Stop closes any open ports and shuts the driver down.
func (c *Client) Stop() error {
	var err error
	c.stopOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.stopIn != nil {
			c.stopIn()
			c.stopIn = nil
		}
		if c.out != nil {
			if cerr := c.out.Close(); cerr != nil {
				err = cerr
			}
			c.out = nil
			c.send = nil
		}
		if cerr := c.drv.Close(); cerr != nil && err == nil {
			err = cerr
		}
		c.logger.Info("MIDI client stopped")
	})
	return err
}
