package message

import "fmt"

// need checks that the raw message carries at least n data bytes.
func (r Raw) need(n int) error {
	if len(r.Data) < n {
		return fmt.Errorf("%w: status %#02x needs %d data bytes, got %d",
			ErrMalformedMessage, r.Status, n, len(r.Data))
	}
	return nil
}

// Parse classifies the raw message by the status byte's high nibble. The low
// nibble is the channel, except for channel-mode Control Change messages,
// which decode with the channel forced to ChannelModeChannel. Unrecognized
// high nibbles decode to Unknown rather than failing.
func (r Raw) Parse() (Event, error) {
	ev := Event{Channel: r.Status & 0x0F, Stamp: r.Stamp}

	switch r.Status >> 4 {
	case 0x8:
		if err := r.need(2); err != nil {
			return Event{}, err
		}
		ev.Status = NoteOff
		ev.Data = [2]Data{{KeyNumber, r.Data[0]}, {Velocity, r.Data[1]}}
	case 0x9:
		if err := r.need(2); err != nil {
			return Event{}, err
		}
		ev.Status = NoteOn
		ev.Data = [2]Data{{KeyNumber, r.Data[0]}, {Velocity, r.Data[1]}}
	case 0xA:
		if err := r.need(2); err != nil {
			return Event{}, err
		}
		ev.Status = PolyphonicKeyPressure
		ev.Data = [2]Data{{KeyNumber, r.Data[0]}, {PressureAmount, r.Data[1]}}
	case 0xB:
		return r.parseControlChange(ev)
	case 0xC:
		if err := r.need(1); err != nil {
			return Event{}, err
		}
		ev.Status = ProgramChange
		ev.Data = [2]Data{{Kind: ProgramNumber, Value: r.Data[0]}, {Kind: None}}
	case 0xD:
		if err := r.need(1); err != nil {
			return Event{}, err
		}
		ev.Status = ChannelPressure
		ev.Data = [2]Data{{Kind: PressureValue, Value: r.Data[0]}, {Kind: None}}
	case 0xE:
		if err := r.need(2); err != nil {
			return Event{}, err
		}
		ev.Status = PitchBend
		ev.Data = [2]Data{{MSB, r.Data[0]}, {LSB, r.Data[1]}}
	default:
		ev.Status = Unknown
	}
	return ev, nil
}

// parseControlChange decodes a Control Change message. Reserved controller
// numbers 0x79-0x7F mark channel-mode messages addressing the whole
// instrument; everything else is an ordinary controller update.
func (r Raw) parseControlChange(ev Event) (Event, error) {
	if err := r.need(2); err != nil {
		return Event{}, err
	}
	ev.Status = ControlChange

	var mode DataKind
	switch r.Data[1] {
	case 0x79:
		mode = ResetAllControllers
	case 0x7A:
		// Local Control carries its on/off value in the following byte.
		if err := r.need(3); err != nil {
			return Event{}, err
		}
		ev.Channel = ChannelModeChannel
		ev.Data = [2]Data{{Kind: LocalControl, Value: r.Data[2]}, {Kind: None}}
		return ev, nil
	case 0x7B:
		mode = AllNotesOff
	case 0x7C:
		mode = OmniModeOff
	case 0x7D:
		mode = OmniModeOn
	case 0x7E:
		mode = MonoModeOn
	case 0x7F:
		mode = PolyModeOn
	default:
		ev.Data = [2]Data{{ControllerNumber, r.Data[0]}, {ControllerValue, r.Data[1]}}
		return ev, nil
	}

	ev.Channel = ChannelModeChannel
	ev.Data = [2]Data{{Kind: mode}, {Kind: None}}
	return ev, nil
}
