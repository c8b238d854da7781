package contracts

// MIDICommand is a raw status byte used for event filtering.
type MIDICommand byte

const (
	// NoteOn is the status byte for a Note On event on channel 0 (0x90).
	NoteOn MIDICommand = 0x90
	// NoteOff is the status byte for a Note Off event on channel 0 (0x80).
	NoteOff MIDICommand = 0x80
)

// MIDIEventFilter restricts which raw messages reach the OpenInput callback.
// A message passes when its status byte's high nibble matches one of Commands.
type MIDIEventFilter struct {
	Commands []MIDICommand
}

// Allows reports whether the status byte passes the filter.
// A nil filter allows everything.
func (f *MIDIEventFilter) Allows(status byte) bool {
	if f == nil {
		return true
	}
	for _, cmd := range f.Commands {
		if status&0xF0 == byte(cmd)&0xF0 {
			return true
		}
	}
	return false
}

// ClientOptions defines the configuration options for the MIDI client.
type ClientOptions struct {
	Logger          Logger           // Logger for events and errors.
	LogLevel        LogLevel         // Level of logging to use.
	ClientName      string           // Name the client registers with the platform driver.
	MIDIEventFilter *MIDIEventFilter // Optional filter for incoming raw messages.
	NativeDriver    bool             // Use the per-OS native driver instead of the portable one.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the MIDI client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the MIDI client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithClientName sets the name the client registers with the platform driver.
func WithClientName(name string) Option {
	return func(opts *ClientOptions) {
		opts.ClientName = name
	}
}

// WithMIDIEventFilter sets the raw message filter for the MIDI client.
func WithMIDIEventFilter(filter MIDIEventFilter) Option {
	return func(opts *ClientOptions) {
		opts.MIDIEventFilter = &filter
	}
}

// WithNativeDriver selects the OS-native backend (CoreMIDI on macOS, winmm on
// Windows) instead of the portable rtmidi backend.
func WithNativeDriver() Option {
	return func(opts *ClientOptions) {
		opts.NativeDriver = true
	}
}
