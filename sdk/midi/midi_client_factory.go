package midi

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/miditools/muse/internal/midi/mididarwin"
	"github.com/miditools/muse/internal/midi/midiportable"
	"github.com/miditools/muse/internal/midi/midiwindows"
	"github.com/miditools/muse/sdk/contracts"
)

// ErrUnsupportedOS is returned when no native MIDI backend exists for the
// operating system.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// nativeInitializers maps OS names to corresponding native MIDI client initializers.
var nativeInitializers = map[string]func(*contracts.ClientOptions) (contracts.ClientMIDI, error){
	"darwin":  mididarwin.NewMIDIClient,  // macOS (Darwin) CoreMIDI client.
	"windows": midiwindows.NewMIDIClient, // Windows winmm client.
}

// NewClient initializes a MIDI client for the current operating system.
// The portable rtmidi backend is the default everywhere; WithNativeDriver
// selects the OS-native backend instead, returning ErrUnsupportedOS where
// none exists.
func NewClient(opts *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	if !opts.NativeDriver {
		return midiportable.NewMIDIClient(opts)
	}
	if initializer, exists := nativeInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}
