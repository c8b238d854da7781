package main

import (
	"fmt"

	"github.com/miditools/muse/internal/logger"
	"github.com/miditools/muse/sdk/contracts"
	"github.com/miditools/muse/sdk/message"
	"github.com/miditools/muse/sdk/midi"
)

func main() {
	log := logger.NewZapLogger()

	client, err := midi.NewMIDIClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithMIDIEventFilter(contracts.MIDIEventFilter{
			Commands: []contracts.MIDICommand{contracts.NoteOn, contracts.NoteOff},
		}),
	)
	if err != nil {
		log.Error("Failed to initialize MIDI client", log.Field().Error("error", err))
		return
	}
	defer client.Stop()

	devices, err := client.ListInputDevices()
	if err != nil || len(devices) == 0 {
		log.Error("No MIDI devices found or error listing devices", log.Field().Error("error", err))
		return
	}
	fmt.Println("Available MIDI devices:", devices)

	onMessage := func(raw contracts.RawMessage) {
		ev, err := message.NewRaw(raw.Timestamp, raw.Status, raw.Data).Parse()
		if err != nil {
			log.Warn("Dropping malformed message", log.Field().Error("error", err))
			return
		}
		log.Info("MIDI Event",
			log.Field().Uint64("Timestamp", ev.Stamp),
			log.Field().String("Status", ev.Status.String()),
			log.Field().Uint8("Channel", ev.Channel),
			log.Field().String("Data", fmt.Sprintf("%s %s", ev.Data[0], ev.Data[1])),
		)
	}

	if err := client.OpenInput(devices[0].Name, onMessage); err != nil {
		log.Error("Failed to open MIDI input", log.Field().Error("error", err))
		return
	}

	fmt.Println("Capturing MIDI events... Press Ctrl+C to exit.")
	select {} // Run indefinitely
}
