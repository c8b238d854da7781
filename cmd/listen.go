package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/miditools/muse/internal/logger"
	"github.com/miditools/muse/sdk/contracts"
	"github.com/miditools/muse/sdk/message"
	"github.com/miditools/muse/sdk/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen <device>",
	Short: "Decodes and prints incoming MIDI events from a device",
	Long:  `Decodes and prints incoming MIDI events from a device`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(args[0])
	},
}

func listen(device string) error {
	log := logger.NewZapLogger()

	client, err := midi.NewMIDIClient(contracts.WithLogger(log))
	if err != nil {
		return err
	}
	defer client.Stop()

	// Runs on the driver's delivery thread; the decoder is stateless so no
	// synchronization is needed here.
	onMessage := func(raw contracts.RawMessage) {
		ev, err := message.NewRaw(raw.Timestamp, raw.Status, raw.Data).Parse()
		if err != nil {
			log.Warn("Dropping malformed message", log.Field().Error("error", err))
			return
		}
		fmt.Println(ev)
	}

	if err := client.OpenInput(device, onMessage); err != nil {
		return err
	}

	fmt.Println("Listening... press Ctrl+C to stop.")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
