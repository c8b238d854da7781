package cmd

import (
	"time"

	"github.com/miditools/muse/sdk/midi"
	"github.com/miditools/muse/sdk/music"
	"github.com/spf13/cobra"
)

var (
	playDurationMs int
	playVelocity   uint8
)

func init() {
	playCmd.Flags().IntVar(&playDurationMs, "duration", 100, "note duration in milliseconds")
	playCmd.Flags().Uint8Var(&playVelocity, "velocity", 127, "note velocity (0-127)")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <device>",
	Short: "Plays a short demo sequence on an output device",
	Long:  `Plays a short demo sequence on an output device`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(args[0])
	},
}

func play(device string) error {
	client, err := midi.NewMIDIClient()
	if err != nil {
		return err
	}
	defer client.Stop()

	if err := client.OpenOutput(device); err != nil {
		return err
	}

	duration := time.Duration(playDurationMs) * time.Millisecond
	for _, token := range []string{"C4", "E4", "G4"} {
		note, err := music.ParseNote(token)
		if err != nil {
			return err
		}
		if err := note.Play(client, duration, playVelocity); err != nil {
			return err
		}
	}

	chord, err := music.ChordFromTokens([]string{"C4", "E4", "G4", "B4"})
	if err != nil {
		return err
	}
	return chord.Play(client, 5*duration, playVelocity)
}
