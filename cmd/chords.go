package cmd

import (
	"fmt"

	"github.com/miditools/muse/sdk/midifile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords <file.mid>",
	Short: "Extracts chords from a MIDI file",
	Long:  `Extracts chords from a MIDI file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := midifile.ExtractChords(args[0])
		if err != nil {
			return err
		}
		for _, chord := range chords {
			fmt.Println(chord)
		}
		return nil
	},
}
