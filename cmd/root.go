package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "muse",
	Short: "Pitch arithmetic and MIDI event toolkit",
	Long:  `muse models notes, intervals, chords and scales, and translates raw MIDI byte streams to and from typed events.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
