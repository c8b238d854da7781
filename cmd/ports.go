package cmd

import (
	"fmt"

	"github.com/miditools/muse/sdk/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Lists available MIDI input and output ports",
	Long:  `Lists available MIDI input and output ports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPorts()
	},
}

func listPorts() error {
	client, err := midi.NewMIDIClient()
	if err != nil {
		return err
	}
	defer client.Stop()

	ins, err := client.ListInputDevices()
	if err != nil {
		return err
	}
	for i, dev := range ins {
		fmt.Printf("in (%d) : %s\n", i, dev.Name)
	}

	outs, err := client.ListOutputDevices()
	if err != nil {
		return err
	}
	for i, dev := range outs {
		fmt.Printf("out (%d) : %s\n", i, dev.Name)
	}
	return nil
}
