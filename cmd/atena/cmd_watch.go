package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// watchCmd keeps the provider alive and reprints the configuration on every
// reload until interrupted.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor the document and reprint the configuration on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newProvider()
		if err != nil {
			return err
		}
		defer provider.Close()

		fmt.Printf("Watching %s (Ctrl+C to stop)\n\n", provider.Path())
		printSnapshot(provider.Snapshot())

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()

		lastID := provider.Snapshot().ID
		for {
			select {
			case <-sigCh:
				fmt.Println("\nStopping watch.")
				return nil
			case <-ticker.C:
				snap := provider.Snapshot()
				if snap.ID == lastID {
					continue
				}
				lastID = snap.ID
				fmt.Printf("\n--- reloaded at %s ---\n\n", snap.ModTime.Format(time.RFC3339))
				printSnapshot(snap)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
