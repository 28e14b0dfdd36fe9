package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"episodes/internal/clients/relay"
	"episodes/internal/models"
)

type assetGetter interface {
	GetAsset(ctx context.Context, id string) (*models.RemoteAsset, error)
}

var showCmd = &cobra.Command{
	Use:   "show <asset-id>",
	Short: "Show one asset through the relay",
	Long:  "Fetch a single asset through the relay's per-asset route and print its playback details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		endpoint := cfg.RelayEndpoint()
		if relayURL != "" {
			endpoint = relayURL
		}

		client := relay.NewClient(endpoint, 30*time.Second)
		return showAsset(cmd.Context(), client, args[0], cmd.OutOrStdout())
	},
}

func init() {
	showCmd.Flags().StringVar(&relayURL, "relay", "", "Relay list URL (defaults to ui.relay_url)")
}

func showAsset(ctx context.Context, client assetGetter, id string, w io.Writer) error {
	asset, err := client.GetAsset(ctx, id)
	if err != nil {
		return err
	}

	playback := asset.PlaybackID()
	if playback == "" {
		playback = "missing"
	}

	fmt.Fprintf(w, "Asset:       %s\n", asset.ID)
	fmt.Fprintf(w, "Status:      %s\n", asset.Status)
	fmt.Fprintf(w, "Duration:    %.1fs\n", asset.Duration)
	if asset.Passthrough != "" {
		fmt.Fprintf(w, "Passthrough: %s\n", asset.Passthrough)
	}
	fmt.Fprintf(w, "Playback:    %s\n", playback)
	return nil
}
