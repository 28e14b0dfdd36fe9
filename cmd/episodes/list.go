package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"episodes/internal/clients/relay"
	"episodes/internal/core"
	"episodes/internal/models"
)

var relayURL string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List episodes as the page would show them",
	Long:  "Call the relay once, merge the assets with the episode catalog and print the result",
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
		assets, err := client.ListAssets(cmd.Context())
		if err != nil {
			return err
		}

		episodes, err := core.NewAssembler(core.Catalog, cfg.UI.Merge).Merge(assets)
		if err != nil {
			return err
		}

		if len(episodes) == 0 {
			fmt.Println("No episodes available yet.")
			return nil
		}

		fmt.Printf("\n%s (%d episodes)\n\n", cfg.App.ShowTitle, len(episodes))
		fmt.Println(episodeTable(episodes).View())
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&relayURL, "relay", "", "Relay list URL (defaults to ui.relay_url)")
}

func episodeTable(episodes []models.Episode) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Title", Width: 36},
		{Title: "Asset", Width: 28},
		{Title: "Playback", Width: 10},
	}

	rows := make([]table.Row, 0, len(episodes))
	for _, ep := range episodes {
		playback := "ready"
		if !ep.HasPlayback() {
			playback = "missing"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", ep.Number),
			ep.Title,
			ep.ID,
			playback,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}
