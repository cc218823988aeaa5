package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream live match snapshots over websocket",
		Long: `Connect to the snapshot websocket and print match state as it changes.

Each message is a full snapshot: every online player, the ball, and the
current score. Press Ctrl+C to disconnect.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return streamSnapshots(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output snapshots as JSON lines")

	return cmd
}

func streamSnapshots(jsonOutput bool) error {
	url := strings.TrimSuffix(cfg.ServerURL, "/") + "/api/v1/ws"
	url = strings.Replace(url, "http://", "ws://", 1)
	url = strings.Replace(url, "https://", "wss://", 1)

	// Set up cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("connection failed: %s", resp.Status)
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// Close the connection when the context is cancelled so the read
	// loop below unblocks
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	if !jsonOutput {
		fmt.Println("Connected; streaming snapshots")
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				if !jsonOutput {
					fmt.Println("\nDisconnected")
				}
				return nil
			}
			return fmt.Errorf("stream error: %w", err)
		}

		printSnapshotMessage(data, jsonOutput)
	}
}

func printSnapshotMessage(data []byte, jsonOutput bool) {
	if jsonOutput {
		fmt.Println(string(data))
		return
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		fmt.Printf("[%s] unreadable snapshot: %s\n", time.Now().Format("15:04:05"), err)
		return
	}

	fmt.Printf("[%s] red %d - %d blue | ball (%.0f, %.0f) | %d online\n",
		time.Now().Format("15:04:05"),
		snap.GameState.RedScore, snap.GameState.BlueScore,
		snap.Ball.X, snap.Ball.Y,
		len(snap.Players),
	)
}
