package cli

import (
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match management commands",
	}

	cmd.AddCommand(newMatchInitCmd())
	cmd.AddCommand(newMatchSnapshotCmd())
	cmd.AddCommand(newMatchScoreCmd())

	return cmd
}

func newMatchInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize or reset the match",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result InitializeResult

			if err := client.Post("/api/v1/match/initialize", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Show the current match snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Snapshot

			if err := client.Get("/api/v1/snapshot", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <team>",
		Short: "Record a goal for a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"team": args[0]}
			var result GameState

			if err := client.Post("/api/v1/goals", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBallCmd() *cobra.Command {
	var x, y, vx, vy float64

	cmd := &cobra.Command{
		Use:   "ball",
		Short: "Set the ball position and velocity",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]float64{
				"x":          x,
				"y":          y,
				"velocity_x": vx,
				"velocity_y": vy,
			}
			var result Ball

			if err := client.Put("/api/v1/ball", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&x, "x", "x", 0, "X coordinate (required)")
	cmd.Flags().Float64VarP(&y, "y", "y", 0, "Y coordinate (required)")
	cmd.Flags().Float64Var(&vx, "vx", 0, "X velocity")
	cmd.Flags().Float64Var(&vy, "vy", 0, "Y velocity")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}
