package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerJoinCmd())
	cmd.AddCommand(newPlayerLeaveCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerPositionCmd())
	cmd.AddCommand(newPlayerMoveCmd())

	return cmd
}

func newPlayerJoinCmd() *cobra.Command {
	var name, team string

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join the match",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name, "team": team}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&team, "team", "", "Team: red or blue (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newPlayerLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <player-id>",
		Short: "Leave the match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LeaveResult

			if err := client.Post("/api/v1/players/"+args[0]+"/leave", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List online players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerPositionCmd() *cobra.Command {
	var x, y, vx, vy float64

	cmd := &cobra.Command{
		Use:   "position <player-id>",
		Short: "Set a player's position directly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]float64{
				"x":          x,
				"y":          y,
				"velocity_x": vx,
				"velocity_y": vy,
			}
			var result Player

			if err := client.Put("/api/v1/players/"+args[0]+"/position", req, &result); err != nil {
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

func newPlayerMoveCmd() *cobra.Command {
	var dirX, dirY, dt float64

	cmd := &cobra.Command{
		Use:   "move <player-id>",
		Short: "Move a player by direction over a time step",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("player id is required")
			}

			req := map[string]float64{
				"direction_x": dirX,
				"direction_y": dirY,
				"dt":          dt,
			}
			var result Player

			if err := client.Post("/api/v1/players/"+args[0]+"/move", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&dirX, "dx", 0, "X direction, -1 to 1")
	cmd.Flags().Float64Var(&dirY, "dy", 0, "Y direction, -1 to 1")
	cmd.Flags().Float64Var(&dt, "dt", 0.05, "Time step in seconds")

	return cmd
}
