package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game recording commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameMoveCmd())
	cmd.AddCommand(newGameResultCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var compID, whiteID, blackID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game between two registered players",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"competition_id": compID,
				"white_id":       whiteID,
				"black_id":       blackID,
			}

			var result Game
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&compID, "competition", "", "Competition ID (required)")
	cmd.Flags().StringVar(&whiteID, "white", "", "White player ID (required)")
	cmd.Flags().StringVar(&blackID, "black", "", "Black player ID (required)")
	_ = cmd.MarkFlagRequired("competition")
	_ = cmd.MarkFlagRequired("white")
	_ = cmd.MarkFlagRequired("black")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show a game with its moves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game
			if err := client.Get("/api/v1/games/"+args[0], &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameMoveCmd() *cobra.Command {
	var ply int
	var notation string

	cmd := &cobra.Command{
		Use:   "move <game-id>",
		Short: "Record a move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"ply":      ply,
				"notation": notation,
			}

			var result Game
			if err := client.Post("/api/v1/games/"+args[0]+"/moves", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&ply, "ply", 0, "Ply number, strictly increasing (required)")
	cmd.Flags().StringVar(&notation, "notation", "", "Move in algebraic notation (required)")
	_ = cmd.MarkFlagRequired("ply")
	_ = cmd.MarkFlagRequired("notation")

	return cmd
}

func newGameResultCmd() *cobra.Command {
	var result string

	cmd := &cobra.Command{
		Use:   "result <game-id>",
		Short: "Record a game's result and apply ratings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"result": result}

			var game Game
			if err := client.Post("/api/v1/games/"+args[0]+"/result", req, &game); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(game)
			return nil
		},
	}

	cmd.Flags().StringVar(&result, "result", "", "Result: white_win, black_win, or draw (required)")
	_ = cmd.MarkFlagRequired("result")

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/games/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Deleted game %s", args[0]))
			return nil
		},
	}
}
