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

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerRatingCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newLeaderboardCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var first, last, email string
	var rating int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"first_name": first,
				"last_name":  last,
				"email":      email,
			}
			if cmd.Flags().Changed("rating") {
				req["rating"] = rating
			}

			var result Player
			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&last, "last-name", "", "Last name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().IntVar(&rating, "rating", 0, "Initial Elo rating (default 1200)")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/players"
			if query != "" {
				path += "?q=" + query
			}

			var result []Player
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by name or email")

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var first, last, email string

	cmd := &cobra.Command{
		Use:   "update <player-id>",
		Short: "Update a player's name and email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"first_name": first,
				"last_name":  last,
				"email":      email,
			}

			var result Player
			if err := client.Put("/api/v1/players/"+args[0], req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&last, "last-name", "", "Last name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newPlayerRatingCmd() *cobra.Command {
	var rating int

	cmd := &cobra.Command{
		Use:   "rating <player-id>",
		Short: "Correct a player's rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"rating": rating}

			var result Player
			if err := client.Put("/api/v1/players/"+args[0]+"/rating", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "New Elo rating (required)")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <player-id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Deleted player %s", args[0]))
			return nil
		},
	}
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the rating leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player
			if err := client.Get("/api/v1/players/leaderboard", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
