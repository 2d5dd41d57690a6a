package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompetitionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "competition",
		Aliases: []string{"comp"},
		Short:   "Competition management commands",
	}

	cmd.AddCommand(newCompetitionCreateCmd())
	cmd.AddCommand(newCompetitionGetCmd())
	cmd.AddCommand(newCompetitionListCmd())
	cmd.AddCommand(newCompetitionUpdateCmd())
	cmd.AddCommand(newCompetitionDeleteCmd())
	cmd.AddCommand(newCompetitionRegisterCmd())
	cmd.AddCommand(newCompetitionUnregisterCmd())
	cmd.AddCommand(newCompetitionPlayersCmd())
	cmd.AddCommand(newCompetitionGamesCmd())

	return cmd
}

func newCompetitionCreateCmd() *cobra.Command {
	var name, location, startDate string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new competition",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":       name,
				"location":   location,
				"start_date": startDate,
			}

			var result Competition
			if err := client.Post("/api/v1/competitions", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Competition name (required)")
	cmd.Flags().StringVar(&location, "location", "", "Location (required)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date, RFC 3339 (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("start-date")

	return cmd
}

func newCompetitionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <competition-id>",
		Short: "Show a competition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Competition
			if err := client.Get("/api/v1/competitions/"+args[0], &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newCompetitionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List competitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Competition
			if err := client.Get("/api/v1/competitions", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newCompetitionUpdateCmd() *cobra.Command {
	var name, location string

	cmd := &cobra.Command{
		Use:   "update <competition-id>",
		Short: "Update a competition's name and location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":     name,
				"location": location,
			}

			var result Competition
			if err := client.Put("/api/v1/competitions/"+args[0], req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Competition name (required)")
	cmd.Flags().StringVar(&location, "location", "", "Location (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func newCompetitionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <competition-id>",
		Short: "Delete a competition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/competitions/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Deleted competition %s", args[0]))
			return nil
		},
	}
}

func newCompetitionRegisterCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "register <competition-id>",
		Short: "Register a player for a competition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_id": playerID}

			var result Competition
			if err := client.Post("/api/v1/competitions/"+args[0]+"/registrations", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newCompetitionUnregisterCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "unregister <competition-id>",
		Short: "Remove a player's registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/competitions/" + args[0] + "/registrations/" + playerID); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Unregistered player %s", playerID))
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newCompetitionPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players <competition-id>",
		Short: "List a competition's registered players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player
			if err := client.Get("/api/v1/competitions/"+args[0]+"/players", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newCompetitionGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games <competition-id>",
		Short: "List a competition's games",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game
			if err := client.Get("/api/v1/competitions/"+args[0]+"/games", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
