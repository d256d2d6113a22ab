package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameGuessCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <language>",
		Short: "Start a new game (en, es, or fr)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"language": args[0]}
			var result CreateGameResult

			if err := client.Post("/api/games", req, &result); err != nil {
				return err
			}

			// The returned token is scoped to the new game; later guesses need it
			if err := cfg.SaveToken(result.AccessToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			client.SetToken(result.AccessToken)

			var game GameResult
			if err := client.Get("/api/games/"+result.GameID, &game); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(game)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game_id>",
		Short: "Show the state of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameResult

			if err := client.Get("/api/games/"+args[0], &result); err != nil {
				return err
			}

			// Keep the refreshed game token
			if result.AccessToken != "" {
				if err := cfg.SaveToken(result.AccessToken); err != nil {
					return fmt.Errorf("failed to save token: %w", err)
				}
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <game_id> <letter>",
		Short: "Guess a letter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"letter": args[1]}
			var result GameResult

			if err := client.Put("/api/games/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game_id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MessageResult

			if err := client.Delete("/api/games/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(result.Message)
			return nil
		},
	}
}
