package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bprisby/arcade-backend-go/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game catalog commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameUpdateCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <token-cost>",
		Short: "Add a game to the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenCost, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("token cost must be a number")
			}

			req := map[string]any{"name": args[0], "tokenCost": tokenCost}
			var result model.Game

			if err := client.Post("/games/create", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a game by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Game

			if err := client.Get(fmt.Sprintf("/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GamesResult

			if err := client.Get("/games/", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameUpdateCmd() *cobra.Command {
	var (
		name      string
		tokenCost int
		topPlayer string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("token-cost") {
				req["tokenCost"] = tokenCost
			}
			if cmd.Flags().Changed("top-player") {
				req["topPlayer"] = topPlayer
			}

			var result model.Game
			if err := client.Put(fmt.Sprintf("/games/%s/update", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().IntVar(&tokenCost, "token-cost", 0, "New token cost")
	cmd.Flags().StringVar(&topPlayer, "top-player", "", "New top player")

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a game from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := client.Delete(fmt.Sprintf("/games/%s/delete", args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(msg)
			return nil
		},
	}
}
