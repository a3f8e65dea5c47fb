package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bprisby/arcade-backend-go/internal/model"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player ledger commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerPublishCmd())
	cmd.AddCommand(newPlayerDeleteCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "create <first-name> <last-name> <screen-name>",
		Short: "Register a new player",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"firstName":  args[0],
				"lastName":   args[1],
				"screenName": args[2],
			}
			if playerID != "" {
				req["playerId"] = playerID
			}

			var result model.Player
			if err := client.Post("/players/create", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "id", "", "Caller-supplied player id")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a player by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Player

			if err := client.Get(fmt.Sprintf("/players/%s", args[0]), &result); err != nil {
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
		Short: "List all players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayersResult

			if err := client.Get("/players/", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerUpdateCmd() *cobra.Command {
	var (
		firstName  string
		lastName   string
		screenName string
		tokens     int
		tickets    int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("first-name") {
				req["firstName"] = firstName
			}
			if cmd.Flags().Changed("last-name") {
				req["lastName"] = lastName
			}
			if cmd.Flags().Changed("screen-name") {
				req["screenName"] = screenName
			}
			if cmd.Flags().Changed("tokens") {
				req["tokens"] = tokens
			}
			if cmd.Flags().Changed("tickets") {
				req["tickets"] = tickets
			}

			var result model.Player
			if err := client.Put(fmt.Sprintf("/players/%s/update", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "New first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "New last name")
	cmd.Flags().StringVar(&screenName, "screen-name", "", "New screen name")
	cmd.Flags().IntVar(&tokens, "tokens", 0, "New token balance")
	cmd.Flags().IntVar(&tickets, "tickets", 0, "New ticket balance")

	return cmd
}

func newPlayerPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <id> <game-id> <tickets-earned> <high-score>",
		Short: "Publish a play session's stats for a player",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticketsEarned, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("tickets earned must be a number")
			}
			highScore, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("high score must be a number")
			}

			req := map[string]any{
				"gameId":        args[1],
				"ticketsEarned": ticketsEarned,
				"highScore":     highScore,
			}

			var result model.Player
			if err := client.Post(fmt.Sprintf("/players/%s/publishstats", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := client.Delete(fmt.Sprintf("/players/%s/delete", args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(msg)
			return nil
		},
	}
}
