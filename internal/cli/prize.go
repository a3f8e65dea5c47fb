package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bprisby/arcade-backend-go/internal/model"
)

func newPrizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prize",
		Short: "Prize vault commands",
	}

	cmd.AddCommand(newPrizeCreateCmd())
	cmd.AddCommand(newPrizeGetCmd())
	cmd.AddCommand(newPrizeListCmd())
	cmd.AddCommand(newPrizeUpdateCmd())
	cmd.AddCommand(newPrizeRedeemCmd())
	cmd.AddCommand(newPrizeDeleteCmd())

	return cmd
}

func newPrizeCreateCmd() *cobra.Command {
	var (
		description string
		image       string
	)

	cmd := &cobra.Command{
		Use:   "create <name> <ticket-cost> <quantity>",
		Short: "Stock a new prize",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticketCost, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("ticket cost must be a number")
			}
			quantity, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("quantity must be a number")
			}

			req := map[string]any{
				"name":              args[0],
				"ticketCost":        ticketCost,
				"availableQuantity": quantity,
			}
			if description != "" {
				req["description"] = description
			}
			if image != "" {
				req["image"] = image
			}

			var result model.Prize
			if err := client.Post("/prizes/create", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Prize description")
	cmd.Flags().StringVar(&image, "image", "", "Prize image reference")

	return cmd
}

func newPrizeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a prize by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Prize

			if err := client.Get(fmt.Sprintf("/prizes/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPrizeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all prizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PrizesResult

			if err := client.Get("/prizes/", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPrizeUpdateCmd() *cobra.Command {
	var (
		name        string
		description string
		ticketCost  int
		quantity    int
		image       string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a prize",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("description") {
				req["description"] = description
			}
			if cmd.Flags().Changed("ticket-cost") {
				req["ticketCost"] = ticketCost
			}
			if cmd.Flags().Changed("quantity") {
				req["availableQuantity"] = quantity
			}
			if cmd.Flags().Changed("image") {
				req["image"] = image
			}

			var result model.Prize
			if err := client.Put(fmt.Sprintf("/prizes/%s/update", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().IntVar(&ticketCost, "ticket-cost", 0, "New ticket cost")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "New available quantity")
	cmd.Flags().StringVar(&image, "image", "", "New image reference")

	return cmd
}

func newPrizeRedeemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redeem <id> <player-id>",
		Short: "Redeem a prize for a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"playerId": args[1]}

			var result model.Prize
			if err := client.Post(fmt.Sprintf("/prizes/%s/redeem", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPrizeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a prize",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := client.Delete(fmt.Sprintf("/prizes/%s/delete", args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(msg)
			return nil
		},
	}
}
