package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	httpapi "atelier/internal/adapters/in/http"
	"atelier/internal/core/domain/model/order"

	"github.com/spf13/cobra"
)

var errAmbiguousTarget = errors.New("give exactly one of a workstation id, --pool or --unassign")

func newOrderCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Create and move orders",
	}
	cmd.AddCommand(newOrderCreateCommand(ctx))
	cmd.AddCommand(newOrderStatusCommand(ctx))
	cmd.AddCommand(newOrderAssignCommand(ctx))
	cmd.AddCommand(newOrderClaimCommand(ctx))
	cmd.AddCommand(newOrderPriceCommand(ctx))
	return cmd
}

func newOrderCreateCommand(ctx *commandContext) *cobra.Command {
	var body httpapi.NewOrder
	var price int64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("price") {
				body.Price = &price
			}
			var created httpapi.CreatedOrder
			if err := ctx.client().do(cmd.Context(), http.MethodPost, "/orders", body, &created); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s created with ticket %s\n", created.ID, created.TicketID)
			return nil
		},
	}

	cmd.Flags().StringVar(&body.ClientID, "client", "", "Client id")
	cmd.Flags().StringVar(&body.ModelID, "model", "", "Model id")
	cmd.Flags().StringVar(&body.Date, "date", "", "Delivery date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&price, "price", 0, "Agreed price")
	cmd.Flags().StringVar(&body.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newOrderStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Move an order to a pipeline status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.client().do(cmd.Context(), http.MethodPost, "/orders/"+args[0]+"/status",
				httpapi.StatusRequest{Status: args[1]}, nil)
		},
	}
}

func newOrderAssignCommand(ctx *commandContext) *cobra.Command {
	var pool, unassign bool

	cmd := &cobra.Command{
		Use:   "assign <order-id> [workstation-id]",
		Short: "Route an order to a workstation, the pool or nowhere",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := assignTarget(args, pool, unassign)
			if err != nil {
				return err
			}
			return ctx.client().do(cmd.Context(), http.MethodPost, "/orders/"+args[0]+"/assign",
				httpapi.AssignRequest{WorkstationID: target}, nil)
		},
	}
	cmd.Flags().BoolVar(&pool, "pool", false, "Send the order to the waiting room")
	cmd.Flags().BoolVar(&unassign, "unassign", false, "Clear the routing")
	return cmd
}

func newOrderClaimCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "claim <order-id>",
		Short: "Take an order from the pool for this workstation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result httpapi.ClaimResult
			if err := ctx.client().do(cmd.Context(), http.MethodPost, "/orders/"+args[0]+"/claim", nil, &result); err != nil {
				return err
			}
			if result.Claimed {
				fmt.Fprintln(cmd.OutOrStdout(), "Order claimed")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Claim declined: %s\n", result.Reason)
			}
			return nil
		},
	}
}

func newOrderPriceCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "price <order-id> <amount|none>",
		Short: "Set or clear the price of an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body httpapi.PriceRequest
			if args[1] != "none" {
				amount, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", args[1], err)
				}
				body.Price = &amount
			}
			return ctx.client().do(cmd.Context(), http.MethodPost, "/orders/"+args[0]+"/price", body, nil)
		},
	}
}

// assignTarget turns the assign arguments into the routing target string.
func assignTarget(args []string, pool, unassign bool) (string, error) {
	hasID := len(args) == 2
	chosen := 0
	for _, b := range []bool{hasID, pool, unassign} {
		if b {
			chosen++
		}
	}
	if chosen != 1 {
		return "", errAmbiguousTarget
	}
	switch {
	case pool:
		return order.WaitingRoomID, nil
	case unassign:
		return "", nil
	default:
		return args[1], nil
	}
}
