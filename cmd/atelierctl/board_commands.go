package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	httpapi "atelier/internal/adapters/in/http"

	"github.com/spf13/cobra"
)

func newBoardCommands(ctx *commandContext) []*cobra.Command {
	kanban := &cobra.Command{
		Use:   "kanban",
		Short: "Show the production board",
		RunE: func(cmd *cobra.Command, args []string) error {
			var columns []httpapi.KanbanColumn
			if err := ctx.client().do(cmd.Context(), http.MethodGet, "/kanban", nil, &columns); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderKanban(columns))
			return nil
		},
	}

	lists := []struct {
		use, short, path string
	}{
		{"pool", "Show orders waiting in the pool", "/pool"},
		{"archives", "Show delivered orders", "/archives"},
	}
	commands := []*cobra.Command{kanban}
	for _, l := range lists {
		commands = append(commands, &cobra.Command{
			Use:   l.use,
			Short: l.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listOrders(cmd, ctx, l.path)
			},
		})
	}
	return commands
}

func listOrders(cmd *cobra.Command, ctx *commandContext, path string) error {
	var orders []httpapi.Order
	if err := ctx.client().do(cmd.Context(), http.MethodGet, path, nil, &orders); err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No orders")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderOrders(orders))
	return nil
}

func renderKanban(columns []httpapi.KanbanColumn) string {
	var b strings.Builder
	for _, col := range columns {
		fmt.Fprintf(&b, "%s (%d)\n", col.Label, len(col.Orders))
		if len(col.Orders) > 0 {
			b.WriteString(renderOrders(col.Orders))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderOrders(orders []httpapi.Order) string {
	headers := []string{"Ticket", "Client", "Status", "Workstation", "Date", "Price"}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		name := o.ClientName
		if name == "" {
			name = o.ClientID
		}
		rows = append(rows, []string{
			o.TicketID,
			name,
			o.StatusLabel,
			o.WorkstationName,
			o.Date.Format("2006-01-02"),
			formatPrice(o.Price),
		})
	}
	return renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight})
}

func formatPrice(p *int64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatInt(*p, 10)
}
