package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/martijn/bizdesk/internal/api/dto"
	"github.com/martijn/bizdesk/internal/api/handler"
	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
)

var (
	invoiceListFlags  listFlags
	invoiceAdd        dto.CreateInvoiceRequest
	invoiceAddAmount  string
	invoiceAddDueDate string
	invoiceAddItems   int
	invoiceDeleteYes  bool
)

var invoicesCmd = &cobra.Command{
	Use:     "invoices",
	Aliases: []string{"invoice"},
	Short:   "Manage invoices",
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listFilter, err := invoiceListFlags.parse(handler.InvoiceFields)
		if err != nil {
			return err
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		invoices, err := services.Invoices.ListInvoices(cmd.Context(), repository.InvoiceFilter{ListFilter: listFilter})
		if err != nil {
			return err
		}

		resp := dto.ToInvoiceResponses(invoices)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			if len(resp) == 0 {
				fmt.Fprintln(w, "No invoices found")
				return
			}
			writeInvoiceRows(w, resp)
		})
	},
}

var invoicesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		invoice, err := services.Invoices.GetInvoice(cmd.Context(), id)
		if err != nil {
			return err
		}

		return renderInvoice(cmd, invoice)
	},
}

var invoicesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an invoice",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := invoiceAdd
		req.Items = &invoiceAddItems
		if invoiceAddAmount != "" {
			amount, err := domain.ParseMoney(invoiceAddAmount)
			if err != nil {
				return err
			}
			req.Amount = amount
		}
		if invoiceAddDueDate != "" {
			dueDate, err := domain.ParseDate(invoiceAddDueDate)
			if err != nil {
				return err
			}
			req.DueDate = dueDate
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		invoice := req.ToDomain()
		if err := services.Invoices.CreateInvoice(cmd.Context(), invoice); err != nil {
			return err
		}

		return renderInvoice(cmd, invoice)
	},
}

var invoicesStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change the status of an invoice",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		invoice, err := services.Invoices.UpdateInvoiceStatus(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}

		return renderInvoice(cmd, invoice)
	},
}

var invoicesSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Count and total invoices per status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		totals, err := services.Invoices.InvoiceSummary(cmd.Context())
		if err != nil {
			return err
		}

		resp := dto.ToInvoiceSummaryResponse(totals)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			fmt.Fprintln(w, "STATUS\tCOUNT\tTOTAL")
			for _, t := range resp {
				fmt.Fprintf(w, "%s\t%d\t%s\n", t.Status, t.Count, t.Total)
			}
		})
	},
}

var invoicesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		if !confirm(cmd, invoiceDeleteYes, fmt.Sprintf("Are you sure you want to delete invoice %d?", id)) {
			return nil
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.Invoices.DeleteInvoice(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Invoice %d deleted\n", id)
		return nil
	},
}

func renderInvoice(cmd *cobra.Command, invoice *domain.Invoice) error {
	resp := dto.ToInvoiceResponse(invoice)
	return render(cmd, resp, func(w *tabwriter.Writer) {
		writeInvoiceRows(w, []dto.InvoiceResponse{resp})
	})
}

func writeInvoiceRows(w *tabwriter.Writer, invoices []dto.InvoiceResponse) {
	fmt.Fprintln(w, "ID\tNUMBER\tCLIENT\tAMOUNT\tITEMS\tDUE DATE\tSTATUS")
	for _, i := range invoices {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			i.ID, i.InvoiceNumber, i.ClientName, i.Amount, i.Items, i.DueDate, i.Status)
	}
}

func init() {
	invoiceListFlags.register(invoicesListCmd, "status|Paid,amount|gte|100", "due_date|asc")

	f := invoicesAddCmd.Flags()
	f.StringVar(&invoiceAdd.InvoiceNumber, "number", "", "unique invoice number")
	f.StringVar(&invoiceAdd.ClientName, "client", "", "client name")
	f.StringVar(&invoiceAddAmount, "amount", "", "amount, e.g. 1250.00")
	f.IntVar(&invoiceAddItems, "items", domain.DefaultInvoiceItems, "number of line items")
	f.StringVar(&invoiceAddDueDate, "due-date", "", "due date (YYYY-MM-DD)")
	f.StringVar(&invoiceAdd.Status, "status", "", "status (default Pending)")

	invoicesDeleteCmd.Flags().BoolVarP(&invoiceDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(invoicesCmd)
	invoicesCmd.AddCommand(invoicesListCmd)
	invoicesCmd.AddCommand(invoicesGetCmd)
	invoicesCmd.AddCommand(invoicesAddCmd)
	invoicesCmd.AddCommand(invoicesStatusCmd)
	invoicesCmd.AddCommand(invoicesSummaryCmd)
	invoicesCmd.AddCommand(invoicesDeleteCmd)
}
