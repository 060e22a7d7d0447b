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
	transactionListFlags listFlags
	transactionAdd       dto.CreateTransactionRequest
	transactionAddAmount string
	transactionDeleteYes bool
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"transaction"},
	Short:   "Manage income, expense and travel transactions",
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listFilter, err := transactionListFlags.parse(handler.TransactionFields)
		if err != nil {
			return err
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		transactions, err := services.Transactions.ListTransactions(cmd.Context(), repository.TransactionFilter{ListFilter: listFilter})
		if err != nil {
			return err
		}

		resp := dto.ToTransactionResponses(transactions)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			if len(resp) == 0 {
				fmt.Fprintln(w, "No transactions found")
				return
			}
			writeTransactionRows(w, resp)
		})
	},
}

var transactionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one transaction",
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

		transaction, err := services.Transactions.GetTransaction(cmd.Context(), id)
		if err != nil {
			return err
		}

		resp := dto.ToTransactionResponse(transaction)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			writeTransactionRows(w, []dto.TransactionResponse{resp})
		})
	},
}

var transactionsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := transactionAdd
		if transactionAddAmount != "" {
			amount, err := domain.ParseMoney(transactionAddAmount)
			if err != nil {
				return err
			}
			req.Amount = amount
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		transaction := req.ToDomain()
		if err := services.Transactions.CreateTransaction(cmd.Context(), transaction); err != nil {
			return err
		}

		resp := dto.ToTransactionResponse(transaction)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			writeTransactionRows(w, []dto.TransactionResponse{resp})
		})
	},
}

var transactionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		if !confirm(cmd, transactionDeleteYes, fmt.Sprintf("Are you sure you want to delete transaction %d?", id)) {
			return nil
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.Transactions.DeleteTransaction(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Transaction %d deleted\n", id)
		return nil
	},
}

func writeTransactionRows(w *tabwriter.Writer, transactions []dto.TransactionResponse) {
	fmt.Fprintln(w, "ID\tTITLE\tCLIENT\tTYPE\tAMOUNT\tCREATED AT")
	for _, t := range transactions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.Client, t.Type, t.Amount, t.CreatedAt.Format(timeLayout))
	}
}

func init() {
	transactionListFlags.register(transactionsListCmd, "type|expense", "amount|desc")

	f := transactionsAddCmd.Flags()
	f.StringVar(&transactionAdd.Title, "title", "", "description")
	f.StringVar(&transactionAdd.Client, "client", "", "client name")
	f.StringVar(&transactionAddAmount, "amount", "", "amount, e.g. 12.50")
	f.StringVar(&transactionAdd.Type, "type", "", "income, expense or travel")

	transactionsDeleteCmd.Flags().BoolVarP(&transactionDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(transactionsCmd)
	transactionsCmd.AddCommand(transactionsListCmd)
	transactionsCmd.AddCommand(transactionsGetCmd)
	transactionsCmd.AddCommand(transactionsAddCmd)
	transactionsCmd.AddCommand(transactionsDeleteCmd)
}
