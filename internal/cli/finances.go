package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/martijn/bizdesk/internal/api/dto"
)

var financesCmd = &cobra.Command{
	Use:   "finances",
	Short: "Financial overviews",
}

var financesSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, expenses, travel and net",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		summary, err := services.Transactions.FinanceSummary(cmd.Context())
		if err != nil {
			return err
		}

		resp := dto.ToFinanceSummaryResponse(summary)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			fmt.Fprintf(w, "Income:\t%s\n", resp.Income)
			fmt.Fprintf(w, "Expenses:\t%s\n", resp.Expenses)
			fmt.Fprintf(w, "Travel:\t%s\n", resp.Travel)
			fmt.Fprintf(w, "Net:\t%s\n", resp.Net)
			fmt.Fprintf(w, "Transactions:\t%d\n", resp.Transactions)
		})
	},
}

func init() {
	rootCmd.AddCommand(financesCmd)
	financesCmd.AddCommand(financesSummaryCmd)
}
