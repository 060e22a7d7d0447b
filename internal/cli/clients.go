package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/martijn/bizdesk/internal/api/dto"
	"github.com/martijn/bizdesk/internal/api/handler"
	"github.com/martijn/bizdesk/internal/core/repository"
)

var (
	clientListFlags listFlags
	clientAdd       dto.CreateClientRequest
	clientDeleteYes bool
)

var clientsCmd = &cobra.Command{
	Use:     "clients",
	Aliases: []string{"client"},
	Short:   "Manage clients",
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listFilter, err := clientListFlags.parse(handler.ClientFields)
		if err != nil {
			return err
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		clients, err := services.Clients.ListClients(cmd.Context(), repository.ClientFilter{ListFilter: listFilter})
		if err != nil {
			return err
		}

		resp := dto.ToClientResponses(clients)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			if len(resp) == 0 {
				fmt.Fprintln(w, "No clients found")
				return
			}
			writeClientRows(w, resp)
		})
	},
}

var clientsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one client",
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

		client, err := services.Clients.GetClient(cmd.Context(), id)
		if err != nil {
			return err
		}

		resp := dto.ToClientResponse(client)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			writeClientRows(w, []dto.ClientResponse{resp})
		})
	},
}

var clientsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a client",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		client := clientAdd.ToDomain()
		if err := services.Clients.CreateClient(cmd.Context(), client); err != nil {
			return err
		}

		resp := dto.ToClientResponse(client)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			writeClientRows(w, []dto.ClientResponse{resp})
		})
	},
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		if !confirm(cmd, clientDeleteYes, fmt.Sprintf("Are you sure you want to delete client %d?", id)) {
			return nil
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.Clients.DeleteClient(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Client %d deleted\n", id)
		return nil
	},
}

func writeClientRows(w *tabwriter.Writer, clients []dto.ClientResponse) {
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tEMAIL\tPHONE\tLOCATION\tSTATUS\tTAGS\tLAST CONTACT")
	for _, c := range clients {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Company, c.Email, c.Phone, c.Location, c.Status,
			strings.Join(c.Tags, ","),
			c.LastContact.Format(timeLayout),
		)
	}
}

func init() {
	clientListFlags.register(clientsListCmd, "status|in|Lead,Active", "name|asc")

	f := clientsAddCmd.Flags()
	f.StringVar(&clientAdd.Name, "name", "", "contact name")
	f.StringVar(&clientAdd.Company, "company", "", "company")
	f.StringVar(&clientAdd.Email, "email", "", "email address")
	f.StringVar(&clientAdd.Phone, "phone", "", "phone number")
	f.StringVar(&clientAdd.Location, "location", "", "location")
	f.StringVar(&clientAdd.Status, "status", "", "status (default Lead)")
	f.StringSliceVar(&clientAdd.Tags, "tag", nil, "tag, repeat or comma-separate for several")

	clientsDeleteCmd.Flags().BoolVarP(&clientDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(clientsCmd)
	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsGetCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsDeleteCmd)
}
