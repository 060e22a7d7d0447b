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
	appointmentListFlags listFlags
	appointmentAdd       dto.CreateAppointmentRequest
	appointmentAddDate   string
	appointmentDeleteYes bool
)

var appointmentsCmd = &cobra.Command{
	Use:     "appointments",
	Aliases: []string{"appointment"},
	Short:   "Manage appointments",
}

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listFilter, err := appointmentListFlags.parse(handler.AppointmentFields)
		if err != nil {
			return err
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		appointments, err := services.Appointments.ListAppointments(cmd.Context(), repository.AppointmentFilter{ListFilter: listFilter})
		if err != nil {
			return err
		}

		return renderAppointments(cmd, dto.ToAppointmentResponses(appointments))
	},
}

var appointmentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one appointment",
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

		appointment, err := services.Appointments.GetAppointment(cmd.Context(), id)
		if err != nil {
			return err
		}

		resp := dto.ToAppointmentResponse(appointment)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			writeAppointmentRows(w, []dto.AppointmentResponse{resp})
		})
	},
}

var appointmentsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an appointment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := appointmentAdd
		if appointmentAddDate != "" {
			date, err := domain.ParseDate(appointmentAddDate)
			if err != nil {
				return err
			}
			req.Date = date
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		appointment := req.ToDomain()
		if err := services.Appointments.CreateAppointment(cmd.Context(), appointment); err != nil {
			return err
		}

		resp := dto.ToAppointmentResponse(appointment)
		return render(cmd, resp, func(w *tabwriter.Writer) {
			writeAppointmentRows(w, []dto.AppointmentResponse{resp})
		})
	},
}

var appointmentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an appointment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		if !confirm(cmd, appointmentDeleteYes, fmt.Sprintf("Are you sure you want to delete appointment %d?", id)) {
			return nil
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.Appointments.DeleteAppointment(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Appointment %d deleted\n", id)
		return nil
	},
}

func renderAppointments(cmd *cobra.Command, appointments []dto.AppointmentResponse) error {
	return render(cmd, appointments, func(w *tabwriter.Writer) {
		if len(appointments) == 0 {
			fmt.Fprintln(w, "No appointments found")
			return
		}
		writeAppointmentRows(w, appointments)
	})
}

func writeAppointmentRows(w *tabwriter.Writer, appointments []dto.AppointmentResponse) {
	fmt.Fprintln(w, "ID\tTITLE\tCLIENT\tDATE\tTIME\tDURATION\tLOCATION\tTYPE\tSTATUS")
	for _, a := range appointments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Title, a.ClientName, a.Date, a.Time, a.Duration, a.Location, a.Type, a.Status)
	}
}

func init() {
	appointmentListFlags.register(appointmentsListCmd, "status|Confirmed", "date|asc")

	f := appointmentsAddCmd.Flags()
	f.StringVar(&appointmentAdd.Title, "title", "", "appointment title")
	f.StringVar(&appointmentAdd.ClientName, "client", "", "client name")
	f.StringVar(&appointmentAddDate, "date", "", "date (YYYY-MM-DD)")
	f.StringVar(&appointmentAdd.Time, "time", "", "time of day, e.g. 10:30")
	f.StringVar(&appointmentAdd.Duration, "duration", "", "duration, e.g. 1h")
	f.StringVar(&appointmentAdd.Location, "location", "", "location")
	f.StringVar(&appointmentAdd.Type, "type", "", "appointment type, e.g. Meeting")
	f.StringVar(&appointmentAdd.Status, "status", "", "status (default Pending)")

	appointmentsDeleteCmd.Flags().BoolVarP(&appointmentDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(appointmentsCmd)
	appointmentsCmd.AddCommand(appointmentsListCmd)
	appointmentsCmd.AddCommand(appointmentsGetCmd)
	appointmentsCmd.AddCommand(appointmentsAddCmd)
	appointmentsCmd.AddCommand(appointmentsDeleteCmd)
}
