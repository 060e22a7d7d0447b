package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/martijn/bizdesk/internal/core/service"
	"github.com/martijn/bizdesk/internal/infrastructure/sqlstore"
	"github.com/martijn/bizdesk/internal/logging"
	"github.com/martijn/bizdesk/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config

	// logOut is where the logger writes; the HTTP request log shares it.
	logOut   io.Writer = os.Stdout
	closeLog           = func() error { return nil }
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bizdesk",
	Short: "bizdesk - appointments, clients, invoices and finances",
	Long: `bizdesk is a small business-management backend.

It provides:
- Appointments with clients
- A client list with status and tags
- Invoices with unique numbers and a status workflow
- Income, expense and travel transactions with a net summary
- A REST API under /api and this command line for the same data`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logOut, closeLog, err = logging.Setup(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/bizdesk/config.yml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml (default table on a terminal, json otherwise)")
}

// Services holds all initialized services
type Services struct {
	DB           *sqlstore.DB
	Appointments *service.AppointmentService
	Clients      *service.ClientService
	Invoices     *service.InvoiceService
	Transactions *service.TransactionService
}

// openDB connects to the configured store without migrating it.
func openDB(ctx context.Context) (*sqlstore.DB, error) {
	db, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver: cfg.DBDriver,
		DSN:    cfg.DBDSN,
		Path:   cfg.DBPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// initServices initializes all services
func initServices(ctx context.Context) (*Services, error) {
	db, err := openDB(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}
	log.Debugf("connected to %s database", db.Driver())

	return &Services{
		DB:           db,
		Appointments: service.NewAppointmentService(sqlstore.NewAppointmentRepository(db)),
		Clients:      service.NewClientService(sqlstore.NewClientRepository(db)),
		Invoices:     service.NewInvoiceService(sqlstore.NewInvoiceRepository(db)),
		Transactions: service.NewTransactionService(sqlstore.NewTransactionRepository(db)),
	}, nil
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
