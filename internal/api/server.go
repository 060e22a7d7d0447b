package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labstack/gommon/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"github.com/martijn/bizdesk/internal/api/docs"
	"github.com/martijn/bizdesk/internal/api/dto"
	"github.com/martijn/bizdesk/internal/api/handler"
	"github.com/martijn/bizdesk/internal/api/middleware"
	"github.com/martijn/bizdesk/internal/core/service"
	"github.com/martijn/bizdesk/pkg/config"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles what the HTTP layer serves.
type Services struct {
	Appointments *service.AppointmentService
	Clients      *service.ClientService
	Invoices     *service.InvoiceService
	Transactions *service.TransactionService
	Store        Pinger
}

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server. Request logs go to logOut.
func NewServer(cfg *config.Config, services Services, logOut io.Writer) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(gin.LoggerWithWriter(logOut))
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(router, services)

	return &Server{
		router: router,
		config: cfg,
	}
}

// RegisterRoutes mounts the API under /api plus health and docs routes.
func RegisterRoutes(router *gin.Engine, services Services) {
	appointmentHandler := handler.NewAppointmentHandler(services.Appointments)
	clientHandler := handler.NewClientHandler(services.Clients)
	invoiceHandler := handler.NewInvoiceHandler(services.Invoices)
	transactionHandler := handler.NewTransactionHandler(services.Transactions)

	api := router.Group("/api")

	appointments := api.Group("/appointments")
	{
		appointments.GET("", appointmentHandler.ListAppointments)
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
	}

	clients := api.Group("/clients")
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:id", clientHandler.GetClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/summary", invoiceHandler.InvoiceSummary)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
	}

	transactions := api.Group("/transactions")
	{
		transactions.GET("", transactionHandler.ListTransactions)
		transactions.POST("", transactionHandler.CreateTransaction)
		transactions.GET("/:id", transactionHandler.GetTransaction)
		transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	}

	api.GET("/finances/summary", transactionHandler.FinanceSummary)

	// Health check
	router.GET("/health", healthHandler(services.Store))

	// API docs
	router.GET("/swagger-doc.json", swaggerDocHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func healthHandler(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.HealthResponse{
			Status:   "ok",
			Database: "ok",
			Time:     time.Now().UTC().Format(time.RFC3339),
		}

		if store != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				log.Warnf("health check: %v", err)
				resp.Status = "degraded"
				resp.Database = "unavailable"
				c.JSON(http.StatusServiceUnavailable, resp)
				return
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Internal Server Error",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		log.Infof("Starting HTTPS server on %s", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	log.Infof("Starting HTTP server on %s", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
