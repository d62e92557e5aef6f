// Package cli define los comandos del binario stockbox. Capa delgada: parsea
// flags, arma los casos de uso y presenta resultados; toda la lógica vive en
// internal/application.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockbox/stockbox-cli/internal/application/auth"
	"github.com/stockbox/stockbox-cli/internal/application/inventory"
	"github.com/stockbox/stockbox-cli/internal/application/movement"
	"github.com/stockbox/stockbox-cli/internal/application/report"
	"github.com/stockbox/stockbox-cli/internal/application/transfer"
	"github.com/stockbox/stockbox-cli/internal/application/usecase"
	"github.com/stockbox/stockbox-cli/internal/infrastructure/api"
	"github.com/stockbox/stockbox-cli/internal/infrastructure/localstore"
	"github.com/stockbox/stockbox-cli/internal/infrastructure/pdf"
	"github.com/stockbox/stockbox-cli/pkg/config"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// App contenedor de dependencias compartidas por los comandos.
type App struct {
	Config   *config.Config
	Log      *logger.Logger
	Client   *api.Client
	Auth     *auth.UseCase
	Snapshot *inventory.Snapshot
	MovLog   *movement.Log
}

// NewApp arma el grafo de dependencias a partir de la configuración.
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	store, err := localstore.NewFileStore(cfg.Store.DataDir)
	if err != nil {
		return nil, fmt.Errorf("inicializar almacenamiento local: %w", err)
	}

	// El cliente toma el token de la sesión persistida en cada petición.
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout(), auth.TokenProvider(store), log)
	authUC := auth.NewUseCase(client, store, log)

	return &App{
		Config:   cfg,
		Log:      log,
		Client:   client,
		Auth:     authUC,
		Snapshot: inventory.NewSnapshot(client, log),
		MovLog:   movement.NewLog(store, log),
	}, nil
}

// NewRootCommand construye el comando raíz con todos los subcomandos.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stockbox",
		Short:         "Cliente de gestión de refacciones StockBox",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	workflow := transfer.NewWorkflow(app.Client, app.MovLog, app.Log)
	withdrawUC := inventory.NewWithdrawUseCase(app.Client, app.Snapshot, app.MovLog, app.Log)
	productUC := usecase.NewProductUseCase(app.Client, app.MovLog, app.Log)
	reportUC := report.NewUseCase(app.Client, pdf.NewMarotoReportGenerator(), app.Log)

	root.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newProductosCommand(app, productUC),
		newTrasladosCommand(app, workflow),
		newSalidaCommand(app, withdrawUC),
		newMovimientosCommand(app),
		newReporteCommand(app, reportUC),
	)
	return root
}
