package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/stockbox/stockbox-cli/internal/application/transfer"
)

func newTrasladosCommand(app *App, workflow *transfer.Workflow) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traslados",
		Short: "Solicita y autoriza traslados entre almacenes",
	}
	cmd.AddCommand(
		newTrasladosListCommand(workflow),
		newTrasladosCrearCommand(app, workflow),
		newTrasladosAutorizarCommand(app, workflow),
	)
	return cmd
}

func newTrasladosListCommand(workflow *transfer.Workflow) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista las solicitudes de traslado",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := workflow.SyncPending(cmd.Context()); err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRODUCTO\tCANTIDAD\tDE\tA\tESTADO\tFECHA")
			for _, tr := range workflow.Pending() {
				for _, det := range tr.Details {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
						tr.ID, det.ProductName, det.Quantity.StringFixed(0),
						tr.FromName, tr.ToName, tr.Status,
						tr.CreatedAt.Format("02/01/2006"))
				}
			}
			return w.Flush()
		},
	}
}

func newTrasladosCrearCommand(app *App, workflow *transfer.Workflow) *cobra.Command {
	var (
		productID, fromID, toID int64
		quantity                int64
		notes                   string
	)

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Solicita un traslado de stock entre dos almacenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Auth.Session()
			if err != nil {
				return err
			}
			// La validación corre contra el snapshot recién refrescado.
			if err := app.Snapshot.Refresh(cmd.Context()); err != nil {
				return err
			}

			builder := transfer.NewBuilder(app.Snapshot)
			req, err := builder.Build(transfer.BuildInput{
				ProductID:       productID,
				FromWarehouseID: fromID,
				ToWarehouseID:   toID,
				Quantity:        decimal.NewFromInt(quantity),
				RequestedBy:     session.UserID,
				Notes:           notes,
			})
			if err != nil {
				return err
			}

			created, err := workflow.Submit(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Solicitud de traslado %d creada (%s → %s). Esperando autorización.\n",
				created.ID, created.FromName, created.ToName)
			return nil
		},
	}
	cmd.Flags().Int64Var(&productID, "producto", 0, "id del producto")
	cmd.Flags().Int64Var(&fromID, "origen", 0, "id del almacén origen")
	cmd.Flags().Int64Var(&toID, "destino", 0, "id del almacén destino")
	cmd.Flags().Int64Var(&quantity, "cantidad", 0, "cantidad a trasladar")
	cmd.Flags().StringVar(&notes, "notas", "", "notas opcionales")
	cmd.MarkFlagRequired("producto")
	cmd.MarkFlagRequired("origen")
	cmd.MarkFlagRequired("destino")
	cmd.MarkFlagRequired("cantidad")
	return cmd
}

func newTrasladosAutorizarCommand(app *App, workflow *transfer.Workflow) *cobra.Command {
	var (
		transferID int64
		approvedBy int64
	)

	cmd := &cobra.Command{
		Use:   "autorizar",
		Short: "Autoriza y completa un traslado pendiente",
		RunE: func(cmd *cobra.Command, args []string) error {
			if approvedBy == 0 {
				session, err := app.Auth.Session()
				if err != nil {
					return err
				}
				approvedBy = session.UserID
			}
			if err := workflow.SyncPending(cmd.Context()); err != nil {
				return err
			}
			updated, err := workflow.Authorize(cmd.Context(), transferID, approvedBy)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Traslado %d autorizado: %s\n", updated.ID, updated.Status)
			return nil
		},
	}
	cmd.Flags().Int64Var(&transferID, "id", 0, "id del traslado")
	cmd.Flags().Int64Var(&approvedBy, "autoriza", 0, "id del usuario que autoriza (por defecto la sesión)")
	cmd.MarkFlagRequired("id")
	return cmd
}
