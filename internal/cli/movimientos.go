package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/stockbox/stockbox-cli/internal/application/inventory"
	"github.com/stockbox/stockbox-cli/internal/application/report"
)

func newSalidaCommand(app *App, withdrawUC *inventory.WithdrawUseCase) *cobra.Command {
	var (
		productID int64
		quantity  int64
	)

	cmd := &cobra.Command{
		Use:   "salida",
		Short: "Solicita la salida de una refacción del almacén",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Snapshot.Refresh(cmd.Context()); err != nil {
				return err
			}
			if err := withdrawUC.Withdraw(cmd.Context(), productID, decimal.NewFromInt(quantity)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Solicitud de salida realizada correctamente")
			return nil
		},
	}
	cmd.Flags().Int64Var(&productID, "producto", 0, "id del producto")
	cmd.Flags().Int64Var(&quantity, "cantidad", 0, "cantidad a retirar")
	cmd.MarkFlagRequired("producto")
	cmd.MarkFlagRequired("cantidad")
	return cmd
}

func newMovimientosCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movimientos",
		Short: "Consulta la bitácora local de movimientos",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIPO\tARTÍCULO\tCANTIDAD\tDE\tA\tFECHA")
			for _, m := range app.MovLog.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					m.Type, m.Item, m.Quantity.StringFixed(0),
					m.From, m.To, m.Date.Format("02/01/2006 15:04"))
			}
			return w.Flush()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "limpiar",
		Short: "Vacía la bitácora local",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.MovLog.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Bitácora vaciada")
			return nil
		},
	})
	return cmd
}

func newReporteCommand(app *App, reportUC *report.UseCase) *cobra.Command {
	var (
		period string
		output string
	)

	cmd := &cobra.Command{
		Use:   "reporte",
		Short: "Genera el reporte de refacciones en PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			pdfBytes, err := reportUC.Generate(cmd.Context(), period)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, pdfBytes, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reporte generado en %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "periodo", report.PeriodMonth, "período del reporte (week, month, year)")
	cmd.Flags().StringVar(&output, "salida", "reporte-refacciones.pdf", "ruta del PDF a generar")
	return cmd
}
