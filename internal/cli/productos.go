package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/stockbox/stockbox-cli/internal/application/inventory"
	"github.com/stockbox/stockbox-cli/internal/application/usecase"
	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

func newProductosCommand(app *App, productUC *usecase.ProductUseCase) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "productos",
		Short: "Administra el catálogo de refacciones",
	}
	cmd.AddCommand(
		newProductosListCommand(app),
		newProductosCrearCommand(productUC),
		newProductosActualizarCommand(productUC),
		newProductosEliminarCommand(productUC),
	)
	return cmd
}

func newProductosListCommand(app *App) *cobra.Command {
	var query, category, level string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista refacciones con filtros de búsqueda",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Snapshot.Refresh(cmd.Context()); err != nil {
				return err
			}
			products := app.Snapshot.Search(inventory.SearchFilter{
				Query:      query,
				Category:   category,
				StockLevel: level,
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSKU\tNOMBRE\tCATEGORÍA\tALMACÉN\tCANTIDAD\tNIVEL")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.SKU, p.Name, p.CategoryName, p.WarehouseName,
					p.Quantity.StringFixed(0), inventory.StockLevel(p.Quantity))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&query, "buscar", "", "texto a buscar en nombre o SKU")
	cmd.Flags().StringVar(&category, "categoria", "", "filtrar por categoría")
	cmd.Flags().StringVar(&level, "nivel", "", "filtrar por nivel de stock (Bajo, Normal, Alto)")
	return cmd
}

func newProductosCrearCommand(productUC *usecase.ProductUseCase) *cobra.Command {
	var (
		sku, name, description  string
		categoryID, warehouseID int64
		quantity                int64
	)

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Da de alta una refacción",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := productUC.Create(cmd.Context(), entity.Product{
				SKU:         sku,
				Name:        name,
				Description: description,
				CategoryID:  categoryID,
				WarehouseID: warehouseID,
				Quantity:    decimal.NewFromInt(quantity),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refacción creada: %d (%s)\n", created.ID, created.SKU)
			return nil
		},
	}
	cmd.Flags().StringVar(&sku, "sku", "", "código de la refacción")
	cmd.Flags().StringVar(&name, "nombre", "", "nombre")
	cmd.Flags().StringVar(&description, "descripcion", "", "descripción")
	cmd.Flags().Int64Var(&categoryID, "categoria", 0, "id de la categoría")
	cmd.Flags().Int64Var(&warehouseID, "almacen", 0, "id del almacén")
	cmd.Flags().Int64Var(&quantity, "cantidad", 0, "cantidad inicial")
	cmd.MarkFlagRequired("sku")
	cmd.MarkFlagRequired("nombre")
	cmd.MarkFlagRequired("almacen")
	return cmd
}

func newProductosActualizarCommand(productUC *usecase.ProductUseCase) *cobra.Command {
	var (
		id                      int64
		sku, name, description  string
		categoryID, warehouseID int64
		quantity                int64
	)

	cmd := &cobra.Command{
		Use:   "actualizar",
		Short: "Actualiza una refacción existente",
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := productUC.Update(cmd.Context(), entity.Product{
				ID:          id,
				SKU:         sku,
				Name:        name,
				Description: description,
				CategoryID:  categoryID,
				WarehouseID: warehouseID,
				Quantity:    decimal.NewFromInt(quantity),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refacción actualizada: %d (%s)\n", updated.ID, updated.SKU)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "id de la refacción")
	cmd.Flags().StringVar(&sku, "sku", "", "código de la refacción")
	cmd.Flags().StringVar(&name, "nombre", "", "nombre")
	cmd.Flags().StringVar(&description, "descripcion", "", "descripción")
	cmd.Flags().Int64Var(&categoryID, "categoria", 0, "id de la categoría")
	cmd.Flags().Int64Var(&warehouseID, "almacen", 0, "id del almacén")
	cmd.Flags().Int64Var(&quantity, "cantidad", 0, "cantidad")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("sku")
	cmd.MarkFlagRequired("nombre")
	return cmd
}

func newProductosEliminarCommand(productUC *usecase.ProductUseCase) *cobra.Command {
	var (
		id   int64
		name string
	)

	cmd := &cobra.Command{
		Use:   "eliminar",
		Short: "Elimina una refacción",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := productUC.Delete(cmd.Context(), id, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refacción %d eliminada\n", id)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "id de la refacción")
	cmd.Flags().StringVar(&name, "nombre", "", "nombre (para la bitácora)")
	cmd.MarkFlagRequired("id")
	return cmd
}
