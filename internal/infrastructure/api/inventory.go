package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

// ListProducts obtiene el catálogo completo de refacciones.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var dtos []productDTO
	if err := c.do(ctx, http.MethodGet, "/product/all", nil, &dtos); err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(dtos))
	for _, d := range dtos {
		products = append(products, d.toEntity())
	}
	return products, nil
}

// ListWarehouses obtiene los almacenes registrados.
func (c *Client) ListWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	var dtos []warehouseDTO
	if err := c.do(ctx, http.MethodGet, "/warehouse/all", nil, &dtos); err != nil {
		return nil, err
	}
	warehouses := make([]entity.Warehouse, 0, len(dtos))
	for _, d := range dtos {
		warehouses = append(warehouses, entity.Warehouse{ID: d.ID, Name: d.Name})
	}
	return warehouses, nil
}

// ListCategories obtiene las categorías de refacciones.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var dtos []categoryDTO
	if err := c.do(ctx, http.MethodGet, "/category", nil, &dtos); err != nil {
		return nil, err
	}
	categories := make([]entity.Category, 0, len(dtos))
	for _, d := range dtos {
		categories = append(categories, entity.Category{ID: d.ID, Name: d.Name})
	}
	return categories, nil
}

// WithdrawStock solicita una salida de stock (retiro de refacción).
func (c *Client) WithdrawStock(ctx context.Context, warehouseID, stockID int64, quantity decimal.Decimal) error {
	body := withdrawDTO{WarehouseID: warehouseID, StockID: stockID, Quantity: quantity}
	return c.do(ctx, http.MethodPost, "/stock/withdraw", body, nil)
}

// CreateProduct da de alta una refacción.
func (c *Client) CreateProduct(ctx context.Context, p entity.Product) (entity.Product, error) {
	body := productInputDTO{
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		WarehouseID: p.WarehouseID,
		Quantity:    p.Quantity,
	}
	var dto productDTO
	if err := c.do(ctx, http.MethodPost, "/product/create", body, &dto); err != nil {
		return entity.Product{}, err
	}
	return dto.toEntity(), nil
}

// UpdateProduct actualiza una refacción existente.
func (c *Client) UpdateProduct(ctx context.Context, p entity.Product) (entity.Product, error) {
	body := productInputDTO{
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		WarehouseID: p.WarehouseID,
		Quantity:    p.Quantity,
	}
	var dto productDTO
	path := fmt.Sprintf("/product/update/%d", p.ID)
	if err := c.do(ctx, http.MethodPut, path, body, &dto); err != nil {
		return entity.Product{}, err
	}
	return dto.toEntity(), nil
}

// DeleteProduct elimina una refacción.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/product/delete/%d", id), nil, nil)
}
