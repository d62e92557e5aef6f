package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

// ListTransfers obtiene las solicitudes de traslado (pendientes e históricas)
// con los nombres de producto y almacén anidados para mostrar en pantalla.
func (c *Client) ListTransfers(ctx context.Context) ([]entity.TransferRequest, error) {
	var dtos []transferDTO
	if err := c.do(ctx, http.MethodGet, "/stock/all-transfer", nil, &dtos); err != nil {
		return nil, err
	}
	transfers := make([]entity.TransferRequest, 0, len(dtos))
	for _, d := range dtos {
		transfers = append(transfers, d.toEntity())
	}
	return transfers, nil
}

// CreateTransfer registra una solicitud de traslado en el servidor y devuelve
// el registro creado (con id y estado asignados por el backend).
func (c *Client) CreateTransfer(ctx context.Context, req entity.TransferRequest) (entity.TransferRequest, error) {
	body := createTransferDTO{
		FromWarehouse: req.FromWarehouseID,
		ToWarehouse:   req.ToWarehouseID,
		UserID:        req.RequestedBy,
		Notes:         req.Notes,
	}
	for _, det := range req.Details {
		body.Details = append(body.Details, createTransferDetailDTO{
			ProductID: det.ProductID,
			Quantity:  det.Quantity,
		})
	}

	var dto transferDTO
	if err := c.do(ctx, http.MethodPost, "/stock/create-transfer", body, &dto); err != nil {
		return entity.TransferRequest{}, err
	}
	return dto.toEntity(), nil
}

// CompleteTransfer pide al servidor completar un traslado pendiente con la
// identidad del autorizador. El movimiento de stock ocurre del lado del
// servidor; aquí solo se refleja la respuesta.
func (c *Client) CompleteTransfer(ctx context.Context, transferID, approvedBy int64) (entity.TransferRequest, error) {
	body := completeTransferDTO{ApprovedBy: approvedBy}
	var dto transferDTO
	path := fmt.Sprintf("/stock/complete-transfer/%d", transferID)
	if err := c.do(ctx, http.MethodPatch, path, body, &dto); err != nil {
		return entity.TransferRequest{}, err
	}
	return dto.toEntity(), nil
}
