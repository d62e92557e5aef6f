package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

// DTOs del contrato JSON del backend. Se mantienen privados al paquete: el
// resto de la aplicación trabaja solo con entidades de dominio.

type productDTO struct {
	ID            int64           `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    int64           `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	WarehouseID   int64           `json:"warehouseId"`
	WarehouseName string          `json:"warehouseName"`
	Quantity      decimal.Decimal `json:"quantity"`
}

func (d productDTO) toEntity() entity.Product {
	return entity.Product{
		ID:            d.ID,
		SKU:           d.SKU,
		Name:          d.Name,
		Description:   d.Description,
		CategoryID:    d.CategoryID,
		CategoryName:  d.CategoryName,
		WarehouseID:   d.WarehouseID,
		WarehouseName: d.WarehouseName,
		Quantity:      d.Quantity,
	}
}

type warehouseDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type categoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type namedRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type transferDetailDTO struct {
	ProductID int64           `json:"productId"`
	Product   *namedRefDTO    `json:"product,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
}

type transferDTO struct {
	ID            int64               `json:"id"`
	FromWarehouse int64               `json:"fromWarehouse"`
	ToWarehouse   int64               `json:"toWarehouse"`
	From          *namedRefDTO        `json:"from,omitempty"`
	To            *namedRefDTO        `json:"to,omitempty"`
	UserID        int64               `json:"userId"`
	ApprovedBy    int64               `json:"approvedBy"`
	Notes         string              `json:"notes"`
	Details       []transferDetailDTO `json:"details"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func (d transferDTO) toEntity() entity.TransferRequest {
	tr := entity.TransferRequest{
		ID:              d.ID,
		FromWarehouseID: d.FromWarehouse,
		ToWarehouseID:   d.ToWarehouse,
		RequestedBy:     d.UserID,
		ApprovedBy:      d.ApprovedBy,
		Notes:           d.Notes,
		Status:          entity.TransferStatus(d.Status),
		CreatedAt:       d.CreatedAt,
	}
	if d.From != nil {
		if tr.FromWarehouseID == 0 {
			tr.FromWarehouseID = d.From.ID
		}
		tr.FromName = d.From.Name
	}
	if d.To != nil {
		if tr.ToWarehouseID == 0 {
			tr.ToWarehouseID = d.To.ID
		}
		tr.ToName = d.To.Name
	}
	for _, det := range d.Details {
		ed := entity.TransferDetail{ProductID: det.ProductID, Quantity: det.Quantity}
		if det.Product != nil {
			if ed.ProductID == 0 {
				ed.ProductID = det.Product.ID
			}
			ed.ProductName = det.Product.Name
		}
		tr.Details = append(tr.Details, ed)
	}
	return tr
}

type createTransferDTO struct {
	FromWarehouse int64                     `json:"fromWarehouse"`
	ToWarehouse   int64                     `json:"toWarehouse"`
	UserID        int64                     `json:"userId"`
	Notes         string                    `json:"notes"`
	Details       []createTransferDetailDTO `json:"details"`
}

type createTransferDetailDTO struct {
	ProductID int64           `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

type completeTransferDTO struct {
	ApprovedBy int64 `json:"approvedBy"`
}

type withdrawDTO struct {
	WarehouseID int64           `json:"warehouseId"`
	StockID     int64           `json:"stockId"`
	Quantity    decimal.Decimal `json:"quantity"`
}

type loginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponseDTO struct {
	Token string `json:"token"`
}

type productInputDTO struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"categoryId"`
	WarehouseID int64           `json:"warehouseId"`
	Quantity    decimal.Decimal `json:"quantity"`
}
