package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus estado de una solicitud de traslado.
// Se modela como enum cerrado en lugar de comparar strings sueltos:
// toda transición pasa por CanTransitionTo.
type TransferStatus string

const (
	TransferPending   TransferStatus = "PENDING"
	TransferApproved  TransferStatus = "APPROVED"
	TransferCompleted TransferStatus = "COMPLETED"
	TransferRejected  TransferStatus = "REJECTED"
)

// Valid indica si el valor corresponde a un estado conocido.
func (s TransferStatus) Valid() bool {
	switch s {
	case TransferPending, TransferApproved, TransferCompleted, TransferRejected:
		return true
	}
	return false
}

// Terminal indica si el estado es final e inmutable (historial append-only).
func (s TransferStatus) Terminal() bool {
	return s == TransferCompleted || s == TransferRejected
}

// CanTransitionTo valida la legalidad de una transición:
// PENDING → {APPROVED, COMPLETED, REJECTED}; APPROVED → COMPLETED.
// Los estados terminales no admiten salida.
func (s TransferStatus) CanTransitionTo(to TransferStatus) bool {
	switch s {
	case TransferPending:
		return to == TransferApproved || to == TransferCompleted || to == TransferRejected
	case TransferApproved:
		return to == TransferCompleted
	}
	return false
}

// TransferDetail línea de un traslado: producto y cantidad a mover.
type TransferDetail struct {
	ProductID   int64
	ProductName string
	Quantity    decimal.Decimal // entero positivo, validado por el builder
}

// TransferRequest solicitud de traslado de stock entre dos almacenes.
// El servidor es la fuente de verdad; la copia local es un espejo de mejor
// esfuerzo y debe tolerar estar desactualizada.
type TransferRequest struct {
	ID              int64
	FromWarehouseID int64
	FromName        string
	ToWarehouseID   int64
	ToName          string
	RequestedBy     int64 // userID del solicitante
	ApprovedBy      int64 // userID del autorizador; 0 mientras está pendiente
	Notes           string
	Details         []TransferDetail
	Status          TransferStatus
	CreatedAt       time.Time
}
