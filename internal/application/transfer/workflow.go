package transfer

import (
	"context"
	"fmt"
	"sync"

	"github.com/stockbox/stockbox-cli/internal/domain"
	"github.com/stockbox/stockbox-cli/internal/domain/entity"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// Workflow máquina de estados local de los traslados. Mantiene el conjunto
// de solicitudes conocidas (más reciente primero) como espejo de mejor
// esfuerzo del servidor: ningún estado cambia localmente sin una respuesta
// 2xx confirmada, y ante una respuesta ambigua se prefiere re-sincronizar
// la lista completa antes que adivinar.
type Workflow struct {
	mu      sync.Mutex
	api     Sender
	movLog  MovementRecorder
	log     *logger.Logger
	pending []entity.TransferRequest
}

// NewWorkflow construye el workflow vacío; SyncPending carga el estado remoto.
func NewWorkflow(api Sender, movLog MovementRecorder, log *logger.Logger) *Workflow {
	return &Workflow{api: api, movLog: movLog, log: log}
}

// SyncPending reemplaza el conjunto local con la lista del servidor.
func (w *Workflow) SyncPending(ctx context.Context) error {
	transfers, err := w.api.ListTransfers(ctx)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.pending = transfers
	w.mu.Unlock()
	return nil
}

// Pending devuelve una copia del conjunto local, más reciente primero.
func (w *Workflow) Pending() []entity.TransferRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]entity.TransferRequest, len(w.pending))
	copy(out, w.pending)
	return out
}

// Get busca un traslado por id en el conjunto local.
func (w *Workflow) Get(transferID int64) (entity.TransferRequest, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, tr := range w.pending {
		if tr.ID == transferID {
			return tr, true
		}
	}
	return entity.TransferRequest{}, false
}

// Submit envía al servidor una solicitud construida por el builder. En éxito
// antepone el registro devuelto (con id y estado del servidor) al conjunto
// local y deja constancia en la bitácora; en fallo se descarta el intento y
// nada se agrega.
func (w *Workflow) Submit(ctx context.Context, req entity.TransferRequest) (entity.TransferRequest, error) {
	if req.Status != entity.TransferPending {
		return entity.TransferRequest{}, fmt.Errorf("%w: solo se envían solicitudes pendientes, estado %q",
			domain.ErrInvalidTransition, req.Status)
	}

	created, err := w.api.CreateTransfer(ctx, req)
	if err != nil {
		return entity.TransferRequest{}, err
	}
	if !created.Status.Valid() {
		// El servidor asigna PENDING al crear; si no vino el campo se asume.
		created.Status = entity.TransferPending
	}

	w.mu.Lock()
	w.pending = append([]entity.TransferRequest{created}, w.pending...)
	w.mu.Unlock()

	w.log.Info().Int64("transfer", created.ID).Msg("traslado solicitado, esperando autorización")

	for _, det := range created.Details {
		if err := w.movLog.Record(entity.Movement{
			Type:     entity.MovementTrasladoPendiente,
			Item:     det.ProductName,
			Quantity: det.Quantity,
			From:     created.FromName,
			To:       created.ToName,
		}); err != nil {
			w.log.Warn().Err(err).Msg("no se pudo registrar el traslado en la bitácora")
		}
	}
	return created, nil
}

// Authorize completa un traslado pendiente con la identidad del autorizador.
// Solo es legal desde PENDING: autorizar un traslado ya completado o
// rechazado devuelve ErrInvalidTransition sin efecto alguno. En éxito se
// mezclan los campos reportados por el servidor en el registro local (nunca
// se asume COMPLETED por cuenta propia); si la respuesta viene incompleta se
// re-sincroniza la lista entera. En fallo el estado local sigue PENDING.
func (w *Workflow) Authorize(ctx context.Context, transferID, approvedBy int64) (entity.TransferRequest, error) {
	w.mu.Lock()
	idx := -1
	for i, tr := range w.pending {
		if tr.ID == transferID {
			idx = i
			break
		}
	}
	if idx == -1 {
		w.mu.Unlock()
		return entity.TransferRequest{}, fmt.Errorf("%w: traslado %d", domain.ErrNotFound, transferID)
	}
	current := w.pending[idx]
	w.mu.Unlock()

	if current.Status != entity.TransferPending {
		return entity.TransferRequest{}, fmt.Errorf("%w: el traslado %d está %s",
			domain.ErrInvalidTransition, transferID, current.Status)
	}

	updated, err := w.api.CompleteTransfer(ctx, transferID, approvedBy)
	if err != nil {
		// Nada cambió localmente: el traslado sigue pendiente.
		return entity.TransferRequest{}, err
	}

	if updated.ID == 0 || !updated.Status.Valid() {
		// Respuesta sin los campos esperados: re-sincronizar en lugar de
		// inferir estado parcial.
		w.log.Warn().Int64("transfer", transferID).Msg("respuesta incompleta al autorizar, re-sincronizando")
		if err := w.SyncPending(ctx); err != nil {
			return entity.TransferRequest{}, err
		}
		resynced, ok := w.Get(transferID)
		if !ok {
			return entity.TransferRequest{}, fmt.Errorf("%w: traslado %d tras re-sincronizar",
				domain.ErrNotFound, transferID)
		}
		return resynced, nil
	}

	if !current.Status.CanTransitionTo(updated.Status) && current.Status != updated.Status {
		return entity.TransferRequest{}, fmt.Errorf("%w: el servidor reporta %s para un traslado %s",
			domain.ErrInvalidTransition, updated.Status, current.Status)
	}

	merged := mergeTransfer(current, updated)

	w.mu.Lock()
	for i, tr := range w.pending {
		if tr.ID == transferID {
			w.pending[i] = merged
			break
		}
	}
	w.mu.Unlock()

	w.log.Info().
		Int64("transfer", transferID).
		Int64("approvedBy", approvedBy).
		Str("status", string(merged.Status)).
		Msg("traslado autorizado")
	return merged, nil
}

// mergeTransfer mezcla los campos reportados por el servidor sobre el
// registro local, conservando los nombres legibles ya resueltos cuando la
// respuesta no los trae.
func mergeTransfer(local, remote entity.TransferRequest) entity.TransferRequest {
	merged := remote
	if merged.FromName == "" {
		merged.FromName = local.FromName
	}
	if merged.ToName == "" {
		merged.ToName = local.ToName
	}
	if merged.Notes == "" {
		merged.Notes = local.Notes
	}
	if merged.CreatedAt.IsZero() {
		merged.CreatedAt = local.CreatedAt
	}
	if len(merged.Details) == 0 {
		merged.Details = local.Details
	} else {
		for i := range merged.Details {
			if merged.Details[i].ProductName == "" && i < len(local.Details) {
				merged.Details[i].ProductName = local.Details[i].ProductName
			}
		}
	}
	return merged
}
