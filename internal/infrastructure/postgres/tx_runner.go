package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/billing-pro/internal/application/billing"
	"github.com/tu-usuario/billing-pro/internal/application/logistics"
	"github.com/tu-usuario/billing-pro/internal/application/usecase"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var (
	_ usecase.BusinessTxRunner   = (*TxRunner)(nil)
	_ billing.BillingTxRunner    = (*TxRunner)(nil)
	_ logistics.DeliveryTxRunner = (*TxRunner)(nil)
)

// TxRunner abre transacciones sobre el pool y entrega a cada flujo los repos
// construidos sobre la tx, de modo que todo lo que pase dentro de fn se
// confirma o revierte como una unidad.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el ejecutor de transacciones.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (t *TxRunner) run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// RunBusiness ejecuta fn con repos de negocio y membresía sobre una misma tx.
func (t *TxRunner) RunBusiness(ctx context.Context, fn func(
	bizRepo repository.BusinessRepository,
	memRepo repository.MembershipRepository,
) error) error {
	return t.run(ctx, func(q Querier) error {
		return fn(NewBusinessRepository(q), NewMembershipRepository(q))
	})
}

// RunBilling ejecuta fn con repos de factura e item sobre una misma tx.
func (t *TxRunner) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.ItemRepository,
) error) error {
	return t.run(ctx, func(q Querier) error {
		return fn(NewInvoiceRepository(q), NewItemRepository(q))
	})
}

// RunDelivery ejecuta fn con el repo de remisiones sobre una tx.
func (t *TxRunner) RunDelivery(ctx context.Context, fn func(
	noteRepo repository.DeliveryNoteRepository,
) error) error {
	return t.run(ctx, func(q Querier) error {
		return fn(NewDeliveryNoteRepository(q))
	})
}
