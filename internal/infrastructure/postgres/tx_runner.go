package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gestion-api/internal/application/movement"
	"github.com/jhoicas/Gestion-api/internal/application/schedule"
	"github.com/jhoicas/Gestion-api/internal/application/wallet"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// Ensure TxRunner satisface los puertos transaccionales de la aplicación.
var _ movement.TxRunner = (*TxRunner)(nil)
var _ schedule.TxRunner = (*ScheduleTxRunner)(nil)
var _ wallet.TxRunner = (*WalletTxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con repos
// de inventario atados a la tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	itemRepo repository.InventoryItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	itemRepo := NewInventoryItemRepository(tx)

	if err := fn(movRepo, itemRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ScheduleTxRunner ejecuta callbacks transaccionales con los repos de agenda.
// El caso de uso toma el lock de la agenda (FOR UPDATE) dentro del callback.
type ScheduleTxRunner struct {
	pool *pgxpool.Pool
}

// NewScheduleTxRunner construye el runner de agenda.
func NewScheduleTxRunner(pool *pgxpool.Pool) *ScheduleTxRunner {
	return &ScheduleTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *ScheduleTxRunner) Run(ctx context.Context, fn func(
	agendaRepo repository.AgendaRepository,
	scheduleRepo repository.ScheduleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	agendaRepo := NewAgendaRepository(tx)
	scheduleRepo := NewScheduleRepository(tx)

	if err := fn(agendaRepo, scheduleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// WalletTxRunner ejecuta callbacks transaccionales con los repos de fidelidad.
type WalletTxRunner struct {
	pool *pgxpool.Pool
}

// NewWalletTxRunner construye el runner de fidelidad.
func NewWalletTxRunner(pool *pgxpool.Pool) *WalletTxRunner {
	return &WalletTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *WalletTxRunner) Run(ctx context.Context, fn func(
	cardRepo repository.WalletCardRepository,
	movRepo repository.WalletMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cardRepo := NewWalletCardRepository(tx)
	movRepo := NewWalletMovementRepository(tx)

	if err := fn(cardRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
