package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/asplot/plotshop-api/internal/domain"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (id, client_id, operator_id, date, subtotal, tax, discount, total, status, payment_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ClientID, nullIfEmpty(sale.OperatorID), sale.Date,
		sale.Subtotal, sale.Tax, sale.Discount, sale.Total,
		sale.Status, sale.PaymentMethod, nullIfEmpty(sale.Notes),
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de la venta.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sale_lines (id, sale_id, plan_id, material_id, description, quantity, unit_price, discount, line_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SaleID, nullIfEmpty(line.PlanID), nullIfEmpty(line.MaterialID),
		line.Description, line.Quantity, line.UnitPrice, line.Discount, line.LineNo,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

const saleColumns = `id, client_id, COALESCE(operator_id, ''), date, subtotal, tax, discount, total, status, payment_method, COALESCE(notes, '')`

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate obtiene la cabecera y bloquea la fila (SELECT FOR UPDATE).
func (r *SaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *SaleRepo) getOne(query, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ClientID, &s.OperatorID, &s.Date,
		&s.Subtotal, &s.Tax, &s.Discount, &s.Total,
		&s.Status, &s.PaymentMethod, &s.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetLinesBySaleID devuelve las líneas en orden de inserción.
func (r *SaleRepo) GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, sale_id, COALESCE(plan_id, ''), COALESCE(material_id, ''), description, quantity, unit_price, discount, line_no
		FROM sale_lines WHERE sale_id = $1
		ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()

	var out []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(
			&l.ID, &l.SaleID, &l.PlanID, &l.MaterialID, &l.Description,
			&l.Quantity, &l.UnitPrice, &l.Discount, &l.LineNo,
		); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// DeleteLine elimina una línea de una venta.
func (r *SaleRepo) DeleteLine(saleID, lineID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM sale_lines WHERE sale_id = $1 AND id = $2`, saleID, lineID)
	if err != nil {
		return fmt.Errorf("delete sale line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateTotals persiste subtotal y total recalculados.
func (r *SaleRepo) UpdateTotals(id string, subtotal, total decimal.Decimal) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE sales SET subtotal = $2, total = $3 WHERE id = $1`, id, subtotal, total)
	if err != nil {
		return fmt.Errorf("update sale totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estado de la venta.
func (r *SaleRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve ventas filtradas por estado y fecha mínima, más recientes primero.
func (r *SaleRepo) List(status string, since time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE ($1 = '' OR status = $1)
		  AND ($2::timestamptz IS NULL OR date >= $2)
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`
	var sinceArg any
	if !since.IsZero() {
		sinceArg = since
	}
	rows, err := r.q.Query(context.Background(), query, status, sinceArg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.ClientID, &s.OperatorID, &s.Date,
			&s.Subtotal, &s.Tax, &s.Discount, &s.Total,
			&s.Status, &s.PaymentMethod, &s.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
