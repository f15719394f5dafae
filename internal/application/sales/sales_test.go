package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asplot/plotshop-api/internal/application/dto"
	"github.com/asplot/plotshop-api/internal/domain"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (f *fakeClientRepo) Create(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
func (f *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (f *fakeClientRepo) Update(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) Delete(id string) error        { delete(f.clients, id); return nil }
func (f *fakeClientRepo) List(search string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
	lines map[string][]*entity.SaleLine // saleID -> líneas en orden
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	f.sales[s.ID] = &cp
	return nil
}
func (f *fakeSaleRepo) CreateLine(l *entity.SaleLine) error {
	cp := *l
	f.lines[l.SaleID] = append(f.lines[l.SaleID], &cp)
	return nil
}
func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}
func (f *fakeSaleRepo) GetForUpdate(id string) (*entity.Sale, error) { return f.GetByID(id) }
func (f *fakeSaleRepo) GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for _, l := range f.lines[saleID] {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}
func (f *fakeSaleRepo) DeleteLine(saleID, lineID string) error {
	kept := f.lines[saleID][:0]
	for _, l := range f.lines[saleID] {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}
	f.lines[saleID] = kept
	return nil
}
func (f *fakeSaleRepo) UpdateTotals(id string, subtotal, total decimal.Decimal) error {
	s := f.sales[id]
	s.Subtotal = subtotal
	s.Total = total
	return nil
}
func (f *fakeSaleRepo) UpdateStatus(id, status string) error {
	f.sales[id].Status = status
	return nil
}
func (f *fakeSaleRepo) List(status string, since time.Time, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeSaleTxRunner struct {
	saleRepo *fakeSaleRepo
}

func (f *fakeSaleTxRunner) RunSale(ctx context.Context, fn func(repository.SaleRepository) error) error {
	return fn(f.saleRepo)
}

func newSalesFixture() (*CreateSaleUseCase, *ManageSaleUseCase, *fakeSaleRepo, *fakeClientRepo) {
	clients := &fakeClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "Ana", Surname: "Gómez"},
	}}
	salesRepo := &fakeSaleRepo{sales: map[string]*entity.Sale{}, lines: map[string][]*entity.SaleLine{}}
	runner := &fakeSaleTxRunner{saleRepo: salesRepo}
	return NewCreateSaleUseCase(runner, clients),
		NewManageSaleUseCase(runner, salesRepo, clients),
		salesRepo, clients
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// requestConDosLineas: A = 2 x 10.00, B = 1 x 5.50 - 0.50; impuesto 1.00, descuento 1.50.
// Subtotal esperado 25.00, total esperado 24.50.
func requestConDosLineas() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		ClientID:      "c1",
		PaymentMethod: entity.PaymentCash,
		Tax:           dec("1.00"),
		Discount:      dec("1.50"),
		Lines: []dto.SaleLineRequest{
			{Description: "Impresión A1", Quantity: 2, UnitPrice: dec("10.00")},
			{Description: "Copia A4", Quantity: 1, UnitPrice: dec("5.50"), Discount: dec("0.50")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear venta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_TotalesDerivadosDeLasLineas(t *testing.T) {
	create, _, salesRepo, _ := newSalesFixture()

	resp, err := create.Create(context.Background(), "op1", requestConDosLineas())
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(dec("25.00")), "subtotal = %s", resp.Subtotal)
	assert.True(t, resp.Total.Equal(dec("24.50")), "total = %s", resp.Total)
	assert.Equal(t, entity.SaleStatusCompleted, resp.Status)
	assert.Equal(t, "Ana Gómez", resp.ClientName)
	require.Len(t, resp.Lines, 2)
	assert.Equal(t, 1, resp.Lines[0].LineNo)
	assert.Equal(t, 2, resp.Lines[1].LineNo)

	// Cabecera y líneas persistidas juntas
	require.Len(t, salesRepo.sales, 1)
	require.Len(t, salesRepo.lines[resp.ID], 2)
}

func TestCreate_DescartaLineasMalFormadasEnSilencio(t *testing.T) {
	create, _, _, _ := newSalesFixture()

	req := requestConDosLineas()
	req.Lines = append(req.Lines,
		dto.SaleLineRequest{Description: "", Quantity: 1, UnitPrice: dec("3.00")},         // sin descripción
		dto.SaleLineRequest{Description: "Escaneo", Quantity: 0, UnitPrice: dec("3.00")},  // cantidad cero
		dto.SaleLineRequest{Description: "Ploteo", Quantity: 1, UnitPrice: dec("-1.00")}, // precio negativo
	)

	resp, err := create.Create(context.Background(), "op1", req)
	require.NoError(t, err)
	assert.Len(t, resp.Lines, 2)
	assert.Equal(t, 3, resp.SkippedLines)
	assert.True(t, resp.Subtotal.Equal(dec("25.00")), "las líneas descartadas no aportan al subtotal")
}

func TestCreate_RechazaVentaSinLineasValidas(t *testing.T) {
	create, _, salesRepo, _ := newSalesFixture()

	req := dto.CreateSaleRequest{
		ClientID: "c1",
		Lines: []dto.SaleLineRequest{
			{Description: "", Quantity: 1, UnitPrice: dec("3.00")},
		},
	}
	_, err := create.Create(context.Background(), "op1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, salesRepo.sales, "no debe persistir nada")
}

func TestCreate_ValidaClienteYMetodoDePago(t *testing.T) {
	create, _, _, _ := newSalesFixture()

	req := requestConDosLineas()
	req.ClientID = "desconocido"
	_, err := create.Create(context.Background(), "op1", req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	req = requestConDosLineas()
	req.PaymentMethod = "cheque"
	_, err = create.Create(context.Background(), "op1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Método vacío cae al valor por defecto
	req = requestConDosLineas()
	req.PaymentMethod = ""
	resp, err := create.Create(context.Background(), "op1", req)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, resp.PaymentMethod)
}

func TestCreate_RechazaImpuestoODescuentoNegativos(t *testing.T) {
	create, _, _, _ := newSalesFixture()

	req := requestConDosLineas()
	req.Tax = dec("-1.00")
	_, err := create.Create(context.Background(), "op1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = requestConDosLineas()
	req.Discount = dec("-0.01")
	_, err = create.Create(context.Background(), "op1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelar y corregir
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_EsTerminalYNoDuplicable(t *testing.T) {
	create, manage, salesRepo, _ := newSalesFixture()

	resp, err := create.Create(context.Background(), "op1", requestConDosLineas())
	require.NoError(t, err)

	cancelled, err := manage.Cancel(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, cancelled.Status)
	// Los montos quedan congelados
	assert.True(t, cancelled.Total.Equal(dec("24.50")))

	_, err = manage.Cancel(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	assert.Equal(t, entity.SaleStatusCancelled, salesRepo.sales[resp.ID].Status)
}

func TestCancel_VentaInexistente(t *testing.T) {
	_, manage, _, _ := newSalesFixture()

	_, err := manage.Cancel(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveLine_RecalculaTotales(t *testing.T) {
	create, manage, _, _ := newSalesFixture()

	resp, err := create.Create(context.Background(), "op1", requestConDosLineas())
	require.NoError(t, err)

	// Quitar la línea B (5.50 - 0.50): subtotal 20.00, total 20.00 + 1.00 - 1.50 = 19.50
	updated, err := manage.RemoveLine(context.Background(), resp.ID, resp.Lines[1].ID)
	require.NoError(t, err)
	assert.True(t, updated.Subtotal.Equal(dec("20.00")), "subtotal = %s", updated.Subtotal)
	assert.True(t, updated.Total.Equal(dec("19.50")), "total = %s", updated.Total)
	require.Len(t, updated.Lines, 1)
	assert.Equal(t, "Impresión A1", updated.Lines[0].Description)
}

func TestRemoveLine_NoDejaVentaVacia(t *testing.T) {
	create, manage, _, _ := newSalesFixture()

	req := requestConDosLineas()
	req.Lines = req.Lines[:1]
	resp, err := create.Create(context.Background(), "op1", req)
	require.NoError(t, err)

	_, err = manage.RemoveLine(context.Background(), resp.ID, resp.Lines[0].ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRemoveLine_RechazaVentaCancelada(t *testing.T) {
	create, manage, _, _ := newSalesFixture()

	resp, err := create.Create(context.Background(), "op1", requestConDosLineas())
	require.NoError(t, err)
	_, err = manage.Cancel(context.Background(), resp.ID)
	require.NoError(t, err)

	_, err = manage.RemoveLine(context.Background(), resp.ID, resp.Lines[0].ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGet_DevuelveLineasEnOrden(t *testing.T) {
	create, manage, _, _ := newSalesFixture()

	resp, err := create.Create(context.Background(), "op1", requestConDosLineas())
	require.NoError(t, err)

	got, err := manage.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "Impresión A1", got.Lines[0].Description)
	assert.Equal(t, "Copia A4", got.Lines[1].Description)
	assert.Equal(t, "Ana Gómez", got.ClientName)
}
