package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asplot/plotshop-api/internal/domain"
	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMaterialRepo struct {
	materials map[string]*entity.Material
}

func (f *fakeMaterialRepo) Create(m *entity.Material) error { f.materials[m.ID] = m; return nil }
func (f *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}
func (f *fakeMaterialRepo) Update(m *entity.Material) error { f.materials[m.ID] = m; return nil }
func (f *fakeMaterialRepo) Deactivate(id string) error {
	if m, ok := f.materials[id]; ok {
		m.Active = false
	}
	return nil
}
func (f *fakeMaterialRepo) ListActive(category, search string, limit, offset int) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range f.materials {
		if m.Active {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeInvRepo struct {
	records   map[string]*entity.InventoryRecord
	materials *fakeMaterialRepo
}

func (f *fakeInvRepo) Get(materialID string) (*entity.InventoryRecord, error) {
	r, ok := f.records[materialID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}
func (f *fakeInvRepo) GetForUpdate(materialID string) (*entity.InventoryRecord, error) {
	return f.Get(materialID)
}
func (f *fakeInvRepo) Upsert(record *entity.InventoryRecord) error {
	cp := *record
	f.records[record.MaterialID] = &cp
	return nil
}
func (f *fakeInvRepo) List(limit, offset int) ([]repository.LowStockItem, error) {
	return f.items(func(r *entity.InventoryRecord, m *entity.Material) bool { return true }), nil
}
func (f *fakeInvRepo) ListLowStock() ([]repository.LowStockItem, error) {
	return f.items(func(r *entity.InventoryRecord, m *entity.Material) bool {
		return r.Quantity <= m.MinStock
	}), nil
}

func (f *fakeInvRepo) items(keep func(*entity.InventoryRecord, *entity.Material) bool) []repository.LowStockItem {
	var out []repository.LowStockItem
	for id, r := range f.records {
		m := f.materials.materials[id]
		if m == nil || !m.Active || !keep(r, m) {
			continue
		}
		out = append(out, repository.LowStockItem{
			MaterialID:   id,
			MaterialName: m.Name,
			Category:     m.Category,
			Quantity:     r.Quantity,
			MinStock:     m.MinStock,
			Location:     r.Location,
			UpdatedAt:    r.UpdatedAt,
		})
	}
	return out
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes (sin transacción real).
type fakeTxRunner struct {
	invRepo      *fakeInvRepo
	materialRepo *fakeMaterialRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	materialRepo repository.MaterialRepository,
) error) error {
	return fn(f.invRepo, f.materialRepo)
}

func newFixture() (*LedgerUseCase, *ReplenishmentUseCase, *fakeInvRepo, *fakeMaterialRepo) {
	materials := &fakeMaterialRepo{materials: map[string]*entity.Material{}}
	inv := &fakeInvRepo{records: map[string]*entity.InventoryRecord{}, materials: materials}
	runner := &fakeTxRunner{invRepo: inv, materialRepo: materials}
	return NewLedgerUseCase(runner, materials, inv), NewReplenishmentUseCase(inv), inv, materials
}

func seedMaterial(materials *fakeMaterialRepo, inv *fakeInvRepo, id, name string, qty, minStock int) {
	materials.materials[id] = &entity.Material{
		ID:        id,
		Name:      name,
		Category:  entity.MaterialCategoryPaper,
		UnitPrice: decimal.NewFromInt(10),
		MinStock:  minStock,
		Active:    true,
	}
	inv.records[id] = &entity.InventoryRecord{
		MaterialID: id,
		Quantity:   qty,
		Location:   "bodega-1",
		UpdatedAt:  time.Now().Add(-time.Hour),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_EntradaSumaExistencia(t *testing.T) {
	uc, _, inv, materials := newFixture()
	seedMaterial(materials, inv, "m1", "Papel bond A1", 5, 10)

	rec, err := uc.Adjust(context.Background(), "m1", AdjustInput{Type: AdjustTypeEntrada, Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 12, rec.Quantity)
	assert.Equal(t, 12, inv.records["m1"].Quantity)
}

func TestAdjust_SalidaDescuentaExistencia(t *testing.T) {
	uc, _, inv, materials := newFixture()
	seedMaterial(materials, inv, "m1", "Papel bond A1", 8, 10)

	rec, err := uc.Adjust(context.Background(), "m1", AdjustInput{Type: AdjustTypeSalida, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, rec.Quantity)
	assert.Equal(t, 5, inv.records["m1"].Quantity)
}

func TestAdjust_SalidaInsuficienteNoMuta(t *testing.T) {
	uc, _, inv, materials := newFixture()
	seedMaterial(materials, inv, "m1", "Tinta negra", 2, 5)
	before := inv.records["m1"].UpdatedAt

	_, err := uc.Adjust(context.Background(), "m1", AdjustInput{Type: AdjustTypeSalida, Quantity: 3})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Verifica que no hubo mutación parcial
	assert.Equal(t, 2, inv.records["m1"].Quantity)
	assert.Equal(t, before, inv.records["m1"].UpdatedAt)
}

func TestAdjust_SalidaExactaDejaCero(t *testing.T) {
	uc, _, inv, materials := newFixture()
	seedMaterial(materials, inv, "m1", "Tinta negra", 3, 5)

	rec, err := uc.Adjust(context.Background(), "m1", AdjustInput{Type: AdjustTypeSalida, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Quantity)
}

func TestAdjust_AjusteFijaValorAbsoluto(t *testing.T) {
	uc, _, inv, materials := newFixture()
	seedMaterial(materials, inv, "m1", "Rollo plotter", 20, 5)

	rec, err := uc.Adjust(context.Background(), "m1", AdjustInput{Type: AdjustTypeAjuste, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Quantity)

	// El conteo puede dejar la existencia en cero
	rec, err = uc.Adjust(context.Background(), "m1", AdjustInput{Type: AdjustTypeAjuste, Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Quantity)
}

func TestAdjust_CantidadesInvalidas(t *testing.T) {
	uc, _, inv, materials := newFixture()
	seedMaterial(materials, inv, "m1", "Rollo plotter", 20, 5)

	cases := []struct {
		name  string
		input AdjustInput
		want  error
	}{
		{"entrada cero", AdjustInput{Type: AdjustTypeEntrada, Quantity: 0}, domain.ErrInvalidQuantity},
		{"entrada negativa", AdjustInput{Type: AdjustTypeEntrada, Quantity: -1}, domain.ErrInvalidQuantity},
		{"salida cero", AdjustInput{Type: AdjustTypeSalida, Quantity: 0}, domain.ErrInvalidQuantity},
		{"ajuste negativo", AdjustInput{Type: AdjustTypeAjuste, Quantity: -3}, domain.ErrInvalidQuantity},
		{"tipo desconocido", AdjustInput{Type: "traslado", Quantity: 1}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Adjust(context.Background(), "m1", tc.input)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 20, inv.records["m1"].Quantity, "la existencia no debe cambiar")
		})
	}
}

func TestAdjust_UbicacionViajaConElAjuste(t *testing.T) {
	uc, _, inv, materials := newFixture()
	seedMaterial(materials, inv, "m1", "Papel fotográfico", 5, 3)

	rec, err := uc.Adjust(context.Background(), "m1", AdjustInput{Type: AdjustTypeEntrada, Quantity: 1, Location: "estante-B"})
	require.NoError(t, err)
	assert.Equal(t, "estante-B", rec.Location)
	// Cantidad y ubicación comparten el mismo UpdatedAt
	assert.Equal(t, rec.UpdatedAt, inv.records["m1"].UpdatedAt)

	// Ubicación vacía conserva la anterior
	rec, err = uc.Adjust(context.Background(), "m1", AdjustInput{Type: AdjustTypeEntrada, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "estante-B", rec.Location)
}

func TestAdjust_MaterialInexistente(t *testing.T) {
	uc, _, _, _ := newFixture()

	_, err := uc.Adjust(context.Background(), "nope", AdjustInput{Type: AdjustTypeEntrada, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_BanderaStockBajo(t *testing.T) {
	uc, _, inv, materials := newFixture()
	seedMaterial(materials, inv, "m1", "Papel bond A1", 10, 10)
	seedMaterial(materials, inv, "m2", "Papel bond A0", 11, 10)

	// Igualdad cuenta como stock bajo
	resp, err := uc.Get(context.Background(), "m1")
	require.NoError(t, err)
	assert.True(t, resp.LowStock)

	resp, err = uc.Get(context.Background(), "m2")
	require.NoError(t, err)
	assert.False(t, resp.LowStock)
}

func TestListLowStock_OrdenYDeficit(t *testing.T) {
	_, rep, inv, materials := newFixture()
	seedMaterial(materials, inv, "m1", "Ñandutí especial", 1, 5)
	seedMaterial(materials, inv, "m2", "Acetato", 2, 5)
	seedMaterial(materials, inv, "m3", "Tinta cyan", 5, 5) // igualdad: entra al reporte
	seedMaterial(materials, inv, "m4", "Papel bond", 50, 5)

	items, err := rep.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Orden alfabético español por nombre
	assert.Equal(t, "Acetato", items[0].MaterialName)
	assert.Equal(t, "Ñandutí especial", items[1].MaterialName)
	assert.Equal(t, "Tinta cyan", items[2].MaterialName)

	assert.Equal(t, 4, items[0].Deficit)
	assert.Equal(t, 0, items[2].Deficit)
}

func TestListLowStock_ExcluyeInactivos(t *testing.T) {
	_, rep, inv, materials := newFixture()
	seedMaterial(materials, inv, "m1", "Acetato", 1, 5)
	seedMaterial(materials, inv, "m2", "Tinta cyan", 1, 5)
	materials.materials["m2"].Active = false

	items, err := rep.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acetato", items[0].MaterialName)
}
