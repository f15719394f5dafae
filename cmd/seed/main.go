// Comando de siembra: crea el usuario administrador inicial, los tipos de
// plano y un catálogo base de materiales con su registro de existencias.
// Es idempotente: los registros ya existentes se conservan.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/asplot/plotshop-api/internal/domain/entity"
	"github.com/asplot/plotshop-api/internal/infrastructure/postgres"
	"github.com/asplot/plotshop-api/pkg/config"
	"github.com/asplot/plotshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)

	// ── Usuario administrador ────────────────────────────────────────────────

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "cambiar-al-entrar"
	}

	existing, err := userRepo.GetByUsername("admin")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario admin")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		admin := &entity.User{
			ID:           uuid.NewString(),
			Username:     "admin",
			Email:        "admin@asplot.local",
			PasswordHash: string(hash),
			FullName:     "Administrador",
			Role:         entity.RoleAdmin,
			Active:       true,
			CreatedAt:    time.Now(),
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear usuario admin")
		}
		log.Info().Str("username", admin.Username).Msg("usuario administrador creado")
	} else {
		log.Info().Msg("usuario administrador ya existe, se conserva")
	}

	// ── Tipos de plano ───────────────────────────────────────────────────────

	planTypes := []struct {
		Name        string
		Description string
	}{
		{"arquitectónico", "Plantas, cortes y fachadas"},
		{"estructural", "Cimentaciones, vigas y losas"},
		{"eléctrico", "Instalaciones eléctricas y de datos"},
		{"hidrosanitario", "Redes hidráulicas y sanitarias"},
		{"topográfico", "Levantamientos y curvas de nivel"},
	}
	for _, pt := range planTypes {
		_, err := pool.Exec(ctx, `
			INSERT INTO plan_types (id, name, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING`,
			uuid.NewString(), pt.Name, pt.Description,
		)
		if err != nil {
			log.Fatal().Err(err).Str("tipo", pt.Name).Msg("sembrar tipo de plano")
		}
	}
	log.Info().Int("tipos", len(planTypes)).Msg("tipos de plano sembrados")

	// ── Catálogo base de materiales ──────────────────────────────────────────

	type seedMaterial struct {
		Name          string
		Category      string
		Subcategory   string
		UnitPrice     string
		PurchasePrice string
		UnitMeasure   string
		MinStock      int
		Quantity      int
		Location      string
	}
	materials := []seedMaterial{
		{"Bond 90g rollo 0.61m", "papel", "A1", "45000", "32000", "rollo", 5, 12, "estante A1"},
		{"Bond 90g rollo 0.91m", "papel", "A0", "62000", "45000", "rollo", 5, 8, "estante A1"},
		{"Papel fotográfico A3", "papel", "A3", "1800", "1100", "unidad", 50, 200, "estante B2"},
		{"Tinta negra pigmentada", "tinta", "negro", "95000", "70000", "litro", 3, 6, "gabinete tintas"},
		{"Tinta cyan", "tinta", "cyan", "105000", "78000", "litro", 2, 4, "gabinete tintas"},
		{"Tinta magenta", "tinta", "magenta", "105000", "78000", "litro", 2, 4, "gabinete tintas"},
		{"Tinta amarilla", "tinta", "amarillo", "105000", "78000", "litro", 2, 4, "gabinete tintas"},
		{"Cuchilla de corte 45mm", "herramienta", "", "28000", "17000", "unidad", 4, 10, "cajón herramientas"},
		{"Tubo portaplanos", "otro", "", "9500", "5200", "unidad", 10, 30, "estante C1"},
	}
	created := 0
	for _, sm := range materials {
		m := &entity.Material{
			ID:            uuid.NewString(),
			Name:          sm.Name,
			Category:      sm.Category,
			Subcategory:   sm.Subcategory,
			UnitPrice:     decimal.RequireFromString(sm.UnitPrice),
			PurchasePrice: decimal.RequireFromString(sm.PurchasePrice),
			UnitMeasure:   sm.UnitMeasure,
			MinStock:      sm.MinStock,
			Active:        true,
		}
		// Se evita duplicar el catálogo si el seed corre más de una vez
		var exists bool
		if err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM materials WHERE name = $1)`, sm.Name,
		).Scan(&exists); err != nil {
			log.Fatal().Err(err).Str("material", sm.Name).Msg("verificar material")
		}
		if exists {
			continue
		}
		if err := materialRepo.Create(m); err != nil {
			log.Fatal().Err(err).Str("material", sm.Name).Msg("crear material")
		}
		if err := invRepo.Upsert(&entity.InventoryRecord{
			MaterialID: m.ID,
			Quantity:   sm.Quantity,
			Location:   sm.Location,
			UpdatedAt:  time.Now(),
		}); err != nil {
			log.Fatal().Err(err).Str("material", sm.Name).Msg("crear existencias")
		}
		created++
	}
	log.Info().Int("nuevos", created).Int("total", len(materials)).Msg("catálogo de materiales sembrado")
}
