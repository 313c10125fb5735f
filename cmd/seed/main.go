package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/infrastructure/postgres"
	"github.com/tu-usuario/tienda-admin/pkg/config"
	"github.com/tu-usuario/tienda-admin/pkg/logger"
)

// Crea el esquema si no existe y siembra la enumeración cerrada de idiomas.
// Idempotente: se puede ejecutar en cada despliegue.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}
	log.Info().Msg("esquema verificado")

	languageRepo := postgres.NewLanguageRepository(pool)
	for _, name := range []string{entity.LanguageEnUS, entity.LanguageViVN} {
		lang := &entity.Language{ID: uuid.New().String(), Name: name}
		if err := languageRepo.Upsert(ctx, lang); err != nil {
			log.Fatal().Err(err).Str("language", name).Msg("sembrar idioma")
		}
		log.Info().Str("language", name).Msg("idioma disponible")
	}

	log.Info().Msg("seed completado")
}
