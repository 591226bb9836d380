package bootstrap

import (
	"context"
	"log/slog"

	"studio-booking/internal/infra/storage"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewProofStore,
			fx.As(new(shared.ProofStore)),
		),
	),
)

func NewProofStore(cfg config.Config) (*storage.ProofStore, error) {
	store, err := storage.New(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}
	slog.Info("proof storage initialized", "driver", cfg.Storage.Driver)
	return store, nil
}
