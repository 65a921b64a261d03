package main

import (
	"context"
	"log/slog"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/usecases"
)

// runProcessUploads drains every PENDING upload in one pass, for cron style
// batch processing alongside the on-demand API route.
func runProcessUploads(ctx context.Context, conf AppConfiguration, logger *slog.Logger) error {
	uc, err := newUsecases(ctx, conf)
	if err != nil {
		return err
	}

	ucWithCreds := usecases.UsecasesWithCreds{
		Usecases: uc,
		Credentials: models.Credentials{
			Role: models.ADMIN,
			ActorIdentity: models.Identity{
				ApiKeyName: "batch-process-uploads",
			},
		},
	}

	logger.InfoContext(ctx, "processing pending uploads")
	processingUsecase := ucWithCreds.NewUploadProcessingUsecase()
	return processingUsecase.ProcessPendingUploads(ctx)
}
