package in

import (
	"context"

	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/dto"
)

type Usecase interface {
	View(ctx context.Context, ref dto.StreakRef) (dto.StreakOutput, error)
	Mark(ctx context.Context, ref dto.StreakRef) (dto.MarkOutput, error)
	Create(ctx context.Context, input dto.CreateInput) (dto.CreateOutput, error)
	AddTick(ctx context.Context, input dto.AddTickInput) (dto.StreakOutput, error)
	SetMetadata(ctx context.Context, input dto.SetMetadataInput) (dto.StreakOutput, error)
	List(ctx context.Context) ([]dto.ListItemOutput, error)
	Reindex(ctx context.Context) error
}
