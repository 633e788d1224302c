package in

import (
	"context"

	streakdto "github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/dto"
	streakin "github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/port/in"
)

type CLIHandler struct {
	usecase streakin.Usecase
}

func NewCLIHandler(usecase streakin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) View(ctx context.Context, path, name string) (streakdto.StreakOutput, error) {
	return h.usecase.View(ctx, streakdto.StreakRef{Path: path, Name: name})
}

func (h CLIHandler) Mark(ctx context.Context, path, name string) (streakdto.MarkOutput, error) {
	return h.usecase.Mark(ctx, streakdto.StreakRef{Path: path, Name: name})
}

func (h CLIHandler) Create(ctx context.Context, name, tickType string) (streakdto.CreateOutput, error) {
	return h.usecase.Create(ctx, streakdto.CreateInput{Name: name, TickType: tickType})
}

func (h CLIHandler) AddTick(ctx context.Context, path, name, rawValue string) (streakdto.StreakOutput, error) {
	return h.usecase.AddTick(ctx, streakdto.AddTickInput{
		Ref:      streakdto.StreakRef{Path: path, Name: name},
		RawValue: rawValue,
	})
}

func (h CLIHandler) SetMetadata(ctx context.Context, path, name, key, value string) (streakdto.StreakOutput, error) {
	return h.usecase.SetMetadata(ctx, streakdto.SetMetadataInput{
		Ref:   streakdto.StreakRef{Path: path, Name: name},
		Key:   key,
		Value: value,
	})
}

func (h CLIHandler) List(ctx context.Context) ([]streakdto.ListItemOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
