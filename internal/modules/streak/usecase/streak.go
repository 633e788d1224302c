package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/domain"
	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/dto"
	streakin "github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/port/in"
	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/service"
)

type Interactor struct {
	svc *service.StreakService
}

func NewInteractor(svc *service.StreakService) streakin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) View(ctx context.Context, ref dto.StreakRef) (dto.StreakOutput, error) {
	snap, err := i.svc.Get(ctx, toRef(ref))
	if err != nil {
		return dto.StreakOutput{}, err
	}
	return toStreakOutput(snap), nil
}

func (i *Interactor) Mark(ctx context.Context, ref dto.StreakRef) (dto.MarkOutput, error) {
	snap, marked, err := i.svc.Mark(ctx, toRef(ref))
	if err != nil {
		return dto.MarkOutput{}, err
	}
	return dto.MarkOutput{Path: snap.Path, Name: snap.Streak.Name, Marked: marked}, nil
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.CreateOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return dto.CreateOutput{}, fmt.Errorf("streak name is required")
	}
	tickType := domain.TickType(input.TickType)
	if input.TickType == "" {
		tickType = domain.TickDaily
	}
	snap, err := i.svc.Create(ctx, strings.TrimSpace(input.Name), tickType)
	if err != nil {
		return dto.CreateOutput{}, err
	}
	return dto.CreateOutput{
		Path:     snap.Path,
		Name:     snap.Streak.Name,
		TickType: string(snap.Streak.TickType),
	}, nil
}

func (i *Interactor) AddTick(ctx context.Context, input dto.AddTickInput) (dto.StreakOutput, error) {
	snap, err := i.svc.AddTick(ctx, toRef(input.Ref), input.RawValue)
	if err != nil {
		return dto.StreakOutput{}, err
	}
	return toStreakOutput(snap), nil
}

func (i *Interactor) SetMetadata(ctx context.Context, input dto.SetMetadataInput) (dto.StreakOutput, error) {
	if strings.TrimSpace(input.Key) == "" {
		return dto.StreakOutput{}, fmt.Errorf("metadata key is required")
	}
	snap, err := i.svc.SetMetadata(ctx, toRef(input.Ref), input.Key, input.Value)
	if err != nil {
		return dto.StreakOutput{}, err
	}
	return toStreakOutput(snap), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.ListItemOutput, error) {
	snapshots, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ListItemOutput, 0, len(snapshots))
	for _, snap := range snapshots {
		out = append(out, dto.ListItemOutput{
			Path:          snap.Path,
			Name:          snap.Streak.Name,
			TickType:      string(snap.Streak.TickType),
			TickedToday:   snap.TickedToday,
			CurrentStreak: snap.Streak.Stats.CurrentStreak,
			LongestStreak: snap.Streak.Stats.LongestStreak,
			TickAverage:   snap.Streak.Stats.TickAverage,
		})
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toRef(ref dto.StreakRef) service.Ref {
	return service.Ref{Path: ref.Path, Name: ref.Name}
}

func toStreakOutput(snap service.Snapshot) dto.StreakOutput {
	streak := snap.Streak
	ticks := make([]dto.TickOutput, 0, len(streak.Ticks))
	for _, tick := range streak.Ticks {
		ticks = append(ticks, dto.TickOutput{
			RawValue: tick.RawValue,
			Instant:  tick.Instant,
			Year:     tick.Year(),
			Month:    tick.Month(),
			Day:      tick.Day(),
			Weekday:  tick.Weekday(),
		})
	}
	metadata := make([]dto.MetaOutput, 0, len(streak.Metadata))
	for _, field := range streak.Metadata {
		metadata = append(metadata, dto.MetaOutput{Key: field.Key, Value: field.Value})
	}
	return dto.StreakOutput{
		Path:     snap.Path,
		Name:     streak.Name,
		TickType: string(streak.TickType),
		Metadata: metadata,
		Ticks:    ticks,
		Stats: dto.StatsOutput{
			TotalPeriods:    streak.Stats.TotalPeriods,
			TickedPeriods:   streak.Stats.TickedPeriods,
			UntickedPeriods: streak.Stats.UntickedPeriods,
			CurrentStreak:   streak.Stats.CurrentStreak,
			LongestStreak:   streak.Stats.LongestStreak,
			TickAverage:     streak.Stats.TickAverage,
		},
		Years:       streak.Years(),
		TickedToday: snap.TickedToday,
	}
}
