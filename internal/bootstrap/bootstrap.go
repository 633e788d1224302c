// Package bootstrap wires adapters, services and usecases into a running
// application. It is the only place that knows concrete adapter types.
package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	streakinadapter "github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/adapter/in"
	streakoutadapter "github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/adapter/out"
	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/service"
	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/usecase"
	"github.com/abhishekmishra/streak-dot-txt/internal/platform/clock"
	"github.com/abhishekmishra/streak-dot-txt/internal/platform/config"
	"github.com/abhishekmishra/streak-dot-txt/internal/ui/app"
)

type App struct {
	Config    config.Config
	StreakCLI streakinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	systemClock := clock.SystemClock{}

	store := streakoutadapter.NewFileStreakStore(cfg.StreaksDir)
	projector, err := streakoutadapter.NewSQLiteStreakProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init streak projector: %w", err)
	}

	svc := service.NewStreakService(systemClock, store, projector)
	interactor := usecase.NewInteractor(svc)

	return &App{
		Config:    cfg,
		StreakCLI: streakinadapter.NewCLIHandler(interactor),
	}, nil
}

// RunTUI starts the full-screen terminal interface.
func RunTUI(a *App) error {
	program := tea.NewProgram(app.NewModel(a.StreakCLI), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
