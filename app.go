package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	config  *Config
	session *Session
	model   *Model
	program *tea.Program
}

func NewApp(config *Config) *App {
	session := NewSession()

	var loadErr error
	if config.File != "" {
		result, err := LoadLogFile(config.File)
		loadErr = err
		session.Load(result)
	}

	filter := DefaultFilterState()
	filter.Search = config.Search
	filter.Category = config.Category
	filter.HideDuplicates = config.HideDuplicates
	session.SetFilter(filter)

	model := NewModel(config, session)
	if loadErr != nil {
		model.status = fmt.Sprintf("No logs loaded: %v", loadErr)
	}

	return &App{
		config:  config,
		session: session,
		model:   model,
	}
}

func (a *App) Run() error {
	a.program = tea.NewProgram(a.model, tea.WithAltScreen())

	if _, err := a.program.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}

	return nil
}
