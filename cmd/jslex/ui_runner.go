package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jslex/internal/driver"
	"jslex/internal/pipeline"
	"jslex/internal/ui"
)

type dirOutcome struct {
	result *driver.DirResult
	err    error
}

// runTokenizeDirWithUI запускает обход каталога под интерактивной
// моделью прогресса: события пайплайна уходят в канал, Bubble Tea
// рисует их, итог возвращается после остановки UI.
func runTokenizeDirWithUI(ctx context.Context, title, dir string, opts driver.DirOptions) (*driver.DirResult, error) {
	files, err := driver.DiscoverFiles(dir, opts.Exts)
	if err != nil {
		return nil, err
	}

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = pipeline.ChannelSink{Ch: events}
		res, runErr := driver.TokenizeDir(ctx, dir, optsCopy)
		outcomeCh <- dirOutcome{result: res, err: runErr}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
