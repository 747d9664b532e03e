package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavedeck/internal/app"
	"github.com/llehouerou/wavedeck/internal/config"
	"github.com/llehouerou/wavedeck/internal/logging"
	"github.com/llehouerou/wavedeck/internal/player"
	"github.com/llehouerou/wavedeck/internal/stderr"
)

func runInteractive(ctx context.Context, opts config.Options) error {
	log, closeLog, err := logging.New(opts.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	start := opts.StartDir
	if start == "" {
		start, err = config.ResolveStartDir()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
	}

	modelOpts := []app.ModelOption{app.WithPollInterval(opts.PollInterval)}

	// Capture before the audio device opens so ALSA noise never reaches
	// the screen. Without capture the UI still works.
	stopCapture := func() {}
	capture, err := stderr.Start()
	if err != nil {
		log.WithError(err).Warn("stderr capture unavailable")
	} else {
		defer capture.Stop()
		stopCapture = capture.Stop
		modelOpts = append(modelOpts, app.WithStderr(capture.Lines()))
	}

	p := player.New()
	defer p.Close()

	state := app.NewState(start, p, app.WithLogger(log))
	program := tea.NewProgram(app.NewModel(state, modelOpts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err = program.Run()
	return finishRun(ctx, err, stopCapture)
}

// finishRun restores stderr before a Run error can be printed, so panics
// and failures reach the terminal instead of the capture pipe. A kill caused
// by ctx cancellation is a normal exit.
func finishRun(ctx context.Context, err error, stopCapture func()) error {
	if err == nil {
		return nil
	}
	stopCapture()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
