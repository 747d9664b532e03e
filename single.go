package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/wavedeck/internal/config"
	"github.com/llehouerou/wavedeck/internal/logging"
	"github.com/llehouerou/wavedeck/internal/player"
)

// Messages printed when single-shot playback cannot start.
const (
	msgDevice = "Failed to open the default audio device"
	msgOpen   = "Failed to open file"
	msgDecode = "Failed to decode the file"
)

// errInterrupted is returned by playOne when ctx ends before the track.
var errInterrupted = errors.New("interrupted")

func runSingle(ctx context.Context, opts config.Options) error {
	log, closeLog, err := logging.New(opts.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	p := player.New()
	defer p.Close()

	err = playOne(ctx, p, opts, log)
	if errors.Is(err, errInterrupted) {
		return nil
	}
	return err
}

// playOne plays opts.Path on p and blocks until it ends, or until ctx is
// done. Startup failures are reduced to one line per error kind.
func playOne(ctx context.Context, p player.Interface, opts config.Options, log *logrus.Logger) error {
	if err := p.Open(); err != nil {
		log.WithError(err).Error(msgDevice)
		return errors.New(msgDevice)
	}

	if err := p.Play(opts.Path, opts.Loop); err != nil {
		log.WithError(err).WithField("path", opts.Path).Error("play failed")
		return errors.New(singleMessage(err))
	}
	log.WithFields(logrus.Fields{"path": opts.Path, "loop": opts.Loop}).Debug("playing")

	select {
	case <-p.Done():
		return nil
	case <-ctx.Done():
		p.Stop()
		return errInterrupted
	}
}

func singleMessage(err error) string {
	switch player.KindOf(err) {
	case player.KindIO:
		return msgOpen
	case player.KindDecode:
		return msgDecode
	case player.KindDevice:
		return msgDevice
	}
	return msgDecode
}
