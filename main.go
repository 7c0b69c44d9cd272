// Package main runs LC-3 program images in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/aryanA101a/lulu/terminal"
	"github.com/aryanA101a/lulu/vm"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

var errNoImages = errors.New("no image file given")

type options struct {
	debug   bool
	logFile string
	images  []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	opts, err := readArguments(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger, closeLog, err := newLogger(opts, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	machine := vm.New(terminal.NewConsole(ctx, stdin, stdout), vm.WithLogger(logger))
	for _, image := range opts.images {
		if err := machine.LoadImageFile(image); err != nil {
			logger.WithError(err).WithField("image", image).Error("failed to load image")
			return exitFailure
		}
	}

	restore, err := terminal.EnableRawMode(stdin.Fd(), logger)
	if err != nil {
		logger.WithError(err).Error("terminal setup failed")
		return exitFailure
	}
	defer func() {
		if err := restore(); err != nil {
			logger.WithError(err).Warn("terminal restore failed")
		}
	}()

	err = machine.Run(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stdout)
		logger.WithField("pc", fmt.Sprintf("0x%04x", machine.PC())).Info("interrupted")
		return exitInterrupted
	default:
		logger.WithError(err).WithFields(logrus.Fields{
			"pc":     fmt.Sprintf("0x%04x", machine.PC()),
			"cycles": machine.Cycles(),
		}).Error("machine fault")
		return exitFailure
	}
}

func readArguments(args []string, stderr io.Writer) (options, error) {
	flags := flag.NewFlagSet("lulu", flag.ContinueOnError)
	flags.SetOutput(stderr)
	opts := options{}

	flags.BoolVar(&opts.debug, "debug", false, "log every executed instruction")
	flags.StringVar(&opts.logFile, "log", "", "append log output to this file instead of stderr")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: lulu [options] <image-file1> [image-file2] ...\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	opts.images = flags.Args()
	if len(opts.images) == 0 {
		flags.Usage()
		return opts, errNoImages
	}
	return opts, nil
}

// newLogger writes warnings and errors to stderr by default. The returned
// function closes the log file, if one was opened.
func newLogger(opts options, stderr io.Writer) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(logrus.WarnLevel)
	if opts.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if opts.logFile == "" {
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(opts.logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file '%s': %w", opts.logFile, err)
	}
	logger.SetOutput(f)
	return logger, func() { _ = f.Close() }, nil
}
