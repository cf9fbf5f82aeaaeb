package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
)

var log = logrus.New()

func setupLogging() {
	logLevel := logrus.InfoLevel
	if development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	logFile, ok := os.LookupEnv("MINESWEEPER_LOG_FILE")
	if !ok {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create log file hook: ", err)
	}
	log.AddHook(hook)
}

func development() bool {
	d, ok := os.LookupEnv("DEVELOPMENT")
	return ok && d != "0"
}

func listenAddr() string {
	if addr, ok := os.LookupEnv("MINESWEEPER_ADDR"); ok {
		return addr
	}
	return ":8080"
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	setupLogging()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	log.WithFields(logrus.Fields{
		"columns":    cfg.Columns,
		"rows":       cfg.Rows,
		"mine_count": cfg.MineCount,
	}).Info("starting up")

	a := app.New(log, cfg, listenAddr())
	if err := a.Start(ctx); err != nil {
		log.Fatal("server error: ", err)
	}
}
