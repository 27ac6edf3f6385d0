package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/drake/slide/config"
	"github.com/drake/slide/debug"
	"github.com/drake/slide/internal/log"
	"github.com/drake/slide/scripts"
	"github.com/drake/slide/session"
	"github.com/drake/slide/ui"
)

func main() {
	// Parse flags
	simpleUI := flag.Bool("simple", false, "Use simple console UI instead of TUI")
	settingsPath := flag.String("settings", config.SettingsFile(), "Path to settings.yaml")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Settings:", err)
	}

	if debug.Enabled() {
		closeLog, err := log.OpenFile(settings.Debug.LogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Debug log:", err)
		} else {
			defer closeLog()
			log.SetLevel(log.LevelDebug)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Select UI mode
	var tui session.UI
	if *simpleUI {
		tui = ui.NewConsoleUI(os.Stdin, os.Stdout)
	} else {
		tui = ui.NewBubbleTeaUI()
	}

	sess := session.New(tui, session.Config{
		CoreScripts: scripts.CoreScripts,
		ConfigDir:   config.Dir(),
		InitFile:    config.InitFile(),
		UserScripts: flag.Args(),
		Animation:   settings.AnimateConfig(),
	})

	debug.NewMonitor(ctx, sess).Start()

	log.Info("starting (simple=%v)", *simpleUI)
	if err := sess.Run(ctx); err != nil {
		log.Error("run: %v", err)
		fmt.Println("UI error:", err)
		os.Exit(1)
	}
}
