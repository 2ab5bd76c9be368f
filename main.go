package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"openprism/internal/config"
	"openprism/internal/eventbus"
	"openprism/internal/notification"
	"openprism/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, logPath string
	flag.StringVar(&configPath, "config", "", "Path to the configuration file")
	flag.StringVar(&configPath, "c", "", "Path to the configuration file (shorthand)")
	flag.StringVar(&logPath, "log", "", "Path to the log file (overrides the configuration)")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	cfg, existing, err := loadOrCreateConfig(configSvc)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	if logPath == "" {
		logPath = cfg.LogFile
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("Using config %s", configSvc.Path())

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	// Forward events to the event channel
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventNotificationPosted,
		eventbus.EventGracePeriodEnded,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forwardEvent)
	}
	bus.Subscribe(eventbus.EventGestureDetected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.GestureDetectedEvent); ok {
			log.Printf("%s: gesture %s", event.Screen, event.Gesture)
		}
	})

	notifications := notification.NewManager(bus)

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg, notifications)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: existing})
	if os.Getenv("OPENPRISM_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the configuration, writing the defaults when there is no file yet
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, bool, error) {
	if _, err := os.Stat(configSvc.Path()); err == nil {
		cfg, err := configSvc.Load()
		return cfg, true, err
	}

	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		// Running without a writable config directory is fine
		log.Printf("Failed to save config: %v", err)
	}
	return cfg, false, nil
}
