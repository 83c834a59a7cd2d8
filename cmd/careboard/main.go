package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"careboard/internal/catalog"
	"careboard/internal/config"
	"careboard/internal/eventbus"
	"careboard/internal/ui"
)

func main() {
	dirFlag := flag.String("dir", "", "catalog directory holding the listing files")
	flag.StringVar(dirFlag, "d", "", "catalog directory (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("careboard.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configPath := configFilePath()
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.LoadFromPath(configPath)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig("data")
	}
	if *dirFlag != "" {
		cfg.CatalogDir = *dirFlag
	}

	// Catalog service subscribes to delete and reload requests automatically
	catalogSvc := catalog.NewService(bus, cfg.CatalogDir)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventTableUpdated, forward)
	bus.Subscribe(eventbus.EventCatalogLoaded, forward)
	bus.Subscribe(eventbus.EventRecordDeleted, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Persist configuration changes made from the UI
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.UISettings.DarkMode = event.DarkMode
			if err := configSvc.SaveToPath(cfg, configPath); err != nil {
				log.Printf("Error saving config: %v", err)
			}
		}
	})

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Initial load plus the directory watch
	go func() {
		if err := catalogSvc.Load(); err != nil {
			log.Printf("Catalog load failed: %v", err)
			bus.Publish(eventbus.ErrorEvent{Message: "Failed to load listings", Err: err})
		}
	}()
	go func() {
		if err := catalogSvc.Watch(ctx); err != nil {
			log.Printf("Catalog watch stopped: %v", err)
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
	cancel()
}

// configFilePath puts the config file in the home directory, falling back
// to the working directory when home cannot be resolved.
func configFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.FileName
	}
	return filepath.Join(home, config.FileName)
}
