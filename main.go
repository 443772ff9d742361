package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"anypick/internal/config"
	"anypick/internal/domain"
	"anypick/internal/providers"
	"anypick/internal/ui"
	"anypick/internal/ui/services/events"
	"anypick/internal/ui/services/picker"
)

func main() {
	var targetDir string
	var configPath string
	var showScores bool
	flag.StringVar(&targetDir, "dir", "", "Directory to scan for files")
	flag.StringVar(&targetDir, "d", "", "Directory to scan for files (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&showScores, "scores", false, "Show raw match scores next to results")
	flag.Parse()

	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}
	if targetDir == "" {
		var err error
		targetDir, err = os.Getwd()
		if err != nil {
			fmt.Printf("Error getting current directory: %v\n", err)
			os.Exit(1)
		}
	}
	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile("anypick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg := loadConfig(configPath)
	if showScores {
		cfg.ShowScores = true
	}

	// Register providers; the registry is fixed for the session
	filesProvider := providers.NewFilesProvider(absDir, cfg.Editor)
	bookmarksProvider := providers.NewBookmarksProvider(cfg.Bookmarks, os.Stdout)
	registry := []domain.Provider{filesProvider, bookmarksProvider}

	// Collect all candidates once up front
	candidates, err := providers.Collect(registry)
	if err != nil {
		fmt.Printf("Error collecting candidates: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Collected %d candidates from %d providers", len(candidates), len(registry))

	// Wire the picker service; the bus is synchronous, everything
	// below runs on the UI update loop.
	bus := events.NewBus()
	bus.Subscribe("picker.ResultsUpdatedEvent", func(e interface{}) {
		if event, ok := e.(picker.ResultsUpdatedEvent); ok {
			log.Printf("Pattern %q: %d matches", event.Pattern, event.MatchCount)
		}
	})
	bus.Subscribe("picker.ConfirmedEvent", func(e interface{}) {
		if event, ok := e.(picker.ConfirmedEvent); ok {
			log.Printf("Confirmed %q", event.Name)
		}
	})

	pickerSvc := picker.NewService(bus, cfg)
	pickerSvc.SetCandidates(candidates)

	uiModel := ui.NewModel(cfg, pickerSvc)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Reveal needs the program handle to hand the terminal to the pager
	pagerOps := ui.NewPagerOps(p)
	filesProvider.SetPager(pagerOps.ShowInPager)
	bookmarksProvider.SetPager(pagerOps.ShowInPager)

	finalModel, err := p.Run()
	if err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// The open action runs after the UI has released the terminal
	if m, ok := finalModel.(*ui.Model); ok && m.Confirmed() {
		if err := pickerSvc.DispatchOpen(); err != nil {
			log.Printf("Open failed: %v", err)
			fmt.Printf("Open failed: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadConfig loads the config from the given path, the default
// location, or falls back to defaults.
func loadConfig(path string) *config.Config {
	configSvc := config.NewConfigService()

	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			log.Printf("Failed to load config from %s: %v", path, err)
			return config.DefaultConfig()
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
