package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/staffboard/tui-go/internal/api"
	"github.com/staffboard/tui-go/internal/config"
	"github.com/staffboard/tui-go/internal/session"
	"github.com/staffboard/tui-go/internal/tui"
)

func main() {
	// Optional .env for STAFFBOARD_API_URL during development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.BaseURL)
	sess := session.New()

	p := tea.NewProgram(
		tui.NewRootModel(client, sess),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
