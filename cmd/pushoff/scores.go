package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/san-kum/pushoff/internal/config"
	"github.com/san-kum/pushoff/internal/scores"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func showScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	board, err := scores.Open(cfg.ScoresPath())
	if err != nil {
		return err
	}
	defer board.Close()

	names := config.ListPresets()
	if len(args) > 0 {
		names = args
	}

	wins := newTable("BOARD", "P1", "P2")
	for _, name := range names {
		w, err := board.Wins(name)
		if err != nil {
			return err
		}
		if w == [2]int{} {
			continue
		}
		wins.Row(name, strconv.Itoa(w[0]), strconv.Itoa(w[1]))
	}
	fmt.Println(titleStyle.Render("round wins"))
	fmt.Println(wins.Render())

	for _, name := range names {
		top, err := board.Top(name, topN)
		if err != nil {
			return err
		}
		if len(top) == 0 {
			continue
		}
		t := newTable("#", "SCORE", "PLAYED")
		for i, e := range top {
			t.Row(strconv.Itoa(i+1), strconv.Itoa(e.Score), e.PlayedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Println(titleStyle.Render("best scores: " + name))
		fmt.Println(t.Render())
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	if writePath != "" {
		name, _ := cmd.Flags().GetString("preset")
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		if err := config.Save(writePath, cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s to %s\n", name, writePath)
		return nil
	}

	t := newTable("PRESET", "MODE", "CHARGE", "OBSTACLES", "PLATFORM")
	mark := func(on bool) string {
		if on {
			return "yes"
		}
		return "-"
	}
	for _, name := range config.ListPresets() {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		t.Row(name, cfg.Mode, mark(cfg.Features.Charge), mark(cfg.Features.Obstacles), mark(cfg.Features.Platform))
	}
	fmt.Println(t.Render())
	return nil
}
