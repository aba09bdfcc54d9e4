package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-attack/internal/config"
)

var (
	flagChartConfig     string
	flagChartDifficulty string
	flagChartLevel      int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the level chart",
	Long: `Print the level chart a game would use: the score threshold of each
row, the 1-in-N alien spawn roll and the alien acceleration, scaled for
the given level.

Examples:
  invaders chart
  invaders chart --difficulty hard --level 3`,
	Args: cobra.NoArgs,
	Run:  runChart,
}

func init() {
	chartCmd.Flags().StringVar(&flagChartConfig, "config", "", "Path to custom game config YAML")
	chartCmd.Flags().StringVar(&flagChartDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	chartCmd.Flags().IntVar(&flagChartLevel, "level", 1, "Level to scale the chart for")
}

func runChart(cmd *cobra.Command, args []string) {
	cfg, source, err := loadGameConfig(flagChartConfig, flagChartDifficulty, true, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Level chart (%s, level %d)\n\n", source, max(flagChartLevel, 1))
	printChart(os.Stdout, cfg, flagChartLevel)
}

// printChart renders every chart row scaled for level. With progression
// off only the first row is ever used, which the Active column shows.
func printChart(w io.Writer, cfg config.InvadersConfig, level int) {
	level = max(level, 1)
	chart := config.NewLevelChart(cfg)

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Row", "Threshold", "Spawn 1-in-N", "Acceleration", "Active").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, row := range chart.Rows() {
		active := "yes"
		if !cfg.Levels.Progressive && i > 0 {
			active = "no"
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(row.Threshold),
			strconv.Itoa(chart.SpawnRoll(i, level)),
			strconv.FormatFloat(chart.Acceleration(i, level), 'f', 3, 64),
			active,
		)
	}

	fmt.Fprintln(w, t.Render())
}
