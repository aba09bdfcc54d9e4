package config

import "testing"

func TestLevelChartIndex(t *testing.T) {
	chart := NewLevelChart(DefaultInvadersConfig())

	tests := []struct {
		score     int
		threshold int
	}{
		{0, 100},
		{99, 100},
		{499, 100},
		{500, 500},
		{999, 500},
		{1000, 1000},
		{1500, 1500},
		{2000, 2000},
		{2999, 2000},
		{3000, 3000},
		{4990, 3000},
	}

	for _, tc := range tests {
		if got := chart.Row(tc.score).Threshold; got != tc.threshold {
			t.Errorf("Row(%d).Threshold = %d, expected %d", tc.score, got, tc.threshold)
		}
	}
}

func TestLevelChartFixed(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Levels.Progressive = false
	chart := NewLevelChart(cfg)

	if got := chart.Row(4000).Threshold; got != 100 {
		t.Errorf("fixed chart should pin first row, got threshold %d", got)
	}
}

func TestLevelChartSpawnRoll(t *testing.T) {
	chart := NewLevelChart(DefaultInvadersConfig())

	tests := []struct {
		score, level, want int
	}{
		{0, 1, 100},
		{0, 2, 50},
		{1000, 3, 26},
		{3000, 1, 25},
		{3000, 20, 2},  // 25/20 = 1, raised to the minimum
		{3000, 100, 2}, // 25/100 = 0, raised to the minimum
	}

	for _, tc := range tests {
		if got := chart.SpawnRoll(chart.Index(tc.score), tc.level); got != tc.want {
			t.Errorf("SpawnRoll(%d, %d) = %d, expected %d", tc.score, tc.level, got, tc.want)
		}
	}
}

func TestLevelChartAcceleration(t *testing.T) {
	chart := NewLevelChart(DefaultInvadersConfig())

	if got := chart.Acceleration(chart.Index(0), 1); got != 0.01 {
		t.Errorf("Acceleration(0, 1) = %v, expected 0.01", got)
	}
	if got := chart.Acceleration(chart.Index(3000), 2); got != 0.5 {
		t.Errorf("Acceleration(3000, 2) = %v, expected 0.5", got)
	}
}

func TestLevelChartIndexOutOfRange(t *testing.T) {
	chart := NewLevelChart(DefaultInvadersConfig())

	if got := chart.SpawnRoll(-1, 1); got != 100 {
		t.Errorf("SpawnRoll(-1, 1) = %d, expected first row's 100", got)
	}
	if got := chart.Acceleration(42, 1); got != 0.25 {
		t.Errorf("Acceleration(42, 1) = %v, expected last row's 0.25", got)
	}
}

func TestLevelChartRowsIsCopy(t *testing.T) {
	chart := NewLevelChart(DefaultInvadersConfig())
	rows := chart.Rows()
	rows[0].SpawnChance = 1

	if chart.Row(0).SpawnChance != 100 {
		t.Error("Rows() should return a copy")
	}
}
