package progression

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{999, 4},
		{1000, 5},
		{7500, 10},
		{12999, 11},
		{13000, 12},
		{25999, 12},
		{26000, 13}, // doubling past the table
		{52000, 14},
	}

	for _, tt := range tests {
		if got := Level(tt.totalXP); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 30000; xp += 17 {
		level := Level(xp)
		if level < prev {
			t.Fatalf("Level(%d) = %d, below previous %d", xp, level, prev)
		}
		prev = level
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name        string
		totalXP     int
		wantLevel   int
		wantCurrent int
		wantNext    int
	}{
		{"fresh profile", 0, 1, 0, 100},
		{"exactly at a threshold", 100, 2, 0, 150},
		{"mid level", 175, 2, 75, 150},
		{"deep in the table", 5500, 9, 0, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.totalXP)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.CurrentLevelXP != tt.wantCurrent {
				t.Errorf("CurrentLevelXP = %d, want %d", got.CurrentLevelXP, tt.wantCurrent)
			}
			if got.NextLevelXP != tt.wantNext {
				t.Errorf("NextLevelXP = %d, want %d", got.NextLevelXP, tt.wantNext)
			}
			if got.Progress < 0 || got.Progress > 1 {
				t.Errorf("Progress = %v, outside [0, 1]", got.Progress)
			}
		})
	}
}

func TestProgressAccountsForAllXP(t *testing.T) {
	for xp := 0; xp <= 30000; xp += 113 {
		p := Progress(xp)
		if thresholdFor(p.Level)+p.CurrentLevelXP != xp {
			t.Fatalf("Progress(%d): threshold %d + current %d != total",
				xp, thresholdFor(p.Level), p.CurrentLevelXP)
		}
	}
}
