package progression

// levelThresholds[i] is the total XP required for level i+1. Level 1 starts
// at 0; growth roughly doubles through level 12.
var levelThresholds = []int{
	0,     // level 1
	100,   // level 2
	250,   // level 3
	500,   // level 4
	1000,  // level 5
	1750,  // level 6
	2750,  // level 7
	4000,  // level 8
	5500,  // level 9
	7500,  // level 10
	10000, // level 11
	13000, // level 12
}

// LevelProgress describes where totalXP sits within its level.
type LevelProgress struct {
	Level          int
	CurrentLevelXP int
	NextLevelXP    int
	Progress       float64 // in [0, 1]
}

// thresholdFor returns the total XP required to reach the given 1-based
// level. Past the fixed table each level costs double the one before it.
func thresholdFor(level int) int {
	if level <= 1 {
		return 0
	}
	if level <= len(levelThresholds) {
		return levelThresholds[level-1]
	}
	threshold := levelThresholds[len(levelThresholds)-1]
	for i := len(levelThresholds); i < level; i++ {
		threshold *= 2
	}
	return threshold
}

// Level returns the highest level whose threshold totalXP meets. Negative
// totals are treated as zero. Monotonic non-decreasing in totalXP.
func Level(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	level := 1
	for thresholdFor(level+1) <= totalXP {
		level++
	}
	return level
}

// Progress reports the current level plus XP into it, the XP span to the next
// level, and a completion fraction clamped to [0, 1].
func Progress(totalXP int) LevelProgress {
	if totalXP < 0 {
		totalXP = 0
	}
	level := Level(totalXP)
	current := thresholdFor(level)
	next := thresholdFor(level + 1)

	p := LevelProgress{
		Level:          level,
		CurrentLevelXP: totalXP - current,
		NextLevelXP:    next - current,
	}
	if p.NextLevelXP > 0 {
		p.Progress = float64(p.CurrentLevelXP) / float64(p.NextLevelXP)
	}
	if p.Progress > 1 {
		p.Progress = 1
	}
	return p
}
