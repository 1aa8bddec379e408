package stats

type StreakState struct {
	CurrentSign   int
	CurrentLength int
	MaxWinStreak  int
	MaxLossStreak int
}

// Trailing is the signed length of the streak at the end of the series.
func (s StreakState) Trailing() int {
	return s.CurrentSign * s.CurrentLength
}

type RunStats struct {
	Count int
	Mean  float64
	Max   int
}

type Streaks struct {
	StreakState
	WinRuns  RunStats
	LossRuns RunStats
}

// ComputeStreaks scans the results once. A zero result is neither a win nor a
// loss: it ends the running streak and leaves the trailing streak at zero.
func ComputeStreaks(results []float64) Streaks {
	var s StreakState
	var winRuns, lossRuns []int

	closeRun := func() {
		switch {
		case s.CurrentSign > 0:
			winRuns = append(winRuns, s.CurrentLength)
		case s.CurrentSign < 0:
			lossRuns = append(lossRuns, s.CurrentLength)
		}
	}

	for _, r := range results {
		sign := 0
		switch {
		case r > 0:
			sign = 1
		case r < 0:
			sign = -1
		}

		if sign != s.CurrentSign || sign == 0 {
			closeRun()
			s.CurrentSign = sign
			s.CurrentLength = 0
		}
		if sign == 0 {
			continue
		}

		s.CurrentLength++
		if sign > 0 {
			s.MaxWinStreak = max(s.MaxWinStreak, s.CurrentLength)
		} else {
			s.MaxLossStreak = max(s.MaxLossStreak, s.CurrentLength)
		}
	}
	closeRun()

	return Streaks{
		StreakState: s,
		WinRuns:     runStats(winRuns),
		LossRuns:    runStats(lossRuns),
	}
}

func runStats(runs []int) RunStats {
	if len(runs) == 0 {
		return RunStats{}
	}

	rs := RunStats{Count: len(runs)}
	total := 0
	for _, r := range runs {
		total += r
		rs.Max = max(rs.Max, r)
	}
	rs.Mean = float64(total) / float64(len(runs))

	return rs
}
