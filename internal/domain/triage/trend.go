package triage

import "fmt"

var riskScores = map[string]int{
	RiskLow:    1,
	RiskMedium: 2,
	RiskHigh:   3,
}

// AnalyzeTrend compares the current assessment context against historical
// risk records. The comparison window is the last three records versus
// everything before them; shifts beyond ±0.5 of the 1–3 risk scale report
// a worsening or improving trend.
func AnalyzeTrend(previousRisk string, history []HistoricalRecord) string {
	if len(history) == 0 {
		if previousRisk != "" {
			return fmt.Sprintf("Previous risk level was %s. No historical trend data available for comparison.", previousRisk)
		}
		return "No historical data available. This is the first assessment for this patient."
	}

	scores := make([]int, len(history))
	for i, h := range history {
		s, ok := riskScores[h.RiskLevel]
		if !ok {
			s = 1
		}
		scores[i] = s
	}

	if len(scores) < 2 {
		return fmt.Sprintf("Only one historical record found (%s on %s). Insufficient data for trend analysis.",
			history[0].RiskLevel, history[0].Date)
	}

	window := 3
	if len(scores) < window {
		window = len(scores)
	}
	recent := scores[len(scores)-window:]
	older := scores[:len(scores)-window]

	avgRecent := average(recent)
	avgOlder := avgRecent
	if len(older) > 0 {
		avgOlder = average(older)
	}

	switch {
	case avgRecent > avgOlder+0.5:
		return fmt.Sprintf("WORSENING TREND: Patient risk has been escalating. Recent average risk score: %.1f/3 vs earlier: %.1f/3. Close monitoring recommended.", avgRecent, avgOlder)
	case avgRecent < avgOlder-0.5:
		return fmt.Sprintf("IMPROVING TREND: Patient condition shows improvement. Recent average risk score: %.1f/3 vs earlier: %.1f/3. Continue current management.", avgRecent, avgOlder)
	default:
		return fmt.Sprintf("STABLE TREND: Patient risk level remains consistent. Average risk score: %.1f/3. Continue monitoring.", avgRecent)
	}
}

func average(xs []int) float64 {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}
