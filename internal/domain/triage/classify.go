package triage

import (
	"fmt"
	"math"
	"strings"
)

// Classification is the output of the risk scorer.
type Classification struct {
	Risk        string
	Probability float64
	Confidence  int
	Factors     []string
}

// uniqueLower lowercases and deduplicates, preserving first-seen order.
func uniqueLower(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, s := range list {
			l := strings.ToLower(s)
			if !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	return out
}

func countMatches(items, vocab []string) int {
	n := 0
	for _, item := range items {
		l := strings.ToLower(item)
		for _, v := range vocab {
			if strings.Contains(l, v) {
				n++
				break
			}
		}
	}
	return n
}

// ClassifyRisk runs the additive scoring model over every signal source and
// produces a tier, probability, confidence, and the ordered contributing
// factor list. Factor insertion order is contractual: vitals reasons,
// emergency symptoms, symptom burden, conditions, EHR findings, voice notes.
func ClassifyRisk(symptoms []string, vitals VitalsSnapshot, conditions []string,
	crit CriticalityAssessment, voice VoiceExtraction, ehr EHRExtraction) Classification {

	score := 0
	// Empty, not nil, so a factor-less result serializes as [].
	factors := []string{}
	unique := uniqueLower(symptoms, voice.Symptoms, ehr.Symptoms)

	if crit.IsCritical {
		score += 40
		factors = append(factors, crit.Reasons...)
	} else if len(crit.Reasons) > 0 {
		score += 20
		factors = append(factors, crit.Reasons...)
	}

	emergencyCount := countMatches(unique, emergencySymptoms)
	if emergencyCount >= 2 {
		score += 35
		factors = append(factors, fmt.Sprintf("Multiple emergency symptoms detected (%d)", emergencyCount))
	} else if emergencyCount == 1 {
		score += 20
		factors = append(factors, "Emergency symptom detected")
	}

	switch {
	case len(unique) >= 5:
		score += 15
		factors = append(factors, fmt.Sprintf("High symptom burden: %d symptoms", len(unique)))
	case len(unique) >= 3:
		score += 8
		factors = append(factors, fmt.Sprintf("Moderate symptom load: %d symptoms", len(unique)))
	}

	highCount := countMatches(conditions, highRiskConditions)
	medCount := countMatches(conditions, moderateRiskConditions)
	if highCount > 0 {
		score += 15 * highCount
		factors = append(factors, fmt.Sprintf("High-risk pre-existing conditions: %d", highCount))
	}
	if medCount > 0 {
		score += 8 * medCount
		factors = append(factors, fmt.Sprintf("Moderate-risk pre-existing conditions: %d", medCount))
	}

	if n := len(ehr.AbnormalFindings); n > 0 {
		if n > 3 {
			n = 3
		}
		score += 10 * n
		factors = append(factors, fmt.Sprintf("Abnormal findings from EHR: %s", strings.Join(ehr.AbnormalFindings, ", ")))
	}

	if strings.Contains(voice.SeverityClues, "Severity indicators detected") {
		score += 10
		factors = append(factors, "Severity indicators noted from voice transcript")
	}
	if strings.Contains(voice.EmergencyFlags, "Emergency flags") {
		score += 15
		factors = append(factors, "Emergency flags detected from voice transcript")
	}

	probability := math.Min(float64(score)/100, 0.99)
	probability = math.Round(probability*100) / 100

	confidence := 50 + len(factors)*8
	if confidence > 97 {
		confidence = 97
	}

	risk := RiskLow
	switch {
	case score >= 50:
		risk = RiskHigh
	case score >= 25:
		risk = RiskMedium
	}

	return Classification{Risk: risk, Probability: probability, Confidence: confidence, Factors: factors}
}
