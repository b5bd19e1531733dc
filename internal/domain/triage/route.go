package triage

import "strings"

func containsExact(vocab []string, s string) bool {
	for _, v := range vocab {
		if v == s {
			return true
		}
	}
	return false
}

func countExact(symptoms []string, vocab []string) int {
	n := 0
	for _, s := range symptoms {
		if containsExact(vocab, s) {
			n++
		}
	}
	return n
}

// RecommendDepartment maps symptom clusters and risk to a destination
// specialty. Critical or High-risk cases short-circuit into a three-way
// tie-break: cardiac-only symptoms go to Cardiology, neuro-only to
// Neurology, everything else (both, neither, ambiguous) to Emergency.
// Non-critical cases route to the specialty with the most symptom matches;
// equal counts resolve in the fixed order Cardiology, Neurology,
// Pulmonology, Gastroenterology, and zero matches default to General
// Medicine.
func RecommendDepartment(symptoms []string, vitals VitalsSnapshot, crit CriticalityAssessment, risk string) string {
	lower := make([]string, len(symptoms))
	for i, s := range symptoms {
		lower[i] = strings.ToLower(s)
	}

	if crit.IsCritical || risk == RiskHigh {
		hasCardiac := false
		hasNeuro := false
		for _, s := range lower {
			if containsExact(cardiacSymptoms, s) {
				hasCardiac = true
			}
			if containsExact(neuroSymptoms, s) {
				hasNeuro = true
			}
		}
		if hasCardiac && !hasNeuro {
			return "Cardiology"
		}
		if hasNeuro && !hasCardiac {
			return "Neurology"
		}
		return "Emergency"
	}

	specialties := []struct {
		dept  string
		vocab []string
	}{
		{"Cardiology", cardiacSymptoms},
		{"Neurology", neuroSymptoms},
		{"Pulmonology", pulmonarySymptoms},
		{"Gastroenterology", giSymptoms},
	}

	best := "General Medicine"
	bestScore := 0
	for _, sp := range specialties {
		if score := countExact(lower, sp.vocab); score > bestScore {
			best = sp.dept
			bestScore = score
		}
	}
	return best
}
