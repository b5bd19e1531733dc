package triage

import "fmt"

// mergeUnique concatenates string lists, dropping exact duplicates while
// preserving first-seen order.
func mergeUnique(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// PerformTriage is the single entry point of the decision engine. It is a
// pure, single-pass pipeline: every input, however degenerate, produces a
// valid TriageResult, and identical inputs produce identical outputs.
// Persistence and LLM enrichment belong to callers.
func PerformTriage(input PatientInput) TriageResult {
	voice := ExtractVoice(input.VoiceTranscript)
	ehr := ExtractEHR(input.EHRText)

	vitals := ParseVitals(input.BP, input.HR, input.Temp)
	crit := CheckCritical(vitals)

	symptoms := mergeUnique(input.Symptoms, voice.Symptoms, ehr.Symptoms)
	conditions := mergeUnique(input.Conditions, ehr.ChronicConditions)

	cls := ClassifyRisk(symptoms, vitals, conditions, crit, voice, ehr)

	// Advanced age is surfaced as a factor but deliberately does not move
	// the tier; see the rule table.
	if input.Age >= 70 && cls.Risk != RiskHigh {
		cls.Factors = append(cls.Factors, formatAgeFactor(input.Age))
	}

	department := RecommendDepartment(symptoms, vitals, crit, cls.Risk)

	priority := 3
	switch cls.Risk {
	case RiskHigh:
		priority = 1
	case RiskMedium:
		priority = 2
	}

	reasoning := ClinicalReasoning(cls.Risk, department, cls.Factors, symptoms, vitals, input.Age)
	tests := SuggestFollowupTests(symptoms, department, cls.Risk, conditions)
	trend := AnalyzeTrend(input.PreviousRisk, input.TrendData)
	fairness := FairnessCheck(input.Age, input.Gender, cls.Risk, cls.Factors)
	reasoning = LocalizeReasoning(reasoning, input.Language)

	return TriageResult{
		RiskLevel:              cls.Risk,
		RiskProbability:        cls.Probability,
		ConfidenceScore:        cls.Confidence,
		RecommendedDepartment:  department,
		PriorityLevel:          priority,
		ContributingFactors:    cls.Factors,
		ClinicalReasoning:      reasoning,
		SuggestedFollowupTests: tests,
		TrendAnalysis:          trend,
		FairnessCheckNote:      fairness,
		ExtractedFromVoice:     voice,
		ExtractedFromEHR:       ehr,
	}
}

func formatAgeFactor(age int) string {
	return fmt.Sprintf("Advanced age (%d) increases clinical risk", age)
}
