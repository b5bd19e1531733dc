package triage

import "strings"

func anyExact(symptoms []string, vocab []string) bool {
	for _, s := range symptoms {
		if containsExact(vocab, s) {
			return true
		}
	}
	return false
}

func anyContains(items []string, needle string) bool {
	for _, it := range items {
		if strings.Contains(strings.ToLower(it), needle) {
			return true
		}
	}
	return false
}

// SuggestFollowupTests maps the routed department, symptom clusters, and
// pre-existing conditions to an ordered, deduplicated list of diagnostic
// tests. Two general labs are always included.
func SuggestFollowupTests(symptoms []string, department, risk string, conditions []string) []string {
	lower := make([]string, len(symptoms))
	for i, s := range symptoms {
		lower[i] = strings.ToLower(s)
	}

	var tests []string
	seen := make(map[string]bool)
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			tests = append(tests, t)
		}
	}

	add("Complete Blood Count (CBC)")
	add("Basic Metabolic Panel (BMP)")

	if department == "Cardiology" || anyExact(lower, cardiacSymptoms) {
		add("ECG / 12-Lead EKG")
		add("Troponin Levels")
		add("Echocardiogram")
		if risk == RiskHigh {
			add("Cardiac Catheterization (if indicated)")
		}
	}

	if department == "Neurology" || anyExact(lower, neuroSymptoms) {
		add("CT Head / Brain MRI")
		add("Neurological Examination")
		if containsExact(lower, "seizure") {
			add("EEG")
		}
	}

	if department == "Emergency" {
		add("Point-of-Care Ultrasound")
		add("Arterial Blood Gas (ABG)")
	}

	if department == "Pulmonology" || anyExact(lower, pulmonarySymptoms) {
		add("Chest X-Ray")
		add("Pulmonary Function Tests")
		add("Pulse Oximetry")
	}

	if department == "Gastroenterology" || anyExact(lower, giSymptoms) {
		add("Liver Function Tests")
		add("Abdominal Ultrasound")
	}

	if anyContains(conditions, "diabetes") {
		add("HbA1c")
		add("Fasting Blood Glucose")
	}
	if anyContains(conditions, "hypertension") {
		add("Renal Function Panel")
	}

	return tests
}
