package triage

import (
	"strings"
	"testing"
)

func TestExtractVoice_EmptyTranscript(t *testing.T) {
	v := ExtractVoice("")
	if len(v.Symptoms) != 0 {
		t.Errorf("expected no symptoms, got %v", v.Symptoms)
	}
	if v.SeverityClues != "No voice transcript provided." {
		t.Errorf("unexpected severity clues: %q", v.SeverityClues)
	}
	if v.EmergencyFlags != "None" {
		t.Errorf("unexpected emergency flags: %q", v.EmergencyFlags)
	}
}

func TestExtractVoice_SymptomsAndSeverity(t *testing.T) {
	v := ExtractVoice("I have severe crushing chest pain and sudden confusion")

	found := map[string]bool{}
	for _, s := range v.Symptoms {
		found[s] = true
	}
	if !found["Chest pain"] {
		t.Errorf("expected Chest pain in %v", v.Symptoms)
	}
	if !found["Confusion"] {
		t.Errorf("expected Confusion in %v", v.Symptoms)
	}

	if !strings.HasPrefix(v.SeverityClues, "Severity indicators detected:") {
		t.Errorf("unexpected severity clues: %q", v.SeverityClues)
	}
	for _, w := range []string{"severe", "sudden", "crushing"} {
		if !strings.Contains(v.SeverityClues, w) {
			t.Errorf("expected %q in severity clues %q", w, v.SeverityClues)
		}
	}

	if !strings.HasPrefix(v.EmergencyFlags, "Emergency flags:") {
		t.Errorf("unexpected emergency flags: %q", v.EmergencyFlags)
	}
	if !strings.Contains(v.EmergencyFlags, "chest pain") || !strings.Contains(v.EmergencyFlags, "confusion") {
		t.Errorf("expected chest pain and confusion flags, got %q", v.EmergencyFlags)
	}
}

func TestExtractVoice_NoSevereIndicators(t *testing.T) {
	v := ExtractVoice("mild headache since yesterday")
	if v.SeverityClues != "No severe indicators detected from voice transcript." {
		t.Errorf("unexpected severity clues: %q", v.SeverityClues)
	}
	if v.EmergencyFlags != "No emergency flags detected." {
		t.Errorf("unexpected emergency flags: %q", v.EmergencyFlags)
	}
	if len(v.Symptoms) != 1 || v.Symptoms[0] != "Headache" {
		t.Errorf("expected [Headache], got %v", v.Symptoms)
	}
}

func TestExtractEHR_EmptyText(t *testing.T) {
	e := ExtractEHR("   ")
	if len(e.Symptoms) != 0 || len(e.AbnormalFindings) != 0 || len(e.ChronicConditions) != 0 {
		t.Errorf("expected empty extraction, got %+v", e)
	}
	if len(e.Vitals) != 0 {
		t.Errorf("expected no vitals, got %v", e.Vitals)
	}
}

func TestExtractEHR_ClinicalNote(t *testing.T) {
	note := "Patient reports chest pain and dyspnea. BP: 150/95, HR: 110, Temp: 101.5, SpO2: 92. History of diabetes and hypertension. Elevated troponin."
	e := ExtractEHR(note)

	found := map[string]bool{}
	for _, s := range e.Symptoms {
		found[s] = true
	}
	if !found["Chest pain"] || !found["Dyspnea"] {
		t.Errorf("expected Chest pain and Dyspnea, got %v", e.Symptoms)
	}

	if e.Vitals["bp"] != "150/95" {
		t.Errorf("expected bp 150/95, got %v", e.Vitals["bp"])
	}
	if e.Vitals["hr"] != 110 {
		t.Errorf("expected hr 110, got %v", e.Vitals["hr"])
	}
	if e.Vitals["temp"] != 101.5 {
		t.Errorf("expected temp 101.5, got %v", e.Vitals["temp"])
	}
	if e.Vitals["spo2"] != 92 {
		t.Errorf("expected spo2 92, got %v", e.Vitals["spo2"])
	}

	foundFinding := false
	for _, f := range e.AbnormalFindings {
		if f == "Elevated" {
			foundFinding = true
		}
	}
	if !foundFinding {
		t.Errorf("expected Elevated finding, got %v", e.AbnormalFindings)
	}

	foundCond := map[string]bool{}
	for _, c := range e.ChronicConditions {
		foundCond[c] = true
	}
	if !foundCond["Diabetes"] || !foundCond["Hypertension"] {
		t.Errorf("expected Diabetes and Hypertension, got %v", e.ChronicConditions)
	}
}

func TestExtractEHR_VitalsKeysOnlyWhenMatched(t *testing.T) {
	e := ExtractEHR("patient denies chest pain")
	if _, ok := e.Vitals["bp"]; ok {
		t.Error("bp key should be absent without a BP reading")
	}
	if _, ok := e.Vitals["hr"]; ok {
		t.Error("hr key should be absent without an HR reading")
	}
}
