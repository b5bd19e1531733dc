package triage

import (
	"fmt"
	"strings"
)

// disclaimerSentence closes every clinical reasoning narrative. Required
// verbatim: the engine must never read as producing a diagnosis.
const disclaimerSentence = "This is a triage-level assessment only. Definitive clinical evaluation by a qualified physician is required."

// ClinicalReasoning assembles the human-readable narrative: demographics
// and presenting symptoms, vitals readout, top three contributing factors,
// the risk/routing conclusion, and the mandatory disclaimer.
func ClinicalReasoning(risk, department string, factors, symptoms []string, vitals VitalsSnapshot, age int) string {
	top := factors
	if len(top) > 3 {
		top = top[:3]
	}

	presenting := "unspecified symptoms"
	if len(symptoms) > 0 {
		shown := symptoms
		if len(shown) > 3 {
			shown = shown[:3]
		}
		presenting = strings.Join(shown, ", ")
	}

	lines := []string{
		fmt.Sprintf("Patient is a %d-year-old presenting with %s.", age, presenting),
		fmt.Sprintf("Vitals: BP %d/%d mmHg, HR %d bpm, Temp %g°F.", vitals.Systolic, vitals.Diastolic, vitals.HeartRate, vitals.TempF),
		fmt.Sprintf("Key contributing factors: %s.", strings.Join(top, "; ")),
		fmt.Sprintf("Based on triage assessment, patient is classified as %s risk with recommended routing to %s.", risk, department),
		disclaimerSentence,
	}
	return strings.Join(lines, " ")
}

// LocalizeReasoning appends a bracketed translated disclaimer block for
// supported non-English locales. English and unknown codes pass through
// unchanged.
func LocalizeReasoning(reasoning, language string) string {
	note, ok := localizedDisclaimers[language]
	if language == "en" || !ok {
		return reasoning
	}
	return fmt.Sprintf("%s\n\n[%s]: %s", reasoning, strings.ToUpper(language), note)
}
