package triage

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Vital-sign patterns recognised in EHR note text.
var (
	bpPattern   = regexp.MustCompile(`(?:bp|blood pressure)[:\s]*(\d{2,3}/\d{2,3})`)
	hrPattern   = regexp.MustCompile(`(?:hr|heart rate|pulse)[:\s]*(\d{2,3})`)
	tempPattern = regexp.MustCompile(`(?:temp|temperature)[:\s]*(\d{2,3}\.?\d*)`)
	spo2Pattern = regexp.MustCompile(`(?:spo2|oxygen saturation|o2 sat)[:\s]*(\d{2,3})`)
)

// capitalize upper-cases the first rune of a keyword for display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ExtractVoice scans a voice transcript for symptom keywords, severity
// language, and emergency flags. An empty transcript yields a valid,
// explicitly empty extraction. Never fails.
func ExtractVoice(transcript string) VoiceExtraction {
	if strings.TrimSpace(transcript) == "" {
		return VoiceExtraction{
			Symptoms:       []string{},
			SeverityClues:  "No voice transcript provided.",
			EmergencyFlags: "None",
		}
	}

	lower := strings.ToLower(transcript)

	var symptoms []string
	for _, kw := range voiceSymptomKeywords {
		if strings.Contains(lower, kw) {
			symptoms = append(symptoms, capitalize(kw))
		}
	}

	var severity []string
	for _, w := range severityWords {
		if strings.Contains(lower, w) {
			severity = append(severity, w)
		}
	}

	var flags []string
	for _, f := range emergencySymptoms {
		if strings.Contains(lower, f) {
			flags = append(flags, f)
		}
	}

	out := VoiceExtraction{
		Symptoms:       symptoms,
		SeverityClues:  "No severe indicators detected from voice transcript.",
		EmergencyFlags: "No emergency flags detected.",
	}
	if out.Symptoms == nil {
		out.Symptoms = []string{}
	}
	if len(severity) > 0 {
		out.SeverityClues = fmt.Sprintf("Severity indicators detected: %s", strings.Join(severity, ", "))
	}
	if len(flags) > 0 {
		out.EmergencyFlags = fmt.Sprintf("Emergency flags: %s", strings.Join(flags, ", "))
	}
	return out
}

// ExtractEHR scans clinical note text for symptoms, recorded vitals,
// abnormal findings, and chronic conditions. Vitals keys are set only when
// a pattern matched. Never fails.
func ExtractEHR(text string) EHRExtraction {
	out := EHRExtraction{
		Symptoms:          []string{},
		Vitals:            map[string]interface{}{},
		AbnormalFindings:  []string{},
		ChronicConditions: []string{},
	}
	if strings.TrimSpace(text) == "" {
		return out
	}

	lower := strings.ToLower(text)

	for _, kw := range ehrSymptomKeywords {
		if strings.Contains(lower, kw) {
			out.Symptoms = append(out.Symptoms, capitalize(kw))
		}
	}

	if m := bpPattern.FindStringSubmatch(lower); m != nil {
		out.Vitals["bp"] = m[1]
	}
	if m := hrPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			out.Vitals["hr"] = v
		}
	}
	if m := tempPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			out.Vitals["temp"] = v
		}
	}
	if m := spo2Pattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			out.Vitals["spo2"] = v
		}
	}

	for _, kw := range abnormalFindingKeywords {
		if strings.Contains(lower, kw) {
			out.AbnormalFindings = append(out.AbnormalFindings, capitalize(kw))
		}
	}

	for _, kw := range chronicConditionKeywords {
		if strings.Contains(lower, kw) {
			out.ChronicConditions = append(out.ChronicConditions, capitalize(kw))
		}
	}

	return out
}
