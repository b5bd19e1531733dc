package triage

import (
	"fmt"
	"strconv"
	"strings"
)

// Clinical defaults substituted for missing or malformed vitals.
const (
	defaultSystolic  = 120
	defaultDiastolic = 80
	defaultHeartRate = 72
	defaultTempF     = 98.6
)

// ParseVitals converts the raw "systolic/diastolic" blood pressure string
// plus heart rate and temperature into a fully populated snapshot. Any value
// that is missing or fails to parse takes its clinical default; the engine
// never rejects a request over vitals formatting.
func ParseVitals(bp string, hr int, temp float64) VitalsSnapshot {
	v := VitalsSnapshot{
		Systolic:  defaultSystolic,
		Diastolic: defaultDiastolic,
		HeartRate: defaultHeartRate,
		TempF:     defaultTempF,
	}

	parts := strings.SplitN(bp, "/", 2)
	if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && n != 0 {
		v.Systolic = n
	}
	if len(parts) == 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && n != 0 {
			v.Diastolic = n
		}
	}
	if hr != 0 {
		v.HeartRate = hr
	}
	if temp != 0 {
		v.TempF = temp
	}
	return v
}

// CheckCritical flags vitals outside safe physiological range. Reason order
// is fixed (BP, then HR, then temperature) because downstream factor lists
// and narratives preserve it.
func CheckCritical(v VitalsSnapshot) CriticalityAssessment {
	var reasons []string

	if v.Systolic >= 180 || v.Diastolic >= 120 {
		reasons = append(reasons, fmt.Sprintf("Hypertensive crisis: BP %d/%d mmHg", v.Systolic, v.Diastolic))
	} else if v.Systolic >= 160 || v.Diastolic >= 100 {
		reasons = append(reasons, fmt.Sprintf("Severe hypertension: BP %d/%d mmHg", v.Systolic, v.Diastolic))
	}
	if v.Systolic < 90 || v.Diastolic < 60 {
		reasons = append(reasons, fmt.Sprintf("Hypotension: BP %d/%d mmHg", v.Systolic, v.Diastolic))
	}

	if v.HeartRate > 150 {
		reasons = append(reasons, fmt.Sprintf("Severe tachycardia: HR %d bpm", v.HeartRate))
	} else if v.HeartRate > 120 {
		reasons = append(reasons, fmt.Sprintf("Tachycardia: HR %d bpm", v.HeartRate))
	}
	if v.HeartRate < 40 {
		reasons = append(reasons, fmt.Sprintf("Severe bradycardia: HR %d bpm", v.HeartRate))
	} else if v.HeartRate < 50 {
		reasons = append(reasons, fmt.Sprintf("Bradycardia: HR %d bpm", v.HeartRate))
	}

	if v.TempF >= 104 {
		reasons = append(reasons, fmt.Sprintf("Hyperpyrexia: Temperature %g°F", v.TempF))
	} else if v.TempF >= 102 {
		reasons = append(reasons, fmt.Sprintf("High fever: Temperature %g°F", v.TempF))
	}
	if v.TempF < 95 {
		reasons = append(reasons, fmt.Sprintf("Hypothermia: Temperature %g°F", v.TempF))
	}

	critical := false
	for _, r := range reasons {
		if strings.Contains(r, "crisis") || strings.Contains(r, "Severe") ||
			strings.Contains(r, "Hyperpyrexia") || strings.Contains(r, "Hypothermia") {
			critical = true
			break
		}
	}

	return CriticalityAssessment{IsCritical: critical, Reasons: reasons}
}
