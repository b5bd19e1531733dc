package triage

import (
	"strings"
	"testing"
)

func TestParseVitals_WellFormed(t *testing.T) {
	v := ParseVitals("150/95", 110, 101.5)
	if v.Systolic != 150 || v.Diastolic != 95 {
		t.Errorf("expected BP 150/95, got %d/%d", v.Systolic, v.Diastolic)
	}
	if v.HeartRate != 110 {
		t.Errorf("expected HR 110, got %d", v.HeartRate)
	}
	if v.TempF != 101.5 {
		t.Errorf("expected temp 101.5, got %g", v.TempF)
	}
}

func TestParseVitals_MalformedDefaults(t *testing.T) {
	v := ParseVitals("garbage", 0, 0)
	if v.Systolic != 120 || v.Diastolic != 80 {
		t.Errorf("expected default BP 120/80, got %d/%d", v.Systolic, v.Diastolic)
	}
	if v.HeartRate != 72 {
		t.Errorf("expected default HR 72, got %d", v.HeartRate)
	}
	if v.TempF != 98.6 {
		t.Errorf("expected default temp 98.6, got %g", v.TempF)
	}
}

func TestParseVitals_PartialBP(t *testing.T) {
	v := ParseVitals("140", 80, 98.6)
	if v.Systolic != 140 {
		t.Errorf("expected systolic 140, got %d", v.Systolic)
	}
	if v.Diastolic != 80 {
		t.Errorf("expected default diastolic 80, got %d", v.Diastolic)
	}
}

func TestParseVitals_ZeroComponentsDefault(t *testing.T) {
	v := ParseVitals("0/0", 0, 0)
	if v.Systolic != 120 || v.Diastolic != 80 {
		t.Errorf("expected defaults for zero BP, got %d/%d", v.Systolic, v.Diastolic)
	}
}

func TestCheckCritical_HypertensiveCrisis(t *testing.T) {
	crit := CheckCritical(VitalsSnapshot{Systolic: 190, Diastolic: 125, HeartRate: 72, TempF: 98.6})
	if !crit.IsCritical {
		t.Fatal("expected critical for BP 190/125")
	}
	if len(crit.Reasons) != 1 || crit.Reasons[0] != "Hypertensive crisis: BP 190/125 mmHg" {
		t.Errorf("unexpected reasons: %v", crit.Reasons)
	}
}

func TestCheckCritical_SevereHypertension(t *testing.T) {
	crit := CheckCritical(VitalsSnapshot{Systolic: 165, Diastolic: 95, HeartRate: 72, TempF: 98.6})
	if !crit.IsCritical {
		t.Fatal("expected critical for severe hypertension")
	}
	if crit.Reasons[0] != "Severe hypertension: BP 165/95 mmHg" {
		t.Errorf("unexpected reason: %q", crit.Reasons[0])
	}
}

func TestCheckCritical_TachycardiaNotCritical(t *testing.T) {
	crit := CheckCritical(VitalsSnapshot{Systolic: 120, Diastolic: 80, HeartRate: 130, TempF: 98.6})
	if crit.IsCritical {
		t.Error("plain tachycardia should not be critical")
	}
	if len(crit.Reasons) != 1 || crit.Reasons[0] != "Tachycardia: HR 130 bpm" {
		t.Errorf("unexpected reasons: %v", crit.Reasons)
	}
}

func TestCheckCritical_SevereTachycardia(t *testing.T) {
	crit := CheckCritical(VitalsSnapshot{Systolic: 120, Diastolic: 80, HeartRate: 160, TempF: 98.6})
	if !crit.IsCritical {
		t.Error("expected critical for HR 160")
	}
}

func TestCheckCritical_HypothermiaAndHyperpyrexia(t *testing.T) {
	low := CheckCritical(VitalsSnapshot{Systolic: 120, Diastolic: 80, HeartRate: 72, TempF: 94})
	if !low.IsCritical {
		t.Error("expected critical for hypothermia")
	}
	high := CheckCritical(VitalsSnapshot{Systolic: 120, Diastolic: 80, HeartRate: 72, TempF: 104.2})
	if !high.IsCritical {
		t.Error("expected critical for hyperpyrexia")
	}
	fever := CheckCritical(VitalsSnapshot{Systolic: 120, Diastolic: 80, HeartRate: 72, TempF: 102.5})
	if fever.IsCritical {
		t.Error("high fever below 104 should not be critical")
	}
}

func TestCheckCritical_ReasonOrder(t *testing.T) {
	crit := CheckCritical(VitalsSnapshot{Systolic: 190, Diastolic: 125, HeartRate: 130, TempF: 102.5})
	if len(crit.Reasons) != 3 {
		t.Fatalf("expected 3 reasons, got %d: %v", len(crit.Reasons), crit.Reasons)
	}
	if !strings.Contains(crit.Reasons[0], "Hypertensive crisis") {
		t.Errorf("expected BP reason first, got %q", crit.Reasons[0])
	}
	if !strings.Contains(crit.Reasons[1], "Tachycardia") {
		t.Errorf("expected HR reason second, got %q", crit.Reasons[1])
	}
	if !strings.Contains(crit.Reasons[2], "High fever") {
		t.Errorf("expected temp reason third, got %q", crit.Reasons[2])
	}
}

func TestCheckCritical_NormalVitals(t *testing.T) {
	crit := CheckCritical(VitalsSnapshot{Systolic: 120, Diastolic: 80, HeartRate: 72, TempF: 98.6})
	if crit.IsCritical || len(crit.Reasons) != 0 {
		t.Errorf("expected no findings for normal vitals, got %v", crit.Reasons)
	}
}
