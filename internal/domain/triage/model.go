package triage

import (
	"time"

	"github.com/google/uuid"
)

// Risk tiers. Priority levels derive 1:1 from these (High=1 ... Low=3).
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// PatientInput is one triage request. Malformed vitals never fail the
// engine; they degrade to clinical defaults.
type PatientInput struct {
	PatientID       string             `json:"patient_id"`
	Age             int                `json:"age"`
	Gender          string             `json:"gender"`
	Symptoms        []string           `json:"symptoms_list"`
	VoiceTranscript string             `json:"voice_transcript,omitempty"`
	EHRText         string             `json:"ehr_text,omitempty"`
	BP              string             `json:"bp"`
	HR              int                `json:"hr"`
	Temp            float64            `json:"temp"`
	Conditions      []string           `json:"conditions"`
	PreviousRisk    string             `json:"previous_risk,omitempty"`
	TrendData       []HistoricalRecord `json:"trend_data,omitempty"`
	Language        string             `json:"language"`
}

// HistoricalRecord is a prior assessment supplied by the caller's storage
// layer, ordered oldest first.
type HistoricalRecord struct {
	Date            string             `json:"date"`
	RiskLevel       string             `json:"risk_level"`
	RiskProbability float64            `json:"risk_probability"`
	Vitals          HistoricalVitals   `json:"vitals"`
	Symptoms        []string           `json:"symptoms"`
}

type HistoricalVitals struct {
	BP   string  `json:"bp"`
	HR   int     `json:"hr"`
	Temp float64 `json:"temp"`
}

// VoiceExtraction holds what the keyword scanner found in a voice
// transcript.
type VoiceExtraction struct {
	Symptoms       []string `json:"symptoms"`
	SeverityClues  string   `json:"severity_clues"`
	EmergencyFlags string   `json:"emergency_flags"`
}

// EHRExtraction holds what the keyword scanner found in clinical note text.
// Vitals keys (bp, hr, temp, spo2) are present only when the pattern matched.
type EHRExtraction struct {
	Symptoms          []string               `json:"symptoms"`
	Vitals            map[string]interface{} `json:"vitals"`
	AbnormalFindings  []string               `json:"abnormal_findings"`
	ChronicConditions []string               `json:"chronic_conditions"`
}

// VitalsSnapshot is a fully populated numeric view of the request vitals,
// defaults applied.
type VitalsSnapshot struct {
	Systolic  int     `json:"systolic"`
	Diastolic int     `json:"diastolic"`
	HeartRate int     `json:"heart_rate"`
	TempF     float64 `json:"temperature_f"`
}

// CriticalityAssessment flags vitals outside safe physiological range.
// Reasons preserve check order: BP, then HR, then temperature.
type CriticalityAssessment struct {
	IsCritical bool     `json:"is_critical"`
	Reasons    []string `json:"reasons"`
}

// TriageResult is the sole output of the engine, created once per request.
type TriageResult struct {
	RiskLevel              string          `json:"risk_level"`
	RiskProbability        float64         `json:"risk_probability"`
	ConfidenceScore        int             `json:"confidence_score"`
	RecommendedDepartment  string          `json:"recommended_department"`
	PriorityLevel          int             `json:"priority_level"`
	ContributingFactors    []string        `json:"contributing_factors"`
	ClinicalReasoning      string          `json:"clinical_reasoning"`
	SuggestedFollowupTests []string        `json:"suggested_followup_tests"`
	TrendAnalysis          string          `json:"trend_analysis"`
	FairnessCheckNote      string          `json:"fairness_check_note"`
	ExtractedFromVoice     VoiceExtraction `json:"extracted_from_voice"`
	ExtractedFromEHR       EHRExtraction   `json:"extracted_from_ehr"`
}

// TriageRecord maps to the triage_records table: a PatientInput plus the
// TriageResult computed for it, as stored by the service layer.
type TriageRecord struct {
	ID                     uuid.UUID       `db:"id" json:"id"`
	PatientID              string          `db:"patient_id" json:"patient_id"`
	Age                    int             `db:"age" json:"age"`
	Gender                 string          `db:"gender" json:"gender"`
	Symptoms               []string        `db:"symptoms" json:"symptoms"`
	BP                     string          `db:"bp" json:"bp"`
	HR                     int             `db:"hr" json:"hr"`
	Temp                   float64         `db:"temp" json:"temp"`
	Conditions             []string        `db:"conditions" json:"conditions"`
	RiskLevel              string          `db:"risk_level" json:"risk_level"`
	RiskProbability        float64         `db:"risk_probability" json:"risk_probability"`
	ConfidenceScore        int             `db:"confidence_score" json:"confidence_score"`
	RecommendedDepartment  string          `db:"recommended_department" json:"recommended_department"`
	PriorityLevel          int             `db:"priority_level" json:"priority_level"`
	ContributingFactors    []string        `db:"contributing_factors" json:"contributing_factors"`
	ClinicalReasoning      string          `db:"clinical_reasoning" json:"clinical_reasoning"`
	SuggestedFollowupTests []string        `db:"suggested_followup_tests" json:"suggested_followup_tests"`
	TrendAnalysis          string          `db:"trend_analysis" json:"trend_analysis"`
	FairnessCheckNote      string          `db:"fairness_check_note" json:"fairness_check_note"`
	VoiceExtraction        *VoiceExtraction `db:"voice_extraction" json:"voice_extraction,omitempty"`
	EHRExtraction          *EHRExtraction   `db:"ehr_extraction" json:"ehr_extraction,omitempty"`
	CreatedAt              time.Time       `db:"created_at" json:"created_at"`
}

// Stats summarises stored triage records for dashboard consumers.
type Stats struct {
	Total             int              `json:"total"`
	High              int              `json:"high"`
	Medium            int              `json:"medium"`
	Low               int              `json:"low"`
	Departments       []DepartmentStat `json:"departments"`
	AverageConfidence int              `json:"average_confidence"`
}

type DepartmentStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
