package triage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReasoningEnricher generates a supplementary narrative for a completed
// assessment. It is best-effort: failures are logged and the rule-based
// narrative stands on its own.
type ReasoningEnricher interface {
	EnrichReasoning(ctx context.Context, input PatientInput, result TriageResult) (string, error)
}

type Service struct {
	repo     Repository
	enricher ReasoningEnricher
	logger   zerolog.Logger
}

// NewService creates the triage service. repo and enricher may be nil: with
// no repo, assessments are computed but not stored; with no enricher, the
// rule-based narrative is used unmodified.
func NewService(repo Repository, enricher ReasoningEnricher, logger zerolog.Logger) *Service {
	return &Service{repo: repo, enricher: enricher, logger: logger}
}

// Assess runs the triage engine for one patient and, when storage is
// configured, persists the resulting record. When the caller supplies no
// trend data, the patient's stored history is used instead.
func (s *Service) Assess(ctx context.Context, input PatientInput) (*TriageResult, error) {
	if input.PatientID == "" {
		return nil, fmt.Errorf("patient_id is required")
	}
	if input.Age < 0 {
		return nil, fmt.Errorf("age must be non-negative")
	}
	if input.Gender == "" {
		return nil, fmt.Errorf("gender is required")
	}

	if len(input.TrendData) == 0 && s.repo != nil {
		if history, err := s.loadHistory(ctx, input.PatientID); err == nil {
			input.TrendData = history
		} else {
			s.logger.Warn().Err(err).Str("patient_id", input.PatientID).Msg("history lookup failed, continuing without trend data")
		}
	}

	result := PerformTriage(input)

	if s.enricher != nil {
		if addendum, err := s.enricher.EnrichReasoning(ctx, input, result); err != nil {
			s.logger.Warn().Err(err).Msg("reasoning enrichment skipped")
		} else if addendum != "" {
			result.ClinicalReasoning += "\n\n🤖 AI-Enhanced Analysis:\n" + addendum
		}
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, recordFrom(input, result)); err != nil {
			s.logger.Warn().Err(err).Str("patient_id", input.PatientID).Msg("triage record storage skipped")
		}
	}

	return &result, nil
}

// Preview runs the engine without enrichment or persistence.
func (s *Service) Preview(ctx context.Context, input PatientInput) (*TriageResult, error) {
	if input.PatientID == "" {
		return nil, fmt.Errorf("patient_id is required")
	}
	if input.Age < 0 {
		return nil, fmt.Errorf("age must be non-negative")
	}
	if input.Gender == "" {
		return nil, fmt.Errorf("gender is required")
	}
	result := PerformTriage(input)
	return &result, nil
}

// historyWindow caps how many prior assessments feed the trend analyzer.
const historyWindow = 50

// loadHistory converts the patient's most recent stored assessments, oldest
// first, into the historical records consumed by the trend analyzer.
func (s *Service) loadHistory(ctx context.Context, patientID string) ([]HistoricalRecord, error) {
	records, total, err := s.repo.ListByPatient(ctx, patientID, historyWindow, 0)
	if err != nil {
		return nil, err
	}
	if total > historyWindow {
		// The listing is oldest first; re-read from the tail so the window
		// always covers the latest assessments.
		records, _, err = s.repo.ListByPatient(ctx, patientID, historyWindow, total-historyWindow)
		if err != nil {
			return nil, err
		}
	}
	history := make([]HistoricalRecord, 0, len(records))
	for _, r := range records {
		history = append(history, HistoricalRecord{
			Date:            r.CreatedAt.Format("2006-01-02"),
			RiskLevel:       r.RiskLevel,
			RiskProbability: r.RiskProbability,
			Vitals:          HistoricalVitals{BP: r.BP, HR: r.HR, Temp: r.Temp},
			Symptoms:        r.Symptoms,
		})
	}
	return history, nil
}

func recordFrom(input PatientInput, result TriageResult) *TriageRecord {
	voice := result.ExtractedFromVoice
	ehr := result.ExtractedFromEHR
	return &TriageRecord{
		PatientID:              input.PatientID,
		Age:                    input.Age,
		Gender:                 input.Gender,
		Symptoms:               input.Symptoms,
		BP:                     input.BP,
		HR:                     input.HR,
		Temp:                   input.Temp,
		Conditions:             input.Conditions,
		RiskLevel:              result.RiskLevel,
		RiskProbability:        result.RiskProbability,
		ConfidenceScore:        result.ConfidenceScore,
		RecommendedDepartment:  result.RecommendedDepartment,
		PriorityLevel:          result.PriorityLevel,
		ContributingFactors:    result.ContributingFactors,
		ClinicalReasoning:      result.ClinicalReasoning,
		SuggestedFollowupTests: result.SuggestedFollowupTests,
		TrendAnalysis:          result.TrendAnalysis,
		FairnessCheckNote:      result.FairnessCheckNote,
		VoiceExtraction:        &voice,
		EHRExtraction:          &ehr,
	}
}

// GetRecord returns one stored assessment.
func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*TriageRecord, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("storage not configured")
	}
	return s.repo.GetByID(ctx, id)
}

// ListRecords returns stored assessments, newest first.
func (s *Service) ListRecords(ctx context.Context, limit, offset int) ([]*TriageRecord, int, error) {
	if s.repo == nil {
		return nil, 0, fmt.Errorf("storage not configured")
	}
	return s.repo.List(ctx, limit, offset)
}

// ListRecordsByPatient returns one patient's assessments, oldest first.
func (s *Service) ListRecordsByPatient(ctx context.Context, patientID string, limit, offset int) ([]*TriageRecord, int, error) {
	if s.repo == nil {
		return nil, 0, fmt.Errorf("storage not configured")
	}
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// DeleteRecord removes a stored assessment.
func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if s.repo == nil {
		return fmt.Errorf("storage not configured")
	}
	return s.repo.Delete(ctx, id)
}

// RecordStats summarises stored assessments for dashboards.
func (s *Service) RecordStats(ctx context.Context) (*Stats, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("storage not configured")
	}
	return s.repo.Stats(ctx)
}
