package triage

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a Postgres-backed triage record repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const recordCols = `id, patient_id, age, gender, symptoms, bp, hr, temp, conditions,
	risk_level, risk_probability, confidence_score, recommended_department, priority_level,
	contributing_factors, clinical_reasoning, suggested_followup_tests,
	trend_analysis, fairness_check_note, voice_extraction, ehr_extraction, created_at`

func (r *repoPG) scanRecord(row pgx.Row) (*TriageRecord, error) {
	var t TriageRecord
	var voiceJSON, ehrJSON []byte
	err := row.Scan(&t.ID, &t.PatientID, &t.Age, &t.Gender, &t.Symptoms, &t.BP, &t.HR, &t.Temp, &t.Conditions,
		&t.RiskLevel, &t.RiskProbability, &t.ConfidenceScore, &t.RecommendedDepartment, &t.PriorityLevel,
		&t.ContributingFactors, &t.ClinicalReasoning, &t.SuggestedFollowupTests,
		&t.TrendAnalysis, &t.FairnessCheckNote, &voiceJSON, &ehrJSON, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(voiceJSON) > 0 {
		var v VoiceExtraction
		if err := json.Unmarshal(voiceJSON, &v); err == nil {
			t.VoiceExtraction = &v
		}
	}
	if len(ehrJSON) > 0 {
		var e EHRExtraction
		if err := json.Unmarshal(ehrJSON, &e); err == nil {
			t.EHRExtraction = &e
		}
	}
	return &t, nil
}

func (r *repoPG) Create(ctx context.Context, t *TriageRecord) error {
	t.ID = uuid.New()

	var voiceJSON, ehrJSON []byte
	if t.VoiceExtraction != nil {
		voiceJSON, _ = json.Marshal(t.VoiceExtraction)
	}
	if t.EHRExtraction != nil {
		ehrJSON, _ = json.Marshal(t.EHRExtraction)
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO triage_records (id, patient_id, age, gender, symptoms, bp, hr, temp, conditions,
			risk_level, risk_probability, confidence_score, recommended_department, priority_level,
			contributing_factors, clinical_reasoning, suggested_followup_tests,
			trend_analysis, fairness_check_note, voice_extraction, ehr_extraction)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
		t.ID, t.PatientID, t.Age, t.Gender, t.Symptoms, t.BP, t.HR, t.Temp, t.Conditions,
		t.RiskLevel, t.RiskProbability, t.ConfidenceScore, t.RecommendedDepartment, t.PriorityLevel,
		t.ContributingFactors, t.ClinicalReasoning, t.SuggestedFollowupTests,
		t.TrendAnalysis, t.FairnessCheckNote, voiceJSON, ehrJSON)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*TriageRecord, error) {
	return r.scanRecord(r.pool.QueryRow(ctx, `SELECT `+recordCols+` FROM triage_records WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*TriageRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM triage_records`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM triage_records ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*TriageRecord
	for rows.Next() {
		t, err := r.scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*TriageRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM triage_records WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM triage_records WHERE patient_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*TriageRecord
	for rows.Next() {
		t, err := r.scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM triage_records WHERE id = $1`, id)
	return err
}

func (r *repoPG) Stats(ctx context.Context) (*Stats, error) {
	s := &Stats{}

	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE risk_level = 'High'),
			COUNT(*) FILTER (WHERE risk_level = 'Medium'),
			COUNT(*) FILTER (WHERE risk_level = 'Low'),
			COALESCE(ROUND(AVG(confidence_score)), 0)
		FROM triage_records`).Scan(&s.Total, &s.High, &s.Medium, &s.Low, &s.AverageConfidence)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT recommended_department, COUNT(*)
		FROM triage_records GROUP BY recommended_department ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var d DepartmentStat
		if err := rows.Scan(&d.Name, &d.Value); err != nil {
			return nil, err
		}
		s.Departments = append(s.Departments, d)
	}
	return s, rows.Err()
}
