package triage

import (
	"context"

	"github.com/google/uuid"
)

// Repository stores completed triage assessments. The engine itself never
// touches storage; the service layer persists on its behalf.
type Repository interface {
	Create(ctx context.Context, r *TriageRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*TriageRecord, error)
	List(ctx context.Context, limit, offset int) ([]*TriageRecord, int, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*TriageRecord, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
