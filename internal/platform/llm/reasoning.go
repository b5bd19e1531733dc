package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/triageai/triage/internal/domain/triage"
)

const reasoningSystemPrompt = "You are a clinical triage decision support AI. Be precise, evidence-based, and concise. Always mention specific clinical indicators."

// EnrichReasoning asks the model for a short clinical analysis of a completed
// assessment. It satisfies the triage service's ReasoningEnricher interface.
func (c *Client) EnrichReasoning(ctx context.Context, input triage.PatientInput, result triage.TriageResult) (string, error) {
	symptoms := strings.Join(input.Symptoms, ", ")
	if symptoms == "" {
		symptoms = "None reported"
	}
	conditions := strings.Join(input.Conditions, ", ")
	if conditions == "" {
		conditions = "None"
	}

	prompt := fmt.Sprintf(`You are an expert clinical triage AI assistant. Based on the following patient data, provide a concise but detailed clinical reasoning analysis in 3-4 sentences.

Patient: %dyr %s
Symptoms: %s
Pre-existing Conditions: %s
Vitals: BP %s mmHg, HR %d bpm, Temp %g°F
Rule-based Risk: %s
Suggested Department: %s

Provide:
1. Clinical reasoning for the risk level (1-2 sentences)
2. Key clinical concern (1 sentence)
3. Immediate priority action (1 sentence)

Be specific, clinical, and concise. Do not use bullet points or headers.`,
		input.Age, input.Gender, symptoms, conditions,
		input.BP, input.HR, input.Temp,
		result.RiskLevel, result.RecommendedDepartment)

	return c.Chat(ctx, []Message{
		{Role: "system", Content: reasoningSystemPrompt},
		{Role: "user", Content: prompt},
	}, 300, 0.3)
}
