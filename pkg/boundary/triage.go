package boundary

import (
	"context"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/capability"
)

// Triaged is the outcome of a flow that screens the user's text for an
// emergency before answering. Exactly one of the fields is set.
type Triaged[T any] struct {
	Emergency *capability.EmergencyOutput `json:"emergency,omitempty"`
	Result    *Result[T]                  `json:"result,omitempty"`
}

// Failed reports whether the input was rejected before any model call.
func (t Triaged[T]) Failed() bool { return t.Result != nil && t.Result.Failed() }

// ChatWithTriage validates the question, runs emergency detection on it and
// only then asks the chat capability.
func (b *Boundary) ChatWithTriage(ctx context.Context, f ChatForm) (Triaged[capability.ChatOutput], error) {
	if _, ve := ValidateChat(f); ve != nil {
		res := failed[capability.ChatOutput](ve)
		b.rejected(ctx, capability.Chat.Name, f.Language, ve)
		return Triaged[capability.ChatOutput]{Result: &res}, nil
	}
	em, err := b.DetectEmergency(ctx, EmergencyForm{UserInput: f.Question, Language: f.Language})
	if err != nil {
		return Triaged[capability.ChatOutput]{}, err
	}
	if em.Value.IsEmergency {
		return Triaged[capability.ChatOutput]{Emergency: &em.Value}, nil
	}
	res, err := b.MedicalAIChat(ctx, f)
	if err != nil {
		return Triaged[capability.ChatOutput]{}, err
	}
	return Triaged[capability.ChatOutput]{Result: &res}, nil
}

// SymptomGuidanceWithTriage is ChatWithTriage for the symptom checker.
func (b *Boundary) SymptomGuidanceWithTriage(ctx context.Context, f SymptomForm) (Triaged[capability.SymptomOutput], error) {
	if _, ve := ValidateSymptoms(f); ve != nil {
		res := failed[capability.SymptomOutput](ve)
		b.rejected(ctx, capability.Symptoms.Name, f.Language, ve)
		return Triaged[capability.SymptomOutput]{Result: &res}, nil
	}
	em, err := b.DetectEmergency(ctx, EmergencyForm{UserInput: f.Symptoms, Language: f.Language})
	if err != nil {
		return Triaged[capability.SymptomOutput]{}, err
	}
	if em.Value.IsEmergency {
		return Triaged[capability.SymptomOutput]{Emergency: &em.Value}, nil
	}
	res, err := b.SymptomBasedGuidance(ctx, f)
	if err != nil {
		return Triaged[capability.SymptomOutput]{}, err
	}
	return Triaged[capability.SymptomOutput]{Result: &res}, nil
}
