// Package boundary holds the externally callable entry points. Each one
// validates raw input more strictly than the capability itself and turns
// failures into a safe value instead of an error. Model failures are not
// handled here: they are returned to the caller as errors.
package boundary

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/capability"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/journal"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/prompt"
)

// Boundary guards the capability use cases.
type Boundary struct {
	uc      capability.UseCase
	journal journal.Recorder
	log     logrus.FieldLogger
}

// New creates a Boundary. rec and log may be nil.
func New(uc capability.UseCase, rec journal.Recorder, log logrus.FieldLogger) *Boundary {
	if rec == nil {
		rec = journal.Nop{}
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	return &Boundary{uc: uc, journal: rec, log: log}
}

// AnalyzeXRayImage analyzes an X-ray given as an image data URI.
func (b *Boundary) AnalyzeXRayImage(ctx context.Context, f XRayForm) (Result[capability.XRayOutput], error) {
	in, ve := ValidateXRay(f)
	if ve != nil {
		b.rejected(ctx, capability.XRay.Name, f.Language, ve)
		return failed[capability.XRayOutput](ve), nil
	}
	out, err := b.uc.AnalyzeXRay(ctx, in)
	if err != nil {
		return Result[capability.XRayOutput]{}, err
	}
	return ok(out), nil
}

// DetectEmergency never reports a validation error: rejected input is simply
// "not an emergency".
func (b *Boundary) DetectEmergency(ctx context.Context, f EmergencyForm) (Result[capability.EmergencyOutput], error) {
	in, ve := ValidateEmergency(f)
	if ve != nil {
		b.rejected(ctx, capability.Emergency.Name, f.Language, ve)
		return ok(capability.EmergencyOutput{IsEmergency: false, EmergencyAdvice: ""}), nil
	}
	out, err := b.uc.DetectEmergency(ctx, in)
	if err != nil {
		return Result[capability.EmergencyOutput]{}, err
	}
	return ok(out), nil
}

// InterpretMedicalReport explains a pasted or extracted report.
func (b *Boundary) InterpretMedicalReport(ctx context.Context, f ReportForm) (Result[capability.ReportOutput], error) {
	in, ve := ValidateReport(f)
	if ve != nil {
		b.rejected(ctx, capability.Report.Name, f.Language, ve)
		return failed[capability.ReportOutput](ve), nil
	}
	out, err := b.uc.InterpretReport(ctx, in)
	if err != nil {
		return Result[capability.ReportOutput]{}, err
	}
	return ok(out), nil
}

// MedicalAIChat answers one health question.
func (b *Boundary) MedicalAIChat(ctx context.Context, f ChatForm) (Result[capability.ChatOutput], error) {
	in, ve := ValidateChat(f)
	if ve != nil {
		b.rejected(ctx, capability.Chat.Name, f.Language, ve)
		return failed[capability.ChatOutput](ve), nil
	}
	out, err := b.uc.Chat(ctx, in)
	if err != nil {
		return Result[capability.ChatOutput]{}, err
	}
	return ok(out), nil
}

// SymptomBasedGuidance ranks possible causes for the described symptoms.
func (b *Boundary) SymptomBasedGuidance(ctx context.Context, f SymptomForm) (Result[capability.SymptomOutput], error) {
	in, ve := ValidateSymptoms(f)
	if ve != nil {
		b.rejected(ctx, capability.Symptoms.Name, f.Language, ve)
		return failed[capability.SymptomOutput](ve), nil
	}
	out, err := b.uc.SymptomGuidance(ctx, in)
	if err != nil {
		return Result[capability.SymptomOutput]{}, err
	}
	return ok(out), nil
}

func (b *Boundary) rejected(ctx context.Context, capabilityName, language string, ve *ValidationError) {
	b.log.WithFields(logrus.Fields{
		"capability": capabilityName,
		"field":      ve.Field,
	}).Info("input rejected")
	err := b.journal.Record(ctx, journal.Entry{
		ID:         uuid.New(),
		Capability: capabilityName,
		Language:   prompt.NormalizeLanguage(language),
		Outcome:    journal.OutcomeInvalid,
		Error:      ve.Error(),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		b.log.WithError(err).Warn("journal: record failed")
	}
}
