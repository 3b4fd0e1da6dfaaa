package capability

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/journal"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/prompt"
)

// UseCase exposes one operation per capability.
type UseCase interface {
	Chat(ctx context.Context, in ChatInput) (ChatOutput, error)
	InterpretReport(ctx context.Context, in ReportInput) (ReportOutput, error)
	DetectEmergency(ctx context.Context, in EmergencyInput) (EmergencyOutput, error)
	SymptomGuidance(ctx context.Context, in SymptomInput) (SymptomOutput, error)
	AnalyzeXRay(ctx context.Context, in XRayInput) (XRayOutput, error)
}

type service struct {
	model     llm.Model
	modelName string
	journal   journal.Recorder
	log       logrus.FieldLogger
}

// NewService wires the capabilities to a model. rec may be nil.
func NewService(model llm.Model, modelName string, rec journal.Recorder, log logrus.FieldLogger) UseCase {
	if rec == nil {
		rec = journal.Nop{}
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	return &service{model: model, modelName: modelName, journal: rec, log: log}
}

func (s *service) Chat(ctx context.Context, in ChatInput) (ChatOutput, error) {
	return execute(ctx, s, Chat, in)
}

func (s *service) InterpretReport(ctx context.Context, in ReportInput) (ReportOutput, error) {
	return execute(ctx, s, Report, in)
}

func (s *service) DetectEmergency(ctx context.Context, in EmergencyInput) (EmergencyOutput, error) {
	return execute(ctx, s, Emergency, in)
}

func (s *service) SymptomGuidance(ctx context.Context, in SymptomInput) (SymptomOutput, error) {
	return execute(ctx, s, Symptoms, in)
}

func (s *service) AnalyzeXRay(ctx context.Context, in XRayInput) (XRayOutput, error) {
	return execute(ctx, s, XRay, in)
}

func execute[In Input, Out any](ctx context.Context, s *service, def Definition[In, Out], in In) (Out, error) {
	started := time.Now()
	out, err := Run(ctx, s.model, def, in)

	entry := journal.Entry{
		ID:         uuid.New(),
		Capability: def.Name,
		Language:   prompt.NormalizeLanguage(in.RequestedLanguage()),
		Outcome:    outcomeOf(err),
		Model:      s.modelName,
		Duration:   time.Since(started),
		CreatedAt:  started.UTC(),
	}
	if err != nil {
		entry.Error = err.Error()
	}
	fields := logrus.Fields{
		"capability": entry.Capability,
		"language":   entry.Language,
		"outcome":    entry.Outcome,
		"duration":   entry.Duration.String(),
	}
	if err != nil {
		s.log.WithFields(fields).WithError(err).Warn("capability call failed")
	} else {
		s.log.WithFields(fields).Info("capability call")
	}
	if rerr := s.journal.Record(ctx, entry); rerr != nil {
		s.log.WithError(rerr).Warn("journal: record failed")
	}
	return out, err
}

func outcomeOf(err error) journal.Outcome {
	var pe *PartialOutputError
	switch {
	case err == nil:
		return journal.OutcomeOK
	case errors.As(err, &pe):
		return journal.OutcomePartial
	case errors.Is(err, ErrInvalidImage):
		return journal.OutcomeInvalid
	default:
		return journal.OutcomeModelError
	}
}
