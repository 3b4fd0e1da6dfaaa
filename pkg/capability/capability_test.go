package capability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/capability"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/journal"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm/llmtest"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/media"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/prompt"
)

type memJournal struct {
	mu      sync.Mutex
	entries []journal.Entry
}

func (m *memJournal) Record(_ context.Context, e journal.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func newService(t *testing.T, model llm.Model) (capability.UseCase, *memJournal) {
	t.Helper()
	j := &memJournal{}
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return capability.NewService(model, "test-model", j, log), j
}

func TestLanguageDefaultsToEnglish(t *testing.T) {
	fake := llmtest.Echo(capability.ChatOutput{Answer: "Drink water.", Disclaimer: "x"})
	svc, _ := newService(t, fake)

	_, err := svc.Chat(context.Background(), capability.ChatInput{Question: "What is dehydration?"})
	require.NoError(t, err)

	req, ok := fake.Last()
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(req.Prompt, "Your entire response MUST be in the following language: English."))
	assert.Equal(t, "medical_ai_chat", req.Name)
}

func TestLanguagePassesThrough(t *testing.T) {
	fake := llmtest.Echo(capability.ReportOutput{SimplifiedExplanation: "Todo normal."})
	svc, _ := newService(t, fake)

	_, err := svc.InterpretReport(context.Background(), capability.ReportInput{ReportText: "Hemoglobin 14 g/dL", Language: "Spanish"})
	require.NoError(t, err)

	req, _ := fake.Last()
	assert.Contains(t, req.Prompt, "following language: Spanish.")
	assert.Contains(t, req.Prompt, "Hemoglobin 14 g/dL")
	assert.NotContains(t, req.Prompt, prompt.Disclaimer)
}

func TestDisclaimerIsOverwritten(t *testing.T) {
	svc, _ := newService(t, llmtest.Echo(map[string]any{
		"answer":     "Fever is a raised body temperature.",
		"disclaimer": "I am totally a doctor.",
	}))

	out, err := svc.Chat(context.Background(), capability.ChatInput{Question: "What is a fever?"})
	require.NoError(t, err)
	assert.Equal(t, prompt.Disclaimer, out.Disclaimer)
	assert.Equal(t, "Fever is a raised body temperature.", out.Answer)
}

func TestDisclaimerFilledWhenMissing(t *testing.T) {
	svc, _ := newService(t, llmtest.Echo(map[string]any{
		"explanation":  "The lungs look clear.",
		"concernLevel": "low",
	}))

	out, err := svc.AnalyzeXRay(context.Background(), capability.XRayInput{PhotoDataURI: media.Encode("image/png", []byte("png"))})
	require.NoError(t, err)
	assert.Equal(t, prompt.Disclaimer, out.Disclaimer)
	assert.Equal(t, capability.ConcernLow, out.ConcernLevel)
}

func TestRoundTripWithEchoModel(t *testing.T) {
	xray := media.Encode("image/png", []byte("png"))
	cases := []struct {
		name  string
		reply map[string]any
		run   func(capability.UseCase) (any, error)
	}{
		{
			name:  "chat",
			reply: map[string]any{"answer": "A fever is your body fighting an infection.", "disclaimer": "model text"},
			run: func(svc capability.UseCase) (any, error) {
				return svc.Chat(context.Background(), capability.ChatInput{Question: "Why do I get fevers?"})
			},
		},
		{
			name:  "report",
			reply: map[string]any{"simplifiedExplanation": "Your blood sugar is in the normal range."},
			run: func(svc capability.UseCase) (any, error) {
				return svc.InterpretReport(context.Background(), capability.ReportInput{ReportText: "Fasting glucose 88 mg/dL"})
			},
		},
		{
			name:  "emergency",
			reply: map[string]any{"isEmergency": true, "emergencyAdvice": "Call emergency services now."},
			run: func(svc capability.UseCase) (any, error) {
				return svc.DetectEmergency(context.Background(), capability.EmergencyInput{UserInput: "crushing chest pain"})
			},
		},
		{
			name: "symptoms",
			reply: map[string]any{
				"possibleCauses": []any{
					map[string]any{"cause": "Common cold", "urgency": "routine", "rationale": "Short and mild."},
					map[string]any{"cause": "Bronchitis", "urgency": "consult soon", "rationale": "Cough lasting days."},
				},
				"disclaimer": "model text",
			},
			run: func(svc capability.UseCase) (any, error) {
				return svc.SymptomGuidance(context.Background(), capability.SymptomInput{Symptoms: "cough and runny nose"})
			},
		},
		{
			name:  "xray",
			reply: map[string]any{"explanation": "No visible fracture.", "concernLevel": "low", "disclaimer": "model text"},
			run: func(svc capability.UseCase) (any, error) {
				return svc.AnalyzeXRay(context.Background(), capability.XRayInput{PhotoDataURI: xray})
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newService(t, llmtest.Echo(tc.reply))

			out, err := tc.run(svc)
			require.NoError(t, err)

			want := asMap(t, tc.reply)
			if _, ok := want["disclaimer"]; ok {
				want["disclaimer"] = prompt.Disclaimer
			}
			assert.Equal(t, want, asMap(t, out))
		})
	}
}

func asMap(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestEmergencyPromptEmbedsDisclaimer(t *testing.T) {
	fake := llmtest.Echo(capability.EmergencyOutput{})
	svc, _ := newService(t, fake)

	_, err := svc.DetectEmergency(context.Background(), capability.EmergencyInput{UserInput: "chest pain"})
	require.NoError(t, err)

	req, ok := fake.Last()
	require.True(t, ok)
	assert.Contains(t, req.Prompt, prompt.Disclaimer)
	assert.Contains(t, req.Prompt, "User Input: chest pain")
}

func TestPersistentCoughScenario(t *testing.T) {
	fake := llmtest.Echo(map[string]any{
		"possibleCauses": []map[string]string{
			{"cause": "Viral respiratory infection", "urgency": "routine", "rationale": "Cough and fever for a few days."},
		},
		"disclaimer": "Not medical advice, probably.",
	})
	svc, _ := newService(t, fake)
	age := 34

	out, err := svc.SymptomGuidance(context.Background(), capability.SymptomInput{
		Symptoms: "persistent cough and fever",
		Age:      &age,
		Gender:   "male",
		Duration: "3 days",
		Severity: "mild",
	})
	require.NoError(t, err)
	assert.Equal(t, prompt.Disclaimer, out.Disclaimer)
	require.Len(t, out.PossibleCauses, 1)
	assert.Equal(t, capability.UrgencyRoutine, out.PossibleCauses[0].Urgency)

	req, _ := fake.Last()
	assert.Contains(t, req.Prompt, "Symptoms: persistent cough and fever")
	assert.Contains(t, req.Prompt, "Age: 34")
	assert.Contains(t, req.Prompt, "Gender: male")
	assert.Contains(t, req.Prompt, "Duration: 3 days")
	assert.Contains(t, req.Prompt, "Severity: mild")
}

func TestSymptomGuidance(t *testing.T) {
	fake := llmtest.Echo(map[string]any{
		"possibleCauses": []map[string]string{
			{"cause": "Common cold", "urgency": "routine", "rationale": "Mild symptoms for a short time."},
			{"cause": "Influenza", "urgency": "Consult_Soon", "rationale": "Fever with body aches."},
			{"cause": "Pneumonia", "urgency": "whenever", "rationale": "Cough with fever."},
			{"cause": "  ", "urgency": "routine", "rationale": "dropped"},
		},
		"disclaimer": "",
	})
	svc, _ := newService(t, fake)
	age := 30

	out, err := svc.SymptomGuidance(context.Background(), capability.SymptomInput{
		Symptoms: "fever and cough",
		Age:      &age,
		Duration: "3 days",
		Severity: "moderate",
	})
	require.NoError(t, err)

	require.Len(t, out.PossibleCauses, 3)
	assert.Equal(t, capability.UrgencyRoutine, out.PossibleCauses[0].Urgency)
	assert.Equal(t, capability.UrgencyConsultSoon, out.PossibleCauses[1].Urgency)
	// unknown urgency falls back to consult soon
	assert.Equal(t, capability.UrgencyConsultSoon, out.PossibleCauses[2].Urgency)
	assert.Equal(t, prompt.Disclaimer, out.Disclaimer)

	req, _ := fake.Last()
	assert.Contains(t, req.Prompt, "Age: 30")
	assert.Contains(t, req.Prompt, "Symptoms: fever and cough")
	assert.Contains(t, req.Prompt, "Gender: \n")
	assert.Equal(t, llm.SafetyBlockOnlyHigh, req.Safety)
	assert.Nil(t, req.Image)
}

func TestEmergencyCoercion(t *testing.T) {
	cases := []struct {
		name  string
		reply capability.EmergencyOutput
		want  capability.EmergencyOutput
	}{
		{
			name:  "emergency without advice gets default advice",
			reply: capability.EmergencyOutput{IsEmergency: true},
			want:  capability.EmergencyOutput{IsEmergency: true, EmergencyAdvice: capability.DefaultEmergencyAdvice},
		},
		{
			name:  "advice cleared when not an emergency",
			reply: capability.EmergencyOutput{IsEmergency: false, EmergencyAdvice: "relax"},
			want:  capability.EmergencyOutput{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newService(t, llmtest.Echo(tc.reply))
			got, err := svc.DetectEmergency(context.Background(), capability.EmergencyInput{UserInput: "help"})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnknownConcernLevelIsModerate(t *testing.T) {
	svc, _ := newService(t, llmtest.Echo(map[string]any{"explanation": "Hard to say.", "concernLevel": "SEVERE"}))
	out, err := svc.AnalyzeXRay(context.Background(), capability.XRayInput{PhotoDataURI: media.Encode("image/jpeg", []byte("jpg"))})
	require.NoError(t, err)
	assert.Equal(t, capability.ConcernModerate, out.ConcernLevel)
}

func TestImageTravelsWithPrompt(t *testing.T) {
	fake := llmtest.Echo(capability.ChatOutput{Answer: "It looks like a mild rash."})
	svc, _ := newService(t, fake)

	_, err := svc.Chat(context.Background(), capability.ChatInput{
		Question:     "What is this rash?",
		PhotoDataURI: media.Encode("image/jpeg", []byte{0xff, 0xd8}),
	})
	require.NoError(t, err)

	req, _ := fake.Last()
	require.NotNil(t, req.Image)
	assert.Equal(t, "image/jpeg", req.Image.MIMEType)
	assert.Equal(t, []byte{0xff, 0xd8}, req.Image.Data)
}

func TestInvalidImageNeverReachesModel(t *testing.T) {
	fake := llmtest.Echo(capability.XRayOutput{Explanation: "x"})
	svc, j := newService(t, fake)

	_, err := svc.AnalyzeXRay(context.Background(), capability.XRayInput{PhotoDataURI: "data:text/plain;base64,aGk="})
	assert.ErrorIs(t, err, capability.ErrInvalidImage)
	assert.Zero(t, fake.CallCount())
	require.Len(t, j.entries, 1)
	assert.Equal(t, journal.OutcomeInvalid, j.entries[0].Outcome)
}

func TestModelErrorPropagates(t *testing.T) {
	svc, j := newService(t, llmtest.Failing(errors.New("upstream 503")))

	_, err := svc.Chat(context.Background(), capability.ChatInput{Question: "hi"})
	require.Error(t, err)
	assert.True(t, llm.IsModelError(err))
	require.Len(t, j.entries, 1)
	assert.Equal(t, journal.OutcomeModelError, j.entries[0].Outcome)
	assert.Equal(t, "medical_ai_chat", j.entries[0].Capability)
	assert.Equal(t, "test-model", j.entries[0].Model)
}

func TestEmptyReplyIsModelError(t *testing.T) {
	svc, _ := newService(t, &llmtest.Fake{Reply: []byte("null")})

	_, err := svc.InterpretReport(context.Background(), capability.ReportInput{ReportText: "Glucose 90 mg/dL"})
	assert.ErrorIs(t, err, llm.ErrNoOutput)
	assert.True(t, llm.IsModelError(err))
}

func TestPartialOutput(t *testing.T) {
	svc, j := newService(t, llmtest.Echo(map[string]any{"possibleCauses": []any{}, "disclaimer": "x"}))

	_, err := svc.SymptomGuidance(context.Background(), capability.SymptomInput{Symptoms: "headache"})
	var pe *capability.PartialOutputError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "possibleCauses", pe.Field)
	assert.ErrorIs(t, err, llm.ErrNoOutput)
	assert.Equal(t, journal.OutcomePartial, j.entries[0].Outcome)
}

func TestJournalEntryOnSuccess(t *testing.T) {
	svc, j := newService(t, llmtest.Echo(capability.ReportOutput{SimplifiedExplanation: "ok"}))

	_, err := svc.InterpretReport(context.Background(), capability.ReportInput{ReportText: "LDL 100 mg/dL", Language: "Hindi"})
	require.NoError(t, err)
	require.Len(t, j.entries, 1)
	e := j.entries[0]
	assert.Equal(t, journal.OutcomeOK, e.Outcome)
	assert.Equal(t, "Hindi", e.Language)
	assert.Empty(t, e.Error)
	assert.NotEqual(t, "", e.ID.String())
}

func TestParseUrgency(t *testing.T) {
	for in, want := range map[string]capability.Urgency{
		"routine":      capability.UrgencyRoutine,
		" EMERGENCY ":  capability.UrgencyEmergency,
		"consult-soon": capability.UrgencyConsultSoon,
	} {
		got, ok := capability.ParseUrgency(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	got, ok := capability.ParseUrgency("asap")
	assert.False(t, ok)
	assert.Equal(t, capability.UrgencyConsultSoon, got)
}
