package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/boundary"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/capability"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/config"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm/provider"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/locale"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/media"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/report"
)

type askFlags struct {
	language string
	file     string
	age      string
	gender   string
	duration string
	severity string
}

func newAskCmd(cfg config.Config, log *logrus.Logger) *cobra.Command {
	var f askFlags
	cmd := &cobra.Command{
		Use:   "ask <chat|symptoms|report|xray|emergency> [text]",
		Short: "Run one capability and print the JSON result",
		Long: "Runs a capability against the configured model. Text is taken from the argument or stdin;\n" +
			"--file attaches an image (chat, symptoms, xray) or a report document (report).",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"chat", "symptoms", "report", "xray", "emergency"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			needsText := args[0] != "xray" && !(args[0] == "report" && f.file != "")
			if len(args) == 2 {
				text = args[1]
			} else if needsText {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(b)
			}

			model, err := provider.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			guard := boundary.New(capability.NewService(model, model.Name(), nil, log), nil, log)
			lang := locale.Default().Resolve(f.language)

			out, err := runAsk(cmd, guard, args[0], text, lang, f)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&f.language, "language", "", "locale code (en, es, hi) or language name")
	cmd.Flags().StringVar(&f.file, "file", "", "image or report file")
	cmd.Flags().StringVar(&f.age, "age", "", "patient age (symptoms)")
	cmd.Flags().StringVar(&f.gender, "gender", "", "patient gender (symptoms)")
	cmd.Flags().StringVar(&f.duration, "duration", "", "how long the symptoms have lasted (symptoms)")
	cmd.Flags().StringVar(&f.severity, "severity", "", "symptom severity (symptoms)")
	return cmd
}

func runAsk(cmd *cobra.Command, guard *boundary.Boundary, name, text, lang string, f askFlags) (any, error) {
	ctx := cmd.Context()
	photo, err := photoFromFile(name, f.file)
	if err != nil {
		return nil, err
	}
	switch name {
	case "chat":
		return guard.ChatWithTriage(ctx, boundary.ChatForm{Question: text, PhotoDataURI: photo, Language: lang})
	case "symptoms":
		form := boundary.SymptomForm{
			Symptoms:     text,
			PhotoDataURI: photo,
			Gender:       f.gender,
			Duration:     f.duration,
			Severity:     f.severity,
			Language:     lang,
		}
		if f.age != "" {
			form.Age = json.RawMessage(strconv.Quote(f.age))
		}
		return guard.SymptomGuidanceWithTriage(ctx, form)
	case "report":
		if f.file != "" {
			data, err := os.ReadFile(f.file)
			if err != nil {
				return nil, err
			}
			if text, err = report.ExtractText(f.file, data); err != nil {
				return nil, err
			}
		}
		return guard.InterpretMedicalReport(ctx, boundary.ReportForm{ReportText: text, Language: lang})
	case "xray":
		return guard.AnalyzeXRayImage(ctx, boundary.XRayForm{PhotoDataURI: photo, Language: lang})
	case "emergency":
		return guard.DetectEmergency(ctx, boundary.EmergencyForm{UserInput: text, Language: lang})
	default:
		return nil, fmt.Errorf("unknown capability %q", name)
	}
}

func photoFromFile(name, path string) (string, error) {
	if path == "" || name == "report" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return media.FromUpload("", data), nil
}
