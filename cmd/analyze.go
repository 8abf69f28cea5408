package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studialabs/studia/internal/intake"
	"github.com/studialabs/studia/internal/quiz"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <document.pdf>",
	Short: "Generate a quiz from a document and print it as JSON",
	Long:  "Runs the analysis pipeline headlessly and prints the text summary and generated questions, without starting the TUI.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore(cmd)
		if st != nil {
			defer st.Close()
		}

		analyzer, err := buildAnalyzer(cmd, st)
		if err != nil {
			return err
		}

		doc, err := intake.Stage(args[0])
		if err != nil {
			return fmt.Errorf("stage document: %w", err)
		}

		res, err := analyzer.Analyze(cmd.Context(), doc)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", doc.Name, err)
		}

		payloads := make([]quiz.Payload, len(res.Questions))
		for i, q := range res.Questions {
			payloads[i] = quiz.PayloadFrom(q)
		}

		out := struct {
			TextSummary string         `json:"text_summary"`
			Questions   []quiz.Payload `json:"questions"`
		}{
			TextSummary: res.Summary,
			Questions:   payloads,
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}
