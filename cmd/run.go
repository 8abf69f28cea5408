package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studialabs/studia/internal/analysis"
	"github.com/studialabs/studia/internal/app"
	"github.com/studialabs/studia/internal/llm"
	"github.com/studialabs/studia/internal/telemetry"
)

const defaultServer = "http://localhost:8000"

// runApp opens the telemetry store, builds the analyzer, and launches
// the TUI.
func runApp(cmd *cobra.Command, args []string) error {
	st := openStore(cmd)
	if st != nil {
		defer st.Close()
	}

	analyzer, err := buildAnalyzer(cmd, st)
	if err != nil {
		return err
	}

	opts := app.Options{
		Analyzer: analyzer,
	}
	if st != nil {
		opts.Recorder = st.Recorder()
	}
	if len(args) > 0 {
		opts.InitialPath = args[0]
	}

	return app.Run(opts)
}

// openStore opens the event store. Telemetry is best effort: a failure
// is reported but never blocks studying.
func openStore(cmd *cobra.Command) *telemetry.Store {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Telemetry disabled:", err)
		return nil
	}
	st, err := telemetry.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Telemetry disabled:", err)
		return nil
	}
	return st
}

// buildAnalyzer picks the quiz source: the analysis server by default,
// or a local LLM pipeline with --offline.
func buildAnalyzer(cmd *cobra.Command, st *telemetry.Store) (analysis.Analyzer, error) {
	offline, _ := cmd.Flags().GetBool("offline")
	if offline {
		var logger llm.RequestLogger
		if st != nil {
			logger = st.RequestLogger()
		}
		provider, err := llm.NewProviderFromEnv(cmd.Context(), logger)
		if err != nil {
			return nil, fmt.Errorf("offline mode needs a configured LLM provider: %w", err)
		}
		return analysis.NewLLMAnalyzer(provider, analysis.DefaultLLMConfig()), nil
	}

	server, _ := cmd.Flags().GetString("server")
	if server == "" {
		server = os.Getenv("STUDIA_SERVER")
	}
	if server == "" {
		server = defaultServer
	}
	return analysis.NewRemoteAnalyzer(server, nil), nil
}
