package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fleetlens/fleetlens/engine"
	"github.com/fleetlens/fleetlens/helpers"
	"github.com/fleetlens/fleetlens/schema"
	"github.com/fleetlens/fleetlens/session"
	"github.com/fleetlens/fleetlens/translator"
)

// ============================================================================
// FLEETLENS CLI — Ask questions about a delivery CSV
// ============================================================================

const version = "0.1.0"

var (
	filePath    string
	aliasPath   string
	format      string
	outFile     string
	verbose     bool
	showVersion bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fleetlens",
	Short: "fleetlens — plain-English analytics for delivery CSV data",
	Long: `fleetlens answers plain-English questions about a delivery-logistics
CSV dataset: grouped delivery times, courier extremes, and
distance/time correlations.

Examples:
  fleetlens ask --file deliveries.csv "average delivery time per city"
  fleetlens ask --file deliveries.csv --format csv "which areas have the highest delays?"
  fleetlens roles --file deliveries.csv
  fleetlens intents`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("fleetlens %s\n", version)
			os.Exit(0)
		}
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask one question about the dataset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}

		question := strings.Join(args, " ")
		result := sess.Ask(question)

		w, closeFn, err := outputWriter()
		if err != nil {
			return err
		}
		defer closeFn()

		return renderResult(w, question, result)
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Show how canonical roles resolved against the dataset's columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}

		binds := sess.Bindings()
		for _, role := range schema.AllRoles {
			col, ok := binds.Column(role)
			if !ok {
				col = "(absent)"
			}
			fmt.Printf("%-22s %s\n", role.DisplayName(), col)
		}
		return nil
	},
}

var intentsCmd = &cobra.Command{
	Use:   "intents",
	Short: "List the supported question families",
	Run: func(cmd *cobra.Command, args []string) {
		seen := make(map[engine.Intent]bool)
		for _, rule := range translator.Rules {
			if seen[rule.Intent] {
				continue
			}
			seen[rule.Intent] = true
			fmt.Println(rule.Intent)
		}
		fmt.Println("\nExample questions:")
		for _, q := range engine.ExampleQuestions {
			fmt.Printf("  %s\n", q)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "Path to the delivery CSV file")
	rootCmd.PersistentFlags().StringVar(&aliasPath, "aliases", "", "Optional YAML file with column alias spellings")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "Output format: text, json, pretty, csv")
	rootCmd.PersistentFlags().StringVar(&outFile, "out", "", "Write output to file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "Print version and exit")

	rootCmd.AddCommand(askCmd, rolesCmd, intentsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ============================================================================
// SESSION SETUP
// ============================================================================

func openSession() (*session.Session, error) {
	if filePath == "" {
		return nil, fmt.Errorf("--file is required")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	tbl, err := helpers.ReadCSV(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	logger.Debug("dataset loaded",
		zap.String("file", filePath),
		zap.Int("rows", tbl.Len()),
	)

	opts := []session.Option{session.WithLogger(logger)}
	if aliasPath != "" {
		aliasData, err := os.ReadFile(aliasPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read alias file: %w", err)
		}
		aliases, err := schema.ParseAliases(aliasData)
		if err != nil {
			return nil, err
		}
		opts = append(opts, session.WithAliases(aliases))
	}

	return session.New(tbl, opts...), nil
}

// ============================================================================
// OUTPUT
// ============================================================================

func outputWriter() (*os.File, func(), error) {
	if outFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func renderResult(w *os.File, question string, result *engine.Result) error {
	switch format {
	case "json", "pretty":
		out := struct {
			Question string         `json:"question"`
			Result   *engine.Result `json:"result"`
		}{question, result}

		var b []byte
		var err error
		if format == "pretty" {
			b, err = json.MarshalIndent(out, "", "  ")
		} else {
			b, err = json.Marshal(out)
		}
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Fprintln(w, string(b))
		return nil

	case "csv":
		return writeCSV(w, result)

	default:
		if result.Reply != "" {
			fmt.Fprintln(w, result.Reply)
		}
		if result.Table != nil {
			writeAlignedTable(w, result.Table)
		}
		return nil
	}
}

// writeCSV emits table results as CSV, falling back to a single-row
// summary for text results — ready for Sheets/Excel.
func writeCSV(w *os.File, result *engine.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if result.Table != nil {
		headers := make([]string, len(result.Table.Columns))
		for i, c := range result.Table.Columns {
			headers[i] = c.Label
		}
		if err := cw.Write(headers); err != nil {
			return err
		}
		for _, row := range result.Table.Rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := cw.Write([]string{"Answer"}); err != nil {
		return err
	}
	return cw.Write([]string{result.Reply})
}

func writeAlignedTable(w *os.File, t *engine.TableData) {
	if t.Title != "" {
		fmt.Fprintln(w, t.Title)
	}

	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c.Label)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if i < len(widths) {
				parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
			} else {
				parts[i] = cell
			}
		}
		fmt.Fprintln(w, "  "+strings.Join(parts, "  "))
	}

	labels := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		labels[i] = c.Label
	}
	printRow(labels)
	for _, row := range t.Rows {
		printRow(row)
	}
}
