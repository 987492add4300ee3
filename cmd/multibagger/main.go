// Indian Multibagger Stock Predictor
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/seenimoa/multibagger/api"
	"github.com/seenimoa/multibagger/internal/analyzer"
	"github.com/seenimoa/multibagger/internal/config"
	"github.com/seenimoa/multibagger/internal/logging"
	"github.com/seenimoa/multibagger/internal/report"
	"github.com/seenimoa/multibagger/internal/sector"
	"github.com/seenimoa/multibagger/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, set by the root command before any subcommand runs.
var (
	cfg    *config.Config
	logger zerolog.Logger
)

var errBlankCompany = errors.New("company name is required")

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "multibagger",
	Short: "Indian Multibagger Stock Predictor",
	Long: `Indian Multibagger Stock Predictor
Generates illustrative multibagger reports for Indian companies, served
as a single-page web app or printed from the command line.

Reports are simulated: scores and metrics are random draws, not advice.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		logger, err = logging.Setup(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(sectorsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// generator returns a generator for seed, falling back to the configured
// seed. Zero means unseeded.
func generator(seed uint64) *analyzer.Generator {
	if seed == 0 {
		seed = cfg.Analysis.Seed
	}
	if seed == 0 {
		return analyzer.New(nil)
	}
	return analyzer.NewSeeded(seed)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "multibagger %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [company]",
	Short: "Generate a multibagger report for a company",
	Long: `Generate a multibagger report for a company and print it.

Examples:
  multibagger analyze "Tata Motors" --sector Auto
  multibagger analyze Infosys --sector IT --format markdown
  multibagger analyze Reliance --format json --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		company := args[0]
		if utils.IsBlank(company) {
			return errBlankCompany
		}

		sectorName, _ := cmd.Flags().GetString("sector")
		if _, ok := sector.Parse(sectorName); !ok && sectorName != "" {
			logger.Warn().Str("sector", sectorName).Msg("unknown sector, using neutral multiplier")
		}

		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := report.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		res := generator(seed).Generate(company, sectorName)
		logger.Debug().
			Str("company", company).
			Int("score", res.MultibaggerScore).
			Str("tier", string(res.Tier())).
			Msg("analysis generated")

		return report.Render(cmd.OutOrStdout(), &res, report.Options{
			Format: format,
			Sector: sectorName,
			Now:    utils.NowIST(),
		})
	},
}

func init() {
	analyzeCmd.Flags().String("sector", "", "sector code (see `multibagger sectors`)")
	analyzeCmd.Flags().String("format", "text", "output format: text, markdown, html, json")
	analyzeCmd.Flags().Uint64("seed", 0, "seed for reproducible output (0 = config or random)")
}

// --- Sectors Command ---

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "List the recognised sectors",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  %-8s %-20s %-22s %s\n", "CODE", "LABEL", "MULTIPLIER", "OUTLOOK")
		for _, s := range sector.All() {
			outlook := "generic"
			if s.HasOutlook() {
				outlook = "sector-specific"
			}
			fmt.Fprintf(out, "  %-8s %-20s ×%-21.2f %s\n", s.Code, s.Label, s.Multiplier, outlook)
		}
		fmt.Fprintf(out, "\n  Any other sector scores with ×%.2f and the generic outlook.\n", sector.NeutralMultiplier)
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and web UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.API.Port = port
		}
		if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
			cfg.Web.ServeUI = false
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		api.Version = version
		srv := api.NewServer(cfg, generator(0), logger)

		fmt.Fprintf(cmd.OutOrStdout(), "🌐 Starting multibagger server on %s\n", cfg.API.Addr())
		return srv.ListenAndServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides api.port)")
	serveCmd.Flags().Bool("no-ui", false, "serve the API only, without the web UI")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show version and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		line := strings.Repeat("═", 39)

		configFile := cfg.File
		if configFile == "" {
			configFile = "(defaults)"
		}
		seed := "random"
		if cfg.Analysis.Seed != 0 {
			seed = fmt.Sprint(cfg.Analysis.Seed)
		}

		fmt.Fprintln(out, line)
		fmt.Fprintln(out, "  Multibagger — System Status")
		fmt.Fprintln(out, line)
		fmt.Fprintf(out, "  Version:       %s (%s)\n", version, commit)
		fmt.Fprintf(out, "  Time (IST):    %s\n", utils.FormatDateTimeIST(utils.NowIST()))
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  Configuration:")
		fmt.Fprintf(out, "    Config file:   %s\n", configFile)
		fmt.Fprintf(out, "    API Server:    %s\n", cfg.API.Addr())
		fmt.Fprintf(out, "    Web UI:        %t\n", cfg.Web.ServeUI)
		fmt.Fprintf(out, "    Seed:          %s\n", seed)
		fmt.Fprintf(out, "    Logging:       %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)
		fmt.Fprintf(out, "    Sectors:       %d\n", len(sector.All()))
		fmt.Fprintln(out, line)
		return nil
	},
}
