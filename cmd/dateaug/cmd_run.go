package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shanehull/dateaug/internal/augment"
	"github.com/shanehull/dateaug/internal/config"
	"github.com/shanehull/dateaug/internal/dataset"
	"github.com/shanehull/dateaug/internal/history"
	"github.com/shanehull/dateaug/internal/notify"
	"github.com/shanehull/dateaug/internal/output"
	"github.com/shanehull/dateaug/internal/pipeline"
	"github.com/shanehull/dateaug/internal/types"
)

var (
	configPath  string
	inputPath   string
	outputDir   string
	minExamples int
	seed        uint64
	workers     int
	resume      bool
	indent      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Augment every paragraph of a dataset and write one JSON file per paragraph",
	Long: `Runs every augmentation strategy over the text before and after each
paragraph's date, rewrites the date and recombines the pieces until the
requested number of examples exists.

Without --input the built-in lease paragraphs are used. Inputs may be JSON,
YAML or HTML; HTML paragraphs are searched for a "<Month> <Day>, <Year>" date.`,
	Args: cobra.NoArgs,
	RunE: runAugmentation,
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "dateaug.yaml", "Config file")
	runCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Dataset file (.json, .yaml, .html); default: built-in paragraphs")
	runCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for augmentation files")
	runCmd.Flags().IntVar(&minExamples, "min-examples", 0, "Minimum examples per paragraph")
	runCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Paragraphs processed concurrently")
	runCmd.Flags().BoolVar(&resume, "resume", false, "Skip paragraphs already augmented in the output directory")
	runCmd.Flags().StringVar(&indent, "indent", "", "JSON indent for output files")
}

// applyFlags overlays explicitly set flags onto the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.Run.OutputDir = outputDir
	}
	if flags.Changed("min-examples") {
		cfg.Run.MinExamples = minExamples
	}
	if flags.Changed("seed") {
		cfg.Run.Seed = seed
	}
	if flags.Changed("workers") {
		cfg.Run.Workers = workers
	}
	if flags.Changed("resume") {
		cfg.Run.Resume = resume
	}
	if flags.Changed("indent") {
		cfg.Run.Indent = indent
	}
	if cfg.Run.Seed == 0 {
		cfg.Run.Seed = rand.Uint64()
	}
}

func loadParagraphs(path string) ([]types.Paragraph, error) {
	if path == "" {
		return dataset.Builtin(), nil
	}
	return dataset.Load(path)
}

func runAugmentation(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	paragraphs, err := loadParagraphs(inputPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	gen, err := augment.NewGeminiGenerator(ctx, cfg.GeminiConfig(), logger)
	if err != nil {
		return err
	}

	hist, err := history.NewManager(cfg.Run.OutputDir, logger)
	if err != nil {
		return fmt.Errorf("failed to set up history: %w", err)
	}

	logger.Info("Starting augmentation",
		zap.String("run_id", hist.RunID()),
		zap.String("history", hist.HistoryFilePath()),
		zap.Int("paragraphs", len(paragraphs)),
		zap.Uint64("seed", cfg.Run.Seed),
		zap.String("output_dir", cfg.Run.OutputDir))

	writer := output.NewWriter(cfg.Run.OutputDir, cfg.Run.Indent)

	started := time.Now()
	p := pipeline.New(
		augment.New(gen, cfg.AugmentConfig(), logger),
		writer,
		hist,
		cfg.PipelineOptions(),
		logger,
	)

	summaries, err := p.Run(ctx, paragraphs)
	if err != nil {
		return err
	}

	data := notify.NotificationData{
		RunID:     hist.RunID(),
		OutputDir: writer.Dir(),
		Started:   started,
		Elapsed:   time.Since(started),
		Summaries: summaries,
	}
	notify.ReportRun(cmd.OutOrStdout(), data)

	sendSummary(cfg.NotifyConfig(), data)

	return nil
}

// sendSummary emails the run summary when SMTP is configured. A failed send
// never fails the run.
func sendSummary(emailCfg notify.EmailConfig, data notify.NotificationData) {
	if !emailCfg.Enabled() {
		return
	}
	if err := notify.EmailRun(notify.NewEmailSender(emailCfg, logger), notify.NewHTMLEmailRenderer(), data); err != nil {
		logger.Error("Failed to email run summary", zap.Error(err))
	}
}
