package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/davidleathers/dialprep/internal/domain/leadlist"
	"github.com/davidleathers/dialprep/internal/infrastructure/config"
	"github.com/davidleathers/dialprep/internal/infrastructure/tabular"
	"github.com/davidleathers/dialprep/internal/infrastructure/telemetry"
	"github.com/davidleathers/dialprep/internal/service/extraction"
)

func main() {
	// Parse flags
	var (
		configPath = flag.String("config", "", "Path to configuration file")
		inputPath  = flag.String("input", "", "Path to the phone-enhanced CSV export")
		refCode    = flag.String("ref", "", "Property reference code used in the output filename")
		outDir     = flag.String("out", "", "Output directory (overrides config)")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required flag: -input")
	}
	if *refCode == "" {
		log.Fatal("missing required flag: -ref")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *outDir != "" {
		cfg.Output.Directory = *outDir
	}

	logger, err := telemetry.SetupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, *inputPath, *refCode); err != nil {
		logger.Error("extraction failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, inputPath, refCode string) error {
	input, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	table, err := tabular.ReadCSV(input)
	if err != nil {
		return err
	}

	svc, err := extraction.NewService(logger, &extraction.Config{
		Columns:     columnsFromConfig(cfg.Columns),
		Deduplicate: cfg.Pipeline.Deduplicate,
	})
	if err != nil {
		return err
	}

	result, err := svc.Extract(context.Background(), table)
	if err != nil {
		return err
	}

	outPath := filepath.Join(cfg.Output.Directory, outputFilename(refCode, time.Now()))
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := tabular.WriteNumbers(out, result.Numbers); err != nil {
		return err
	}

	stats := result.Stats
	logger.Info("wrote dialer-ready list",
		zap.String("path", outPath),
		zap.Int("input_rows", stats.InputRows),
		zap.Int("dnc_removed", stats.DNCRemoved()),
		zap.Int("stacked", stats.Stacked),
		zap.Int("mobile_only", stats.MobileOnly),
		zap.Int("duplicates_removed", stats.Deduplicated),
		zap.Int("final", stats.Final),
		zap.Float64("conversion_rate_pct", stats.ConversionRate()),
	)

	if result.Warning == extraction.WarningNoMobileNumbers {
		logger.Warn("no mobile numbers found; output list is empty",
			zap.String("path", outPath))
	}

	return nil
}

func columnsFromConfig(cc config.ColumnsConfig) extraction.Columns {
	cols := extraction.Columns{DNC: cc.DNC}
	for i := 0; i < leadlist.PhoneSlots && i < len(cc.Phones); i++ {
		cols.Phones[i] = extraction.PhoneColumns{
			Number: cc.Phones[i].Number,
			Type:   cc.Phones[i].Type,
		}
	}
	return cols
}
