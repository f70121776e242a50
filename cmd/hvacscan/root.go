package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hvacscan/internal/config"
	"hvacscan/internal/logging"
	"hvacscan/internal/pipeline"
	"hvacscan/internal/storage"
)

var (
	cfg    config.Config
	logger *zap.Logger

	dbPath     string
	tuningFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hvacscan",
	Short: "Classify scanned HVAC nameplates and build Master PMA estimates",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.Load()
		must(err)
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		if tuningFile != "" {
			must(cfg.ApplyTuningFile(tuningFile))
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		logger, err = logging.New(cfg.LogLevel, cfg.LogFormat)
		must(err)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "register database path (default $DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&tuningFile, "tuning", "", "classifier tuning TOML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd, typesCmd, classifyCmd)
	rootCmd.AddCommand(projectCreateCmd, registerAddCmd, registerListCmd)
	rootCmd.AddCommand(exportXLSXCmd, exportTSVCmd, exportListCmd, importXLSXCmd)
}

func openDB() *storage.DB {
	db, err := storage.Open(cfg.DBPath)
	must(err)
	return db
}

func registerService(db *storage.DB) *pipeline.RegisterService {
	return pipeline.NewRegisterService(db, cfg, logger)
}
