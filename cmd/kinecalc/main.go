package main

import (
	"fmt"
	"os"

	"kinecalc/internal/config"
	"kinecalc/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	appCfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kinecalc",
	Short: "kinecalc - constant-acceleration kinematics calculator",
	Long: `kinecalc solves one-dimensional motion under constant acceleration.

Choose the variable to calculate (displacement, initial velocity, final
velocity, acceleration or time), give exactly three of the other four in any
supported unit, and kinecalc picks the matching equation.

Run without arguments to start the interactive calculator.`,
	SilenceUsage: true,
	PersistentPreRunE: preRun,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive calculator
		return runInteractive(cmd.Context())
	},
}

// preRun loads the config and sets up both loggers for every command.
func preRun(cmd *cobra.Command, args []string) error {
	// config init must be able to replace a file that no longer loads.
	if cmd == configInitCmd {
		appCfg = config.DefaultConfig()
	} else if err := loadConfig(); err != nil {
		return err
	}
	if err := logging.Initialize(appCfg.Logging.Options()); err != nil {
		return fmt.Errorf("failed to initialize file logging: %w", err)
	}

	// The interactive calculator owns the terminal; no console logger.
	if cmd == cmd.Root() {
		logger = zap.NewNop()
		return nil
	}

	zapCfg := zap.NewProductionConfig()
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// resolveConfigPath returns --config or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func loadConfig() error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	appCfg = cfg
	return nil
}

// currentConfig returns the loaded config, or defaults when commands run
// without the root pre-run (tests).
func currentConfig() *config.Config {
	if appCfg == nil {
		return config.DefaultConfig()
	}
	return appCfg
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/kinecalc/config.yaml)")

	initSolveFlags()
	initBatchFlags()
	initConfigFlags()

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
