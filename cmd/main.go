package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/brettbedarf/dirtree"
	"github.com/brettbedarf/dirtree/config"
	"github.com/brettbedarf/dirtree/internal/util"
)

// ConfigEnv names a default config file when --config is not given
const ConfigEnv = "DIRTREE_CONFIG"

var (
	configPath  string
	verbose     int
	echo        bool
	autoCreate  bool
	stopOnError bool
)

var rootCmd = &cobra.Command{
	Use:   "dirtree [flags] <command-file>",
	Short: "Run CREATE, DELETE, MOVE and LIST commands against an in-memory directory tree",
	Long: `dirtree reads one command per line from the given file and applies it to a
virtual directory tree. LIST prints the tree depth-first, two spaces of indent
per level; failed commands print a "Cannot ..." message and the run continues.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRun:        loadEnv,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML or JSON config file (default $"+ConfigEnv+")")
	rootCmd.Flags().IntVarP(&verbose, "verbose", "v", config.InfoVerbose,
		"Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	rootCmd.Flags().BoolVar(&echo, "echo", false, "Print each command before its output")
	rootCmd.Flags().BoolVar(&autoCreate, "auto-create", false, "CREATE makes missing parent directories")
	rootCmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Stop at the first failed command")
}

func loadEnv(_ *cobra.Command, _ []string) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()
	if configPath == "" {
		configPath = os.Getenv(ConfigEnv)
	}
}

// flagOverride collects only the flags the user actually set so they win
// over the config file without clobbering it with flag defaults.
func flagOverride(cmd *cobra.Command) *config.ConfigOverride {
	override := &config.ConfigOverride{}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		override.LogLvl = util.Pointer(verbose)
	}
	if flags.Changed("echo") {
		override.EchoCommands = util.Pointer(echo)
	}
	if flags.Changed("auto-create") {
		override.AutoCreateParents = util.Pointer(autoCreate)
	}
	if flags.Changed("stop-on-error") {
		override.StopOnError = util.Pointer(stopOnError)
	}
	return override
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.NewDefaultConfig()
	if configPath != "" {
		fileCfg, err := config.NewConfigFromFile(configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", configPath, err)
		}
		cfg = fileCfg
	}
	cfg.Merge(flagOverride(cmd))

	util.InitializeLogger(cfg.LogLvl, os.Stderr)
	logger := util.GetLogger("main")

	cmdFile := args[0]
	logger.Debug().Str("file", cmdFile).Str("config", configPath).Msg("dirtree initializing")

	src, err := dirtree.OpenFileSource(cmdFile)
	if err != nil {
		logger.Error().Err(err).Str("file", cmdFile).Msg("Failed to open command file")
		return err
	}
	defer src.Close()

	runner := dirtree.New(cfg, cmd.OutOrStdout())
	if _, err := runner.Run(src); err != nil {
		logger.Error().Err(err).Str("run_id", runner.RunID()).Msg("Run aborted")
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
