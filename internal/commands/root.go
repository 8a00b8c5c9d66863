// internal/commands/root.go
package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/mwiater/personasweep/internal/appconfig"
	"github.com/mwiater/personasweep/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "personasweep",
	Short: "personasweep — persona × discharge-summary comprehension sweeps against a chat-completion API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env file is a convenience for the API key; absence is fine.
		_ = godotenv.Load()

		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		if !cmd.Flags().Changed("debug") {
			val := viper.GetBool("debug")
			_ = cmd.Flags().Set("debug", strconv.FormatBool(val))
		}
		if !cmd.Flags().Changed("logFile") {
			_ = cmd.Flags().Set("logFile", viper.GetString("logFile"))
		}

		cfg, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg.Debug = viper.GetBool("debug")
		if logPath := viper.GetString("logFile"); logPath != "" {
			cfg.LogFile = logPath
		}
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if currentConfig.Debug {
			_, _ = pp.Println(currentConfig)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = versionString()

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "experiment config file")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig points viper at the experiment config file.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		viper.SetConfigType("json")
	}
}

// ensureConfigLoaded reads the config into viper so file-set flags merge.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded experiment configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)
}
