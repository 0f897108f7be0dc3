package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "orrery",
	Short: "Explore the planets of the solar system",
	Long: "Orrery walks you through the planets: pick one to see its facts and how many of its\n" +
		"years have passed since the solar system formed, measure its distance to another\n" +
		"planet, then add planets of your own.",
	Args:          cobra.NoArgs,
	RunE:          runExplore,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .orrery.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("catalog", "", "planet catalog TOML file (default: built-in Sol catalog)")
}

func initConfig() {
	// A missing .env is normal; real environment variables still apply.
	_ = godotenv.Load()

	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".orrery")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ORRERY")
	viper.AutomaticEnv()

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
