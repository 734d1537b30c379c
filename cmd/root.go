package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jsphweid/ragakey/constants"
	"github.com/jsphweid/ragakey/report"
)

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Find the best instrument base pitch for a raga",
	Long: `ragakey scores a scale written in Hindustani interval notation
(S r R g G m M P d D n N) from each of the 12 chromatic base pitches
against a quality mask, and reports the ranked results.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		report.New(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .ragakey.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("mask", "", "quality mask, 12 binary digits (e.g. 101010110101)")
	rootCmd.PersistentFlags().String("out-dir", "", "directory for generated charts and midi files")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("mask", rootCmd.PersistentFlags().Lookup("mask"))
	_ = viper.BindPFlag("out_dir", rootCmd.PersistentFlags().Lookup("out-dir"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(constants.DefaultConfigName)
		viper.SetConfigType(constants.DefaultConfigType)
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
