package main

import "fmt"

import "github.com/spf13/cobra"
import "github.com/spf13/viper"

import s "github.com/bnclabs/gosettings"
import log "github.com/bnclabs/golog"

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "gowire",
	Short: "TL wire codec and connection pool tool",
	Long: `gowire encodes and decodes TL framed values and exercises
pooled connections against a remote endpoint.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLogger(nil, s.Settings{
			"log.level": viper.GetString("log.level"),
			"log.file":  viper.GetString("log.file"),
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gowire",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gowire v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn",
		"log level: ignore, fatal, error, warn, info, verbose, debug, trace")
	rootCmd.PersistentFlags().String("log-file", "",
		"log to file, empty means console")

	viper.SetEnvPrefix("GOWIRE")
	viper.AutomaticEnv()
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(dialCmd)
}
