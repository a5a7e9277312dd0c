package main

import (
	"github.com/ripap/ripsetup/internal/log"
)

var Version = "dev"

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	defer log.CloseFile()

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
