package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const versionTemplate = `{{printf "carouselctl version %s\n" .Version}}`

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "carouselctl",
	Short: "Play a slide carousel in your terminal",
	Long: `carouselctl shows a deck of slides one at a time, advancing on a timer.
Hovering the pointer over the slide pauses the carousel, the controls row
navigates, and the deck can come from inline configuration, a directory of
markdown files or a Kubernetes ConfigMap.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. missing deck, unreadable config)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(versionTemplate)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newRemoteCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
