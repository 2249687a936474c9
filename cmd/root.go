package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mgd",
	Short: "Download manga chapters from MangaDex.",
	Long: `Download manga chapters from MangaDex.

Provide a configuration file using one of the following methods:
1. Use the --config <path> or -c <path> flag.
2. Place a config.yaml file in the default user configuration directory (e.g., ~/.config/mgd/).
3. Place a config.yaml file a folder inside your home directory (e.g., ~/.mgd/).
4. Place a config.yaml file in the directory of the binary.

For more information and examples, visit https://github.com/nuxencs/mgd`,
}

func init() {
	initRootFlags()
	initMangaFlags()
	initChapterFlags()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mangaCmd)
	rootCmd.AddCommand(chapterCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
