package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake is the classic snake game in your terminal",
	Version: version.Version,
	RunE: func(c *cobra.Command, args []string) error {
		return play()
	},
}

var (
	width     int
	height    int
	moveDelay int
	maxInputs int
	fps       int
	seed      int64
	logLevel  string
	logFile   string
)

// Execute runs the root command
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&width, "width", config.Width, "board width in cells")
	flags.IntVar(&height, "height", config.Height, "board height in cells")
	flags.IntVar(&moveDelay, "move-delay", config.MoveDelay, "frames between snake moves")
	flags.IntVar(&maxInputs, "max-inputs", config.MaxQueuedInputs, "most directions buffered ahead of the snake, 0 for no limit")
	flags.IntVar(&fps, "fps", int(config.FrameRate), "frames per second")
	flags.Int64Var(&seed, "seed", 0, "random seed for apple placement, 0 picks one from the clock")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "file to write logs to, logs are discarded when empty")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
