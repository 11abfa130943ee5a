package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Zyl9393/pixelsort"
	"github.com/Zyl9393/pixelsort/internal/fileio"
	"github.com/spf13/cobra"
)

var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:               "pixelsort",
	Short:             "Sort hue-selected pixel runs of ASCII PPM images by brightness",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().Float64("min-hue", 0.05, "Lower bound of the hue window, in [0, 1)")
	rootCmd.PersistentFlags().Float64("max-hue", 0.9, "Upper bound of the hue window, in [0, 1)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log stage details to stderr")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	pixelsort.SetLogger(logger)
	return nil
}

// closeSource releases an input mapping. The decoded image no longer needs
// it, so a failure is only reported.
func closeSource(src *fileio.Source, path string) {
	if err := src.Close(); err != nil {
		logger.Warn("releasing input", "path", path, "err", err)
	}
}

func hueWindow(cmd *cobra.Command) (pixelsort.HueWindow, error) {
	minHue, _ := cmd.Flags().GetFloat64("min-hue")
	maxHue, _ := cmd.Flags().GetFloat64("max-hue")
	if minHue > maxHue {
		return pixelsort.HueWindow{}, fmt.Errorf("min-hue %v is greater than max-hue %v", minHue, maxHue)
	}
	return pixelsort.HueWindow{Min: minHue, Max: maxHue}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
