package main

import (
	"fmt"
	"io"
	"time"

	"github.com/Zyl9393/pixelsort"
	"github.com/Zyl9393/pixelsort/internal/fileio"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var sortCmd = &cobra.Command{
	Use:   "sort [input]",
	Short: "Pixel-sort a P3 image and write the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runSort,
}

func init() {
	sortCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	sortCmd.Flags().Int("workers", 1, "Rows sorted concurrently")
	sortCmd.Flags().Bool("progress", false, "Show per-stage progress on stderr")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	workers, _ := cmd.Flags().GetInt("workers")
	showProgress, _ := cmd.Flags().GetBool("progress")

	win, err := hueWindow(cmd)
	if err != nil {
		return err
	}

	diag := cmd.ErrOrStderr()
	p := message.NewPrinter(language.English)
	opts := &pixelsort.Options{Workers: workers}
	if showProgress {
		opts.Progress = progressPrinter(diag)
	}

	start := time.Now()
	src, err := fileio.Open(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	stageStart := time.Now()
	img, err := pixelsort.Decode(src.Bytes(), opts)
	closeSource(src, inputPath)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}
	p.Fprintf(diag, "Reading, Done (%d ms)\n", time.Since(stageStart).Milliseconds())

	stageStart = time.Now()
	if err := pixelsort.Sort(img, win, opts); err != nil {
		return fmt.Errorf("sorting: %w", err)
	}
	p.Fprintf(diag, "Sorting, Done (%d ms)\n", time.Since(stageStart).Milliseconds())

	stageStart = time.Now()
	out, err := pixelsort.Append(make([]byte, 0, len(img.Pix)*12+32), img, opts)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if err := writeOutput(cmd, outputPath, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	p.Fprintf(diag, "Writing, Done (%d ms)\n", time.Since(stageStart).Milliseconds())

	p.Fprintf(diag, "Sorted %d x %d (%d pixels), hue window [%v, %v]\n",
		img.Width, img.Height, len(img.Pix), win.Min, win.Max)
	p.Fprintf(diag, "Total: %d ms\n", time.Since(start).Milliseconds())
	return nil
}

// writeOutput sends data to the command's stdout when no output file is named.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == fileio.Stdio {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return fileio.WriteFile(path, data)
}

// progressPrinter rewrites a single status line per stage.
func progressPrinter(w io.Writer) pixelsort.ProgressFunc {
	return func(stage pixelsort.Stage, done, total int) {
		if done >= total {
			fmt.Fprintf(w, "%s, Progress: 100%%   \n", stage)
			return
		}
		fmt.Fprintf(w, "%s, Progress: %d%%   \r", stage, done*100/total)
	}
}
