package main

import (
	"fmt"

	"github.com/Zyl9393/pixelsort"
	"github.com/Zyl9393/pixelsort/internal/fileio"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [input]",
	Short: "Inspect a P3 image and its hue window coverage",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	win, err := hueWindow(cmd)
	if err != nil {
		return err
	}

	src, err := fileio.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer closeSource(src, path)

	img, err := pixelsort.Decode(src.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	var lum float64
	inWindow := 0
	for _, px := range img.Pix {
		lum += px.Luminance()
		if win.Contains(px.Hue()) {
			inWindow++
		}
	}
	n := len(img.Pix)

	p := message.NewPrinter(language.English)
	out := cmd.OutOrStdout()
	p.Fprintf(out, "File:        %s\n", path)
	p.Fprintf(out, "Format:      %s\n", img.Format)
	p.Fprintf(out, "Dimensions:  %d x %d\n", img.Width, img.Height)
	p.Fprintf(out, "Colorspace:  %d\n", img.Colorspace)
	p.Fprintf(out, "Pixels:      %d\n", n)
	p.Fprintf(out, "Mean luminance: %.4f\n", lum/float64(n))
	p.Fprintf(out, "Hue window [%v, %v]: %d pixels (%.1f%%)\n",
		win.Min, win.Max, inWindow, float64(inWindow)*100/float64(n))
	return nil
}
