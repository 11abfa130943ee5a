package pixelsort

import (
	"errors"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// HueWindow is an inclusive range of hues, each in [0, 1).
type HueWindow struct {
	Min, Max float64
}

// Contains reports whether Min <= h <= Max.
func (w HueWindow) Contains(h float64) bool {
	return w.Min <= h && h <= w.Max
}

// Sort reorders the pixels of every row of img in place. Within a row, each
// maximal run of pixels whose hue lies in win is sorted by ascending
// luminance. The first pixel of a row never joins a run and never moves.
// Pixels outside the window keep their positions. Equal-luminance pixels
// keep their relative order.
//
// Sort fails, leaving img untouched, if len(img.Pix) != img.Width*img.Height.
func Sort(img *Image, win HueWindow, o *Options) error {
	if img.Width < 0 || img.Height < 0 || len(img.Pix) != img.Width*img.Height {
		return errors.New("pixelsort: pixel count does not match image size")
	}
	start := time.Now()
	p := o.newProgress(StageSort, img.Height)

	if workers := o.workers(); workers > 1 && img.Height > 1 {
		var g errgroup.Group
		g.SetLimit(workers)
		for y := range img.Height {
			g.Go(func() error {
				SortRow(img.Row(y), win)
				p.add(1)
				return nil
			})
		}
		// Rows cannot fail; the group only bounds concurrency.
		_ = g.Wait()
	} else {
		for y := range img.Height {
			SortRow(img.Row(y), win)
			p.add(1)
		}
	}
	p.finish()

	Logger().Debug("pixels sorted", "width", img.Width, "height", img.Height,
		"minHue", win.Min, "maxHue", win.Max, "elapsed", time.Since(start))
	return nil
}

// SortRow applies Sort's reordering to a single row.
func SortRow(row []Color, win HueWindow) {
	x := 1
	for x < len(row) {
		if !win.Contains(row[x].Hue()) {
			x++
			continue
		}
		start := x
		for x < len(row) && win.Contains(row[x].Hue()) {
			x++
		}
		if x-start > 1 {
			slices.SortStableFunc(row[start:x], Compare)
		}
	}
}
