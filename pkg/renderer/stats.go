package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Tiles          int           // Number of tiles rendered
	RenderTime     time.Duration // Wall clock time of the render
	Workers        []WorkerStats // Per-worker breakdown, empty for single-threaded renders
}

// WorkerStats tracks the share of a render handled by one worker
type WorkerStats struct {
	ID         int
	Tiles      int
	Pixels     int
	Samples    int
	RenderTime time.Duration // Time spent inside tile renders
}

// AddPixel records a pixel that took the given number of samples
func (s *RenderStats) AddPixel(samples int) {
	s.TotalPixels++
	s.TotalSamples += samples
}

// Merge folds the counters of another stats block into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Tiles += other.Tiles
}

// Finalize calculates derived statistics after all pixels are rendered
func (s *RenderStats) Finalize() {
	if s.TotalPixels == 0 {
		s.AverageSamples = 0
		return
	}
	s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
}

// FormatStats renders the statistics as a text table with one row per worker
func FormatStats(stats RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Samples", "% of frame", "Render time"})
	for _, w := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Tiles),
			fmt.Sprintf("%d", w.Pixels),
			fmt.Sprintf("%d", w.Samples),
			fmt.Sprintf("%02.1f %%", percentOf(w.Pixels, stats.TotalPixels)),
			w.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.1f spp", stats.AverageSamples),
		stats.RenderTime.String(),
	})

	table.Render()
	return buf.String()
}

func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
