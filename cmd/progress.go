package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"

	"github.com/kozaktomas/face-trainer/internal/faces"
)

func newProgressBar() *progressbar.ProgressBar {
	return progressbar.NewOptions(0,
		progressbar.OptionSetDescription("starting"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// consumeProgress drives the progress bar from the pipeline's event
// channel. Events arrive in emission order; the loop ends when the
// producer closes the channel, after draining anything still buffered.
func consumeProgress(events <-chan faces.Report, logger *log.Logger) {
	bar := newProgressBar()
	length := 0

	for event := range events {
		switch e := event.(type) {
		case faces.IncreaseLength:
			length += e.N
			bar.ChangeMax(length)
		case faces.Increase:
			_ = bar.Add(e.N)
		case faces.Message:
			bar.Describe(e.Text)
		case faces.PartialResult:
			logger.Debug("batch finished", "result", e.Result.String())
		case faces.AccumulatedResult:
			logger.Debug("accumulated", "result", e.Result.String())
		case faces.Finished:
			bar.Describe(e.Text)
			_ = bar.Finish()
		}
	}
	fmt.Println() // New line after progress bar
}
