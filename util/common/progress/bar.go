package progress

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/muleops/exchange-cli/util/common"
)

type barWriter struct {
	bar *pterm.ProgressbarPrinter
}

func (w *barWriter) Write(p []byte) (int, error) {
	n := len(p)
	w.bar.Add(n)
	return n, nil
}

// Reader wraps r so that every byte read advances a progress bar titled
// after the file being transferred. The returned func stops the bar.
func Reader(contentLength int64, r io.Reader, saveFilename string) (io.Reader, func()) {
	title := fmt.Sprintf("%s (%s)", saveFilename, common.GetSize(contentLength))
	bar := pterm.DefaultProgressbar.
		WithTitle(title).
		WithRemoveWhenDone(false)

	if contentLength > 0 {
		bar = bar.WithTotal(int(contentLength))
	}

	pb, _ := bar.Start()

	tee := io.TeeReader(r, &barWriter{pb})
	return tee, func() { pb.Stop() }
}
