package widget

import (
	"context"
	"sync"

	"github.com/voidshard/playground/pkg/api"
)

// Widget is a running poller & submitter bound to a page.
type Widget struct {
	Poller    *Poller
	Submitter *Submitter

	cancel context.CancelFunc
	done   sync.WaitGroup
}

// Ready wires the poller & submitter to the page and starts polling, until ctx
// is done or Close is called.
func Ready(ctx context.Context, page *Page, svc api.API, opts *Options) *Widget {
	opts = opts.orDefault()

	ctx, cancel := context.WithCancel(ctx)
	w := &Widget{
		Poller:    NewPoller(svc, page.RunID, page.Status, page.Output, opts),
		Submitter: NewSubmitter(svc, page.Configuration, page.ShareURL, page.Origin, opts),
		cancel:    cancel,
	}

	w.done.Add(1)
	go func() {
		defer w.done.Done()
		w.Poller.Run(ctx)
	}()

	return w
}

// Click presses the share button.
func (w *Widget) Click(ctx context.Context) {
	w.Submitter.Click(ctx)
}

// Close stops polling & waits for in-flight polls to finish.
func (w *Widget) Close() error {
	w.cancel()
	w.done.Wait()
	return nil
}
