package widget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/voidshard/playground/pkg/api"
	"github.com/voidshard/playground/pkg/structs"
)

// Poller periodically fetches the status of the current run & displays it.
type Poller struct {
	svc     api.API
	runID   TextSource
	status  TextSink
	outputs ListSink
	opts    *Options
	log     *slog.Logger

	lock    sync.Mutex
	issued  uint64
	applied uint64
}

// NewPoller returns a poller reading the run id from runID & writing to status and outputs.
func NewPoller(svc api.API, runID TextSource, status TextSink, outputs ListSink, opts *Options) *Poller {
	opts = opts.orDefault()
	return &Poller{
		svc:     svc,
		runID:   runID,
		status:  status,
		outputs: outputs,
		opts:    opts,
		log:     opts.Logger.With("component", "poller"),
	}
}

// Poll runs a single cycle. With no run id nothing is requested.
//
// A failed request is returned & nothing is displayed.
func (p *Poller) Poll(ctx context.Context) error {
	id := p.runID.Text()
	if id == "" {
		p.log.Debug("no run id")
		return nil
	}

	p.lock.Lock()
	p.issued++
	seq := p.issued
	p.lock.Unlock()

	p.log.Debug("polling", "run_id", id, "seq", seq)
	result, err := p.svc.Run(ctx, id)
	if err != nil {
		return err
	}
	if !result.HasStatus() {
		return nil // not ready yet
	}

	p.apply(seq, result)
	return nil
}

// apply writes result to the sinks. Holding the lock keeps status & outputs
// from two responses from interleaving.
func (p *Poller) apply(seq uint64, result *structs.RunStatus) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.opts.DropStale && seq < p.applied {
		p.log.Debug("dropping stale status", "seq", seq, "applied", p.applied)
		return
	}
	p.applied = seq

	p.log.Debug("status", "status", result.Status, "outputs", len(result.Outputs))
	p.status.SetText(string(result.Status))
	p.outputs.SetList(result.Outputs)
}

// Run polls every interval until ctx is done. Each poll runs in its own routine;
// a slow poll doesn't hold up the next one. Run waits for in-flight polls before
// returning.
func (p *Poller) Run(ctx context.Context) {
	tick := time.NewTicker(p.opts.Interval)
	defer tick.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := p.Poll(ctx)
				if err != nil {
					p.log.Debug("poll failed", "err", err)
				}
			}()
		}
	}
}
