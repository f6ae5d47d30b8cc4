package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/voidshard/playground/internal/term"
	"github.com/voidshard/playground/pkg/structs"
	"github.com/voidshard/playground/pkg/widget"
)

const (
	docWatch = `Poll a run, printing its status & outputs as they change`
)

type optsWatch struct {
	optsGeneral
	optsTLS

	RunID      string        `long:"run-id" env:"RUN_ID" required:"true" description:"Run to watch"`
	Interval   time.Duration `long:"interval" env:"INTERVAL" default:"5s" description:"Time between polls"`
	UntilFinal bool          `long:"until-final" description:"Exit once the run reaches a final status"`
	DropStale  bool          `long:"drop-stale" description:"Ignore replies older than the status already shown"`
}

func (c *optsWatch) Execute(args []string) error {
	log := c.logger()
	svc, err := newClient(&c.optsGeneral, &c.optsTLS, log)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	runID := widget.NewElement(widget.IDRunID, false)
	runID.SetText(c.RunID)

	display := term.NewDisplay(os.Stdout)
	status := &untilFinal{next: display.Status(), enabled: c.UntilFinal, cancel: cancel}

	p := widget.NewPoller(svc, runID, status, display.Outputs(), &widget.Options{
		Interval:  c.Interval,
		DropStale: c.DropStale,
		Logger:    log,
	})

	log.Info("watching run", "run_id", c.RunID, "addr", c.Addr, "interval", c.Interval)
	p.Run(ctx)

	final := status.Final()
	if structs.IsFailedStatus(final) {
		return fmt.Errorf("run %s finished %s", c.RunID, final)
	}
	return nil
}

// untilFinal passes statuses on & stops the watch once a final one is seen.
type untilFinal struct {
	next    widget.TextSink
	enabled bool
	cancel  context.CancelFunc

	lock  sync.Mutex
	final structs.Status
}

func (u *untilFinal) SetText(in string) {
	u.next.SetText(in)

	st := structs.ToStatus(in)
	if !u.enabled || !structs.IsFinalStatus(st) {
		return
	}
	u.lock.Lock()
	u.final = st
	u.lock.Unlock()
	u.cancel()
}

// Final returns the final status that ended the watch, if any.
func (u *untilFinal) Final() structs.Status {
	u.lock.Lock()
	defer u.lock.Unlock()
	return u.final
}
