package widget

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voidshard/playground/internal/mocks/pkg/api_mock"
	"github.com/voidshard/playground/pkg/structs"
)

func newTestPoller(t *testing.T, opts *Options) (*api_mock.MockAPI, *Page, *Poller) {
	svc := api_mock.NewMockAPI(gomock.NewController(t))
	page := NewPage("http://localhost:8080", false)
	return svc, page, NewPoller(svc, page.RunID, page.Status, page.Output, opts)
}

func TestPollNoRunID(t *testing.T) {
	// no EXPECT() set; any request fails the test
	_, page, p := newTestPoller(t, nil)

	err := p.Poll(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, 0, page.Status.Writes())
	assert.Equal(t, 0, page.Output.Writes())
}

func TestPollDisplaysStatus(t *testing.T) {
	svc, page, p := newTestPoller(t, nil)
	page.RunID.SetText("run-abc")

	svc.EXPECT().Run(gomock.Any(), "run-abc").Times(1).Return(&structs.RunStatus{
		Status:  "done",
		Outputs: []string{"a", "b"},
	}, nil)

	err := p.Poll(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, "done", page.Status.Text())
	assert.Equal(t, "<ul><li>a</li><li>b</li></ul>", page.Output.HTML())
}

func TestPollNoOutputs(t *testing.T) {
	svc, page, p := newTestPoller(t, nil)
	page.RunID.SetText("run-abc")

	svc.EXPECT().Run(gomock.Any(), "run-abc").Return(&structs.RunStatus{Status: structs.PLANNING}, nil)

	err := p.Poll(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, "planning", page.Status.Text())
	assert.Equal(t, "<ul></ul>", page.Output.HTML())
}

func TestPollNotReady(t *testing.T) {
	cases := []struct {
		Name  string
		Given *structs.RunStatus
	}{
		{"EmptyStatus", &structs.RunStatus{Status: "", Outputs: []string{"x"}}},
		{"NoStatus", &structs.RunStatus{Outputs: nil}},
		{"NilResult", nil},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			svc, page, p := newTestPoller(t, nil)
			page.RunID.SetText("run-abc")
			page.Status.SetText("planning")
			page.Output.SetList([]string{"old"})

			svc.EXPECT().Run(gomock.Any(), "run-abc").Return(c.Given, nil)

			err := p.Poll(context.Background())

			assert.Nil(t, err)
			assert.Equal(t, "planning", page.Status.Text())
			assert.Equal(t, "<ul><li>old</li></ul>", page.Output.HTML())
			assert.Equal(t, 1, page.Status.Writes())
			assert.Equal(t, 1, page.Output.Writes())
		})
	}
}

func TestPollFailure(t *testing.T) {
	svc, page, p := newTestPoller(t, nil)
	page.RunID.SetText("run-abc")
	page.Status.SetText("planning")

	svc.EXPECT().Run(gomock.Any(), "run-abc").Return(nil, context.DeadlineExceeded)

	err := p.Poll(context.Background())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "planning", page.Status.Text())
	assert.Equal(t, 0, page.Output.Writes())
}

func TestPollEscapesOutputs(t *testing.T) {
	svc, page, p := newTestPoller(t, nil)
	page.RunID.SetText("run-abc")

	svc.EXPECT().Run(gomock.Any(), "run-abc").Return(&structs.RunStatus{
		Status:  structs.APPLIED,
		Outputs: []string{"<script>alert(1)</script>", "a & b"},
	}, nil)

	err := p.Poll(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, "<ul><li>&lt;script&gt;alert(1)&lt;/script&gt;</li><li>a &amp; b</li></ul>", page.Output.HTML())
}

func TestPollRawOutputs(t *testing.T) {
	svc := api_mock.NewMockAPI(gomock.NewController(t))
	page := NewPage("http://localhost:8080", true)
	p := NewPoller(svc, page.RunID, page.Status, page.Output, nil)
	page.RunID.SetText("run-abc")

	svc.EXPECT().Run(gomock.Any(), "run-abc").Return(&structs.RunStatus{
		Status:  structs.APPLIED,
		Outputs: []string{"<b>bold</b>"},
	}, nil)

	err := p.Poll(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, "<ul><li><b>bold</b></li></ul>", page.Output.HTML())
}

// overlap issues two polls for the same run where the first one sent is the
// last to complete, and returns the displayed status.
func overlap(t *testing.T, opts *Options) string {
	svc, page, p := newTestPoller(t, opts)
	page.RunID.SetText("run-abc")

	firstSent := make(chan struct{})
	release := make(chan struct{})
	var calls int32

	svc.EXPECT().Run(gomock.Any(), "run-abc").Times(2).DoAndReturn(
		func(ctx context.Context, id string) (*structs.RunStatus, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				close(firstSent)
				<-release
				return &structs.RunStatus{Status: "first", Outputs: []string{"1"}}, nil
			}
			return &structs.RunStatus{Status: "second", Outputs: []string{"2"}}, nil
		},
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.Nil(t, p.Poll(context.Background()))
	}()

	<-firstSent
	assert.Nil(t, p.Poll(context.Background()))
	assert.Equal(t, "second", page.Status.Text())

	close(release)
	wg.Wait()

	return page.Status.Text()
}

func TestPollOverlappingLastCompletedWins(t *testing.T) {
	assert.Equal(t, "first", overlap(t, nil))
}

func TestPollOverlappingDropStale(t *testing.T) {
	assert.Equal(t, "second", overlap(t, &Options{DropStale: true}))
}

func TestRunPollsEachInterval(t *testing.T) {
	svc, page, p := newTestPoller(t, &Options{Interval: 10 * time.Millisecond})
	page.RunID.SetText("run-abc")

	var calls int32
	svc.EXPECT().Run(gomock.Any(), "run-abc").MinTimes(3).DoAndReturn(
		func(ctx context.Context, id string) (*structs.RunStatus, error) {
			n := atomic.AddInt32(&calls, 1)
			return &structs.RunStatus{Status: structs.Status(fmt.Sprintf("tick-%d", n))}, nil
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.NotEmpty(t, page.Status.Text())
}

func TestRunSkipsWithoutRunID(t *testing.T) {
	_, page, p := newTestPoller(t, &Options{Interval: 5 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	p.Run(ctx)

	assert.Equal(t, 0, page.Status.Writes())
}

func TestRunKeepsPollingAfterFailure(t *testing.T) {
	svc, page, p := newTestPoller(t, &Options{Interval: 10 * time.Millisecond})
	page.RunID.SetText("run-abc")

	var calls int32
	svc.EXPECT().Run(gomock.Any(), "run-abc").MinTimes(2).DoAndReturn(
		func(ctx context.Context, id string) (*structs.RunStatus, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return nil, fmt.Errorf("connection refused")
			}
			return &structs.RunStatus{Status: structs.APPLIED}, nil
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	assert.Eventually(t, func() bool { return page.Status.Text() == "applied" }, 5*time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
