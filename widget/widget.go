package widget

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/z-marketing/sb1-fn7ghc/metrics"
	"github.com/z-marketing/sb1-fn7ghc/scheduler"
)

//go:generate mockgen -package=mock_widget -source=widget.go -destination=mocks/fetcher.go

// Fetcher loads the quote for one coin
type Fetcher interface {
	FetchCryptoData(ctx context.Context, coinID string) (CryptoData, error)
}

// Options configures a widget. Zero values take the package defaults.
type Options struct {
	CoinID          string
	Theme           Theme
	AccentColor     string
	BackgroundColor string
	Padding         int
	Responsive      bool
	Interval        time.Duration
}

func (o *Options) applyDefaults() {
	if o.Theme == "" {
		o.Theme = ThemeLight
	}
	if o.AccentColor == "" {
		o.AccentColor = DefaultAccentColor
	}
	if o.BackgroundColor == "" {
		o.BackgroundColor = DefaultBackgroundColor
	}
	if o.Padding <= 0 {
		o.Padding = DefaultPadding
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
}

type State int

const (
	StateLoading State = iota
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// View is a snapshot of what the widget displays
type View struct {
	CoinID     string
	State      State
	Data       *CryptoData
	Error      string
	Styles     ThemeStyles
	Padding    int
	Responsive bool
	UpdatedAt  time.Time
}

// Widget polls the proxy for one coin and keeps the latest view
type Widget struct {
	opts      Options
	fetcher   Fetcher
	scheduler *scheduler.Scheduler

	mu       sync.RWMutex
	view     View
	onUpdate func(View)
}

func New(fetcher Fetcher, opts Options) *Widget {
	opts.applyDefaults()

	w := &Widget{
		opts:    opts,
		fetcher: fetcher,
		view: View{
			CoinID:     opts.CoinID,
			State:      StateLoading,
			Styles:     opts.Styles(),
			Padding:    opts.Padding,
			Responsive: opts.Responsive,
		},
	}
	w.scheduler = scheduler.New("widget-"+opts.CoinID, opts.Interval, w.Refresh)
	return w
}

// OnUpdate registers fn to receive every new view. Call before Start.
func (w *Widget) OnUpdate(fn func(View)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onUpdate = fn
}

// Start fetches immediately and then once per interval
func (w *Widget) Start(ctx context.Context) {
	log.Printf("Widget: Polling %s every %s", w.opts.CoinID, w.opts.Interval)
	w.scheduler.Start(ctx, true)
}

// Stop ends polling. No view update happens after Stop returns.
func (w *Widget) Stop() {
	w.scheduler.Stop()
}

// View returns the current snapshot
func (w *Widget) View() View {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.view
}

// Refresh performs one poll and publishes the resulting view
func (w *Widget) Refresh(ctx context.Context) error {
	data, err := w.fetcher.FetchCryptoData(ctx, w.opts.CoinID)

	// results arriving after cancellation are dropped
	if ctx.Err() != nil {
		return ctx.Err()
	}

	metrics.RecordWidgetPoll(w.opts.CoinID, err)

	w.mu.Lock()
	next := w.view
	next.UpdatedAt = time.Now()
	if err != nil {
		next.State = StateError
		next.Error = errorMessage(err)
	} else {
		next.State = StateReady
		next.Error = ""
		next.Data = &data
	}
	w.view = next
	onUpdate := w.onUpdate
	w.mu.Unlock()

	if onUpdate != nil {
		onUpdate(next)
	}
	return err
}

func errorMessage(err error) string {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return messageOr(fetchErr.Message)
	}
	return messageOr(err.Error())
}
