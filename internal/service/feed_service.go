package service

import (
	"context"
	"sync"
	"time"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
	"github.com/thedemodev/superdesk-publisher/internal/logger"
	"github.com/thedemodev/superdesk-publisher/internal/metrics"
	"github.com/thedemodev/superdesk-publisher/internal/realtime"
)

// FeedService turns push channel events and completed submissions into
// refresh signals for browsers.
type FeedService struct {
	source PackageSource
	hub    *realtime.Broadcaster[domain.RefreshSignal]
	now    func() time.Time
}

// NewFeedService creates a FeedService. A nil source only relays Notify calls.
func NewFeedService(source PackageSource, buffer int) *FeedService {
	return &FeedService{
		source: source,
		hub:    realtime.NewBroadcaster[domain.RefreshSignal](buffer),
		now:    time.Now,
	}
}

// Run consumes channel events until ctx is done or the source closes.
func (f *FeedService) Run(ctx context.Context) {
	if f.source == nil {
		<-ctx.Done()
		return
	}

	events, cancel := f.source.Subscribe()
	defer cancel()

	log := logger.WithComponent("feed")
	log.Info("Feed service started")
	defer log.Info("Feed service stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			log.Debug("Package created", "state", ev.State)
			f.Notify(domain.RefreshSignal{
				Reason:  domain.RefreshReasonPackageCreated,
				Package: ev.Package,
				State:   ev.State,
			})
		}
	}
}

// Notify sends a refresh signal to every browser subscriber.
func (f *FeedService) Notify(signal domain.RefreshSignal) {
	if signal.ReceivedAt.IsZero() {
		signal.ReceivedAt = f.now()
	}
	dropped := f.hub.Publish(signal)
	metrics.ObserveRefresh(signal.Reason, dropped)
	if dropped > 0 {
		logger.Warn("Refresh signal dropped for lagging subscribers", "reason", signal.Reason, "dropped", dropped)
	}
}

// Subscribe registers a browser and returns its signal channel and an
// unsubscribe function.
func (f *FeedService) Subscribe() (<-chan domain.RefreshSignal, func()) {
	ch := f.hub.Subscribe()
	metrics.FeedSubscribers.Inc()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.hub.Unsubscribe(ch)
			metrics.FeedSubscribers.Dec()
		})
	}
}

// Close ends every browser subscription.
func (f *FeedService) Close() {
	f.hub.Close()
}

// Subscribers returns the number of browser subscribers.
func (f *FeedService) Subscribers() int {
	return f.hub.Len()
}
