// Package channel keeps a push connection to the ingestion pipeline alive
// and turns its frames into domain events.
//
// All handlers of a Channel (open, frame, close, timer) run one at a time.
// Every asynchronous callback carries the generation of the connection
// attempt it belongs to and is dropped once a newer attempt or an explicit
// Close has happened.
package channel

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
	"github.com/thedemodev/superdesk-publisher/internal/logger"
	"github.com/thedemodev/superdesk-publisher/internal/metrics"
	"github.com/thedemodev/superdesk-publisher/internal/realtime"
)

// ReconnectDelay is the fixed wait between a close and the next attempt.
const ReconnectDelay = 5 * time.Second

// State is the connection state of a Channel.
type State int

const (
	StateClosed State = iota
	StateConnecting
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// Option configures a Channel.
type Option func(*Channel)

// WithDialer replaces the websocket dialer.
func WithDialer(d Dialer) Option {
	return func(c *Channel) { c.dialer = d }
}

// WithScheduler replaces the timer source.
func WithScheduler(s Scheduler) Option {
	return func(c *Channel) { c.scheduler = s }
}

// WithReconnectDelay overrides ReconnectDelay.
func WithReconnectDelay(d time.Duration) Option {
	return func(c *Channel) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithWriteTimeout overrides DefaultWriteTimeout.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *Channel) {
		if d > 0 {
			c.writeTimeout = d
		}
	}
}

// WithLogger sets the channel logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Channel) { c.log = l }
}

// Channel is a self-healing push connection subscribed to package_created.
type Channel struct {
	url          string
	dialer       Dialer
	scheduler    Scheduler
	delay        time.Duration
	writeTimeout time.Duration
	log          *slog.Logger
	subs         *realtime.Broadcaster[domain.PackageCreated]

	mu         sync.Mutex
	state      State
	closed     bool
	gen        uint64
	conn       Conn
	subscribed bool
	cancelDial context.CancelFunc
	timer      Timer
	timerSeq   uint64
}

// New creates a closed channel for url.
func New(url string, opts ...Option) *Channel {
	c := &Channel{
		url:          url,
		scheduler:    timeScheduler{},
		delay:        ReconnectDelay,
		writeTimeout: DefaultWriteTimeout,
		log:          logger.WithComponent("channel"),
		subs:         realtime.NewBroadcaster[domain.PackageCreated](realtime.DefaultBuffer),
		closed:       true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.dialer == nil {
		c.dialer = NewWebsocketDialer(DefaultHandshakeTimeout)
	}
	return c
}

// Subscribe returns a stream of package events and a function that ends it.
// Slow subscribers miss events.
func (c *Channel) Subscribe() (<-chan domain.PackageCreated, func()) {
	ch := c.subs.Subscribe()
	return ch, func() { c.subs.Unsubscribe(ch) }
}

// State returns the current state.
func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Open starts connecting. It never blocks on the network; an already open
// channel is left as is.
func (c *Channel) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateOpen {
		return
	}
	c.closed = false
	c.connectLocked()
}

// Close tears the connection down and cancels any pending reconnect.
// Callbacks of the torn-down transport that arrive later are ignored.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.gen++
	c.stopTimerLocked()
	c.releaseLocked()
	c.setStateLocked(StateClosed)
	c.log.Info("channel closed")
}

func (c *Channel) connectLocked() {
	c.releaseLocked()
	c.gen++
	gen := c.gen
	c.setStateLocked(StateConnecting)

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelDial = cancel
	go c.dial(ctx, gen)
}

func (c *Channel) dial(ctx context.Context, gen uint64) {
	conn, err := c.dialer.Dial(ctx, c.url)
	if err != nil {
		metrics.ChannelDialsTotal.WithLabelValues("error").Inc()
		c.handleClose(gen, err)
		return
	}
	metrics.ChannelDialsTotal.WithLabelValues("success").Inc()
	if !c.handleOpen(gen, conn) {
		_ = conn.Close()
		return
	}
	c.readLoop(gen, conn)
}

func (c *Channel) readLoop(gen uint64, conn Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.handleClose(gen, err)
			return
		}
		c.handleFrame(gen, conn, data)
	}
}

// handleOpen adopts conn if it belongs to the current attempt.
// The live connection wins over a pending reconnect timer.
func (c *Channel) handleOpen(gen uint64, conn Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stale(gen) {
		return false
	}
	c.conn = conn
	c.subscribed = false
	c.stopTimerLocked()
	c.setStateLocked(StateOpen)
	c.log.Info("channel open", slog.Uint64("generation", gen))
	return true
}

func (c *Channel) handleFrame(gen uint64, conn Conn, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stale(gen) || c.conn != conn {
		return
	}

	f, err := decodeFrame(data)
	if err != nil {
		c.log.Debug("ignoring malformed frame", slog.String("error", err.Error()))
		return
	}
	metrics.ObserveFrame(frameLabel(f.Type))

	switch f.Type {
	case FrameHello:
		if c.subscribed {
			return
		}
		// The write runs under c.mu; a peer that stops reading must not stall Close.
		if err := conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			c.log.Warn("set write deadline failed", slog.String("error", err.Error()))
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, subscribeFrame); err != nil {
			// The read side will observe the broken transport and reconnect.
			c.log.Warn("subscribe failed", slog.String("error", err.Error()))
			return
		}
		c.subscribed = true
		c.log.Debug("subscribed", slog.String("topic", domain.TopicPackageCreated))
	case FrameEvent:
		event, ok := f.packageEvent()
		if !ok {
			return
		}
		dropped := c.subs.Publish(event)
		metrics.ObserveEvent(domain.TopicPackageCreated, dropped)
	}
}

// handleClose treats errors and closes alike: it schedules exactly one
// reconnect attempt, replacing any timer already pending.
func (c *Channel) handleClose(gen uint64, cause error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stale(gen) {
		return
	}
	c.releaseLocked()
	c.setStateLocked(StateConnecting)
	c.stopTimerLocked()

	c.timerSeq++
	seq := c.timerSeq
	c.timer = c.scheduler.AfterFunc(c.delay, func() { c.reconnect(seq) })
	metrics.ChannelReconnectsScheduled.Inc()

	attrs := []any{slog.Duration("delay", c.delay)}
	if cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	c.log.Warn("channel lost, reconnect scheduled", attrs...)
}

func (c *Channel) reconnect(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.timer == nil || seq != c.timerSeq {
		return
	}
	c.timer = nil
	c.connectLocked()
}

func (c *Channel) stale(gen uint64) bool {
	return c.closed || gen != c.gen
}

func (c *Channel) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Channel) releaseLocked() {
	if c.cancelDial != nil {
		c.cancelDial()
		c.cancelDial = nil
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.subscribed = false
}

func (c *Channel) setStateLocked(s State) {
	c.state = s
	metrics.ChannelState.Set(float64(s))
}
