// Package session drives one game on a single goroutine. It owns the engine
// state, turns timer expiries and player intents into engine events, and
// carries out the effects the engine asks for: timers, sounds, profile
// updates, score submission and difficulty advice.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/nagapatha/internal/advisor"
	"github.com/vovakirdan/nagapatha/internal/config"
	"github.com/vovakirdan/nagapatha/internal/core"
	"github.com/vovakirdan/nagapatha/internal/engine"
	"github.com/vovakirdan/nagapatha/internal/profile"
	"github.com/vovakirdan/nagapatha/internal/storage"
)

// DefaultAdvisorTimeout bounds a single advisor call.
const DefaultAdvisorTimeout = 3 * time.Second

const intentBuffer = 64

// ErrStopped is returned by Run when called on a controller that already ran.
var ErrStopped = errors.New("session: controller already stopped")

// ScoreStore persists finished games. *storage.Store implements it.
type ScoreStore interface {
	SaveScore(ctx context.Context, playerName string, score int) (int64, error)
	SaveSession(ctx context.Context, rec storage.SessionRecord) (int64, error)
}

// SoundPlayer plays sound cues. *audio.Player implements it.
type SoundPlayer interface {
	Play(cue engine.Cue)
}

// Config wires a Controller to its collaborators. Only Rules is required.
type Config struct {
	Rules          engine.Rules
	Seed           uint64
	Player         string // empty for a guest; guests never submit scores
	Tiers          *config.TierTable
	Tracker        *profile.Tracker
	Clock          Clock
	Store          ScoreStore
	Sounds         SoundPlayer
	Advisor        advisor.Advisor
	AdvisorTimeout time.Duration
	Logger         *log.Logger
}

// Controller runs a game. Intents may be sent from any goroutine; the game
// state itself is only touched by Run.
type Controller struct {
	cfg     Config
	logger  *log.Logger
	tracker *profile.Tracker
	tiers   *config.TierTable
	clock   Clock

	intents chan core.Action
	updates chan View
	results chan func()
	done    chan struct{}
	ran     bool
	runMu   sync.Mutex

	// Owned by the Run goroutine.
	state       engine.State
	gameID      string
	submitted   string
	sessionTier config.Tier
	tickTimer   Timer
	powerTimer  Timer
	powerGen    uint64
	advice      *advisor.Response
	notices     []Notice
	seq         uint64
	tasks       *errgroup.Group
	tasksCtx    context.Context

	viewMu sync.Mutex
	last   View
}

// New creates a controller in the Idle phase.
func New(cfg Config) (*Controller, error) {
	state, err := engine.New(cfg.Rules, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	cfg.Player = strings.TrimSpace(cfg.Player)
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Tiers == nil {
		cfg.Tiers = config.DefaultTierTable()
	}
	if cfg.Tracker == nil {
		cfg.Tracker = profile.NewTracker(profile.New(cfg.Player), 0)
	}
	if cfg.Clock == nil {
		cfg.Clock = RealClock{}
	}
	if cfg.AdvisorTimeout <= 0 {
		cfg.AdvisorTimeout = DefaultAdvisorTimeout
	}

	c := &Controller{
		cfg:     cfg,
		logger:  cfg.Logger,
		tracker: cfg.Tracker,
		tiers:   cfg.Tiers,
		clock:   cfg.Clock,
		intents: make(chan core.Action, intentBuffer),
		updates: make(chan View, 1),
		results: make(chan func(), intentBuffer),
		done:    make(chan struct{}),
		state:   state,
		gameID:  uuid.NewString(),
	}
	c.last = c.buildView()
	return c, nil
}

// Send queues a player intent. It never blocks: intents sent while the
// buffer is full or after Run returned are dropped.
func (c *Controller) Send(a core.Action) {
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.intents <- a:
	default:
		c.logger.Debug("intent dropped", "action", a)
	}
}

// Updates delivers views as the game changes. Only the newest view is
// buffered. The channel is closed when Run returns.
func (c *Controller) Updates() <-chan View {
	return c.updates
}

// View returns the most recently published view.
func (c *Controller) View() View {
	c.viewMu.Lock()
	defer c.viewMu.Unlock()
	return c.last.clone()
}

// Tracker returns the profile tracker the controller reports to.
func (c *Controller) Tracker() *profile.Tracker {
	return c.tracker
}

// Run drives the game until ctx is canceled. Async tasks are canceled with
// ctx and waited for before Run returns.
func (c *Controller) Run(ctx context.Context) error {
	c.runMu.Lock()
	if c.ran {
		c.runMu.Unlock()
		return ErrStopped
	}
	c.ran = true
	c.runMu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	c.tasks, c.tasksCtx = g, gctx

	defer func() {
		close(c.done)
		c.stopTimer(&c.tickTimer)
		c.stopTimer(&c.powerTimer)
		if err := g.Wait(); err != nil {
			c.logger.Error("background task failed", "error", err)
		}
		close(c.updates)
	}()

	c.publish()

	for {
		select {
		case <-ctx.Done():
			return nil

		case a := <-c.intents:
			c.handleIntent(a)

		case at := <-timerC(c.tickTimer):
			c.tickTimer = nil
			c.apply(engine.Tick{At: at})

		case <-timerC(c.powerTimer):
			c.powerTimer = nil
			c.apply(engine.DeactivatePowerUp{Generation: c.powerGen})

		case fn := <-c.results:
			fn()
			c.publish()
		}
	}
}

func timerC(t Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C()
}

func (c *Controller) stopTimer(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

func (c *Controller) handleIntent(a core.Action) {
	if dir, ok := a.Direction(); ok {
		c.apply(engine.ChangeDirection{Dir: dir})
		return
	}

	now := c.clock.Now()
	switch a {
	case core.ActionStart:
		switch c.state.Phase() {
		case engine.PhaseIdle:
			c.apply(engine.Start{At: now})
		case engine.PhasePaused:
			c.apply(engine.Resume{})
		case engine.PhaseOver:
			c.apply(engine.Reset{})
			c.apply(engine.Start{At: now})
		}
	case core.ActionPause:
		switch c.state.Phase() {
		case engine.PhaseRunning:
			c.apply(engine.Pause{})
		case engine.PhasePaused:
			c.apply(engine.Resume{})
		}
	case core.ActionRestart:
		c.apply(engine.Reset{})
	case core.ActionBack:
		// Leaving mid-game still records the session.
		if c.state.Paused() {
			c.apply(engine.Resume{})
		}
		if c.state.Running() {
			c.apply(engine.End{At: now, Reason: engine.EndManual})
		}
	case core.ActionAccept:
		c.acceptAdvice()
	case core.ActionDecline:
		c.declineAdvice()
	}
}

// apply feeds one event to the engine, performs its effects, then publishes.
func (c *Controller) apply(ev engine.Event) {
	next, effects := engine.Apply(c.state, ev)
	c.state = next
	for _, eff := range effects {
		c.perform(eff)
	}
	c.publish()
}

func (c *Controller) perform(eff engine.Effect) {
	switch e := eff.(type) {
	case engine.ScheduleTick:
		c.stopTimer(&c.tickTimer)
		c.tickTimer = c.clock.NewTimer(c.tiers.Interval(c.tracker.Tier()))

	case engine.CancelTick:
		c.stopTimer(&c.tickTimer)

	case engine.StartPowerUpTimer:
		c.stopTimer(&c.powerTimer)
		c.powerGen = e.Generation
		c.powerTimer = c.clock.NewTimer(e.Duration)

	case engine.CancelPowerUpTimer:
		c.stopTimer(&c.powerTimer)

	case engine.PlaySound:
		if c.cfg.Sounds != nil {
			c.cfg.Sounds.Play(e.Cue)
		}

	case engine.GameStarted:
		c.gameID = uuid.NewString()
		c.sessionTier = c.tracker.Tier()
		c.advice = nil
		c.notices = nil
		c.tracker.GameStarted()
		c.logger.Info("game started", "game", c.gameID, "player", c.cfg.Player, "tier", c.sessionTier)

	case engine.SessionEnded:
		c.tracker.SessionEnded(e.Elapsed, e.Score)
		c.logger.Info("game over", "game", c.gameID, "score", e.Score, "reason", e.Reason, "elapsed", e.Elapsed.Round(time.Millisecond))
		c.recordSession(e)
		c.requestAdvice()

	case engine.SubmitScore:
		c.submitScore(e.Score)

	case engine.HighScoreCandidate:
		c.tracker.OfferHighScore(e.Score)

	case engine.Restarted:
		c.gameID = uuid.NewString()
	}
}

// spawn runs task in the background. The function it returns is executed on
// the Run goroutine.
func (c *Controller) spawn(task func(ctx context.Context) func()) {
	if c.tasks == nil {
		return
	}
	ctx := c.tasksCtx
	c.tasks.Go(func() error {
		apply := task(ctx)
		if apply == nil {
			return nil
		}
		select {
		case c.results <- apply:
		case <-ctx.Done():
		}
		return nil
	})
}

func (c *Controller) addNotice(n Notice) {
	c.notices = append(c.notices, n)
	if n.Failed() {
		c.logger.Warn(n.Message, "kind", n.Kind, "error", n.Err)
	} else {
		c.logger.Debug(n.Message, "kind", n.Kind)
	}
}

func (c *Controller) submitScore(score int) {
	if c.submitted == c.gameID {
		return
	}
	c.submitted = c.gameID

	if c.cfg.Player == "" {
		c.addNotice(Notice{Kind: NoticeScoreSkipped, Message: "sign in with --name to save scores"})
		return
	}
	if c.cfg.Store == nil {
		return
	}

	name, gameID, store := c.cfg.Player, c.gameID, c.cfg.Store
	c.spawn(func(ctx context.Context) func() {
		_, err := store.SaveScore(ctx, name, score)
		return func() {
			if err != nil {
				c.addNotice(Notice{Kind: NoticeScoreFailed, Message: "could not save score", Err: err})
				return
			}
			if gameID == c.gameID {
				c.addNotice(Notice{Kind: NoticeScoreSaved, Message: fmt.Sprintf("saved %d for %s", score, name)})
			}
		}
	})
}

func (c *Controller) recordSession(e engine.SessionEnded) {
	if c.cfg.Store == nil || c.cfg.Player == "" {
		return
	}
	rec := storage.SessionRecord{
		GameID:     c.gameID,
		PlayerName: c.cfg.Player,
		Score:      e.Score,
		Tier:       int(c.sessionTier),
		Duration:   e.Elapsed,
		EndReason:  string(e.Reason),
	}
	store := c.cfg.Store
	c.spawn(func(ctx context.Context) func() {
		if _, err := store.SaveSession(ctx, rec); err != nil {
			return func() {
				c.addNotice(Notice{Kind: NoticeSessionFailed, Message: "could not record session", Err: err})
			}
		}
		return nil
	})
}

func (c *Controller) requestAdvice() {
	if c.cfg.Advisor == nil {
		return
	}
	req := c.tracker.AdvisorRequest()
	gameID, adv, timeout := c.gameID, c.cfg.Advisor, c.cfg.AdvisorTimeout
	c.spawn(func(ctx context.Context) func() {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		resp, err := advisor.Ask(ctx, adv, req)
		return func() {
			// A newer game makes the answer irrelevant.
			if gameID != c.gameID || c.state.Running() || c.state.Paused() {
				return
			}
			if err != nil {
				c.addNotice(Notice{Kind: NoticeAdviceFailed, Message: "difficulty advice unavailable", Err: err})
				return
			}
			c.advice = &resp
		}
	})
}

func (c *Controller) acceptAdvice() {
	if c.advice == nil || c.state.Running() || c.state.Paused() {
		return
	}
	tier := c.advice.RecommendedTier
	c.advice = nil
	c.tracker.SetTier(tier)
	c.logger.Info("difficulty changed", "tier", tier)
	c.publish()
}

func (c *Controller) declineAdvice() {
	if c.advice == nil {
		return
	}
	c.advice = nil
	c.publish()
}

func (c *Controller) buildView() View {
	p := c.tracker.Profile()
	v := View{
		Snapshot:  c.state.Snapshot(),
		Seq:       c.seq,
		GameID:    c.gameID,
		Player:    c.cfg.Player,
		Tier:      p.Tier,
		TierName:  c.tiers.Name(p.Tier),
		HighScore: p.HighScore,
		Advice:    c.advice,
		Notices:   c.notices,
	}
	return v.clone()
}

// publish replaces any unread view with the current one.
func (c *Controller) publish() {
	c.seq++
	v := c.buildView()

	c.viewMu.Lock()
	c.last = v
	c.viewMu.Unlock()

	select {
	case c.updates <- v:
		return
	default:
	}
	select {
	case <-c.updates:
	default:
	}
	select {
	case c.updates <- v.clone():
	default:
	}
}
