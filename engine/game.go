package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/saucer/audio"
	"github.com/lixenwraith/saucer/config"
	"github.com/lixenwraith/saucer/input"
	"github.com/lixenwraith/saucer/render"
	"github.com/lixenwraith/saucer/status"
)

// Options carries the optional collaborators of a Game
type Options struct {
	// Sound plays effects; nil is silent
	Sound audio.Player

	// Logger receives lifecycle events; nil uses the standard logger's writer
	Logger *log.Logger

	// Metrics collects counters; nil allocates a private registry
	Metrics *status.Registry
}

// EndReport is the outcome of one game
type EndReport struct {
	Reason     EndReason
	Score      int
	Ammo       int
	Escaped    int
	MaxEscaped int
}

// Screen returns the end screen content for the report
func (r EndReport) Screen() render.EndScreen {
	return render.EndScreen{
		Headline: r.Reason.Headline(),
		Escaped:  r.Escaped,
		Ammo:     r.Ammo,
		Score:    r.Score,
	}
}

// Game wires the components of one session and owns every task it starts
type Game struct {
	cfg     config.Config
	stage   *Stage
	table   *Table
	score   *Scoreboard
	end     *EndSignal
	tasks   *Tasks
	sound   audio.Player
	metrics *status.Registry
	log     *log.Logger

	reclaim *Reclaimer
	ctx     context.Context
	cancel  context.CancelFunc

	mu  sync.Mutex
	err error

	// Cached counters
	spawned *atomic.Int64
	killed  *atomic.Int64
	escaped *atomic.Int64
	reused  *atomic.Int64
	fired   *atomic.Int64
	hits    *atomic.Int64
	misses  *atomic.Int64

	started atomic.Bool
}

// NewGame validates cfg against the surface and allocates the shared state
func NewGame(cfg config.Config, surface render.Surface, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := surface.Size()
	if err := cfg.ValidateGeometry(w, h); err != nil {
		return nil, err
	}
	stage, err := NewStage(surface)
	if err != nil {
		return nil, fmt.Errorf("collision grid: %w", err)
	}

	if opts.Sound == nil {
		opts.Sound = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(log.Writer(), "game: ", log.Flags())
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}

	g := &Game{
		cfg:     cfg,
		stage:   stage,
		table:   NewTable(cfg.MaxSaucers, cfg.MaxShots, cfg.Rows, cfg.MaxDelay, cfg.Seed),
		score:   NewScoreboard(cfg.StartingAmmo, cfg.MaxEscaped),
		end:     NewEndSignal(),
		tasks:   NewTasks(cfg.TaskBudget()),
		sound:   opts.Sound,
		metrics: opts.Metrics,
		log:     opts.Logger,
	}
	ints := g.metrics.Ints
	g.spawned = ints.Get(status.SaucersSpawned)
	g.killed = ints.Get(status.SaucersKilled)
	g.escaped = ints.Get(status.SaucersEscaped)
	g.reused = ints.Get(status.SaucersReused)
	g.fired = ints.Get(status.ShotsFired)
	g.hits = ints.Get(status.ShotsHit)
	g.misses = ints.Get(status.ShotsMissed)
	return g, nil
}

// Metrics returns the game's metric registry
func (g *Game) Metrics() *status.Registry {
	return g.metrics
}

// Run plays one game reading intents until the end signal fires, then cancels and
// joins every task. A fatal spawn failure is returned as an error.
// Run may be called once.
func (g *Game) Run(ctx context.Context, intents <-chan input.Intent) (EndReport, error) {
	if !g.started.CompareAndSwap(false, true) {
		return EndReport{}, errors.New("game already run")
	}

	g.ctx, g.cancel = context.WithCancel(ctx)
	defer g.cancel()
	g.reclaim = NewReclaimer(g.ctx, g, log.New(g.log.Writer(), "reclaimer: ", g.log.Flags()))

	if err := g.tasks.Go(g.runReclaimer, nil); err != nil {
		g.cancel()
		return EndReport{}, fmt.Errorf("start reclaimer: %w", err)
	}
	if err := g.tasks.Go(func() { g.runSession(intents) }, nil); err != nil {
		g.cancel()
		g.tasks.Wait()
		return EndReport{}, fmt.Errorf("start controller: %w", err)
	}

	select {
	case <-g.end.Done():
		g.log.Printf("game ended: %s", g.end.Reason())
	case <-g.ctx.Done():
	}
	g.cancel()
	g.tasks.Wait()
	g.log.Printf("all tasks joined: %s", g.metrics)

	if err := g.failure(); err != nil {
		return EndReport{}, err
	}
	report := g.report()
	if report.Reason == EndNone {
		return report, ctx.Err()
	}
	return report, nil
}

func (g *Game) report() EndReport {
	t := g.score.Totals()
	return EndReport{
		Reason:     g.end.Reason(),
		Score:      t.Score,
		Ammo:       t.Ammo,
		Escaped:    t.Escaped,
		MaxEscaped: t.MaxEscaped,
	}
}

func (g *Game) runReclaimer() {
	if err := g.reclaim.Run(g.ctx); err != nil {
		g.abort(fmt.Errorf("reclaimer: %w", err))
	}
}

// halted reports whether tasks must stop touching shared state
// Called with the drawing lock held
func (g *Game) halted() bool {
	return g.ctx.Err() != nil || g.end.Fired()
}

// abort records the first fatal error and cancels every task
func (g *Game) abort(err error) {
	g.mu.Lock()
	if g.err == nil {
		g.err = err
		g.log.Printf("fatal: %v", err)
	}
	g.mu.Unlock()
	g.cancel()
}

func (g *Game) failure() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

// finish fires the end signal; caller holds the drawing lock
func (g *Game) finish(reason EndReason) {
	if g.end.Fire(reason) {
		g.log.Printf("end signal: %s", reason)
	}
}

// launchSaucer rerolls slot and starts its task
func (g *Game) launchSaucer(slot int) error {
	s := g.table.ResetSaucer(slot)
	if err := g.tasks.Go(func() { g.runSaucer(s) }, s.exit); err != nil {
		s.exit()
		return fmt.Errorf("spawn saucer %d: %w", slot, err)
	}
	g.spawned.Add(1)
	g.metrics.RecordSlotLife(slot)
	g.log.Printf("saucer %d spawned row=%d delay=%d", slot, s.Row, s.Delay)
	return nil
}

func (g *Game) joinSaucer(ctx context.Context, slot int) error {
	select {
	case <-g.table.Saucer(slot).Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Game) respawnSaucer(slot int) error {
	if err := g.launchSaucer(slot); err != nil {
		return err
	}
	g.reused.Add(1)
	return nil
}
