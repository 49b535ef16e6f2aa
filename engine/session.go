package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/saucer/audio"
	"github.com/lixenwraith/saucer/constants"
	"github.com/lixenwraith/saucer/input"
	"github.com/lixenwraith/saucer/render"
)

// session is the controller state; only the controller task touches it
type session struct {
	g        *Game
	intents  <-chan input.Intent
	site     int
	maxSite  int
	nextShot int
	used     int // saucer slots ever bound
}

// runSession is the controller task: it paints the field, spawns the opening
// saucers and then serves intents and the extra saucer timer until the game ends
func (g *Game) runSession(intents <-chan input.Intent) {
	s := newSession(g, intents)
	if !s.begin() {
		return
	}
	for range g.cfg.InitialSaucers {
		if err := s.newSaucer(); err != nil {
			g.abort(err)
			return
		}
	}

	ticker := time.NewTicker(g.cfg.ExtraSaucerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-g.ctx.Done():
			return
		case <-g.end.Done():
			return
		case <-ticker.C:
			if s.used < g.cfg.MaxSaucers && g.table.Roll(g.cfg.ExtraSaucerOdds) {
				if err := s.newSaucer(); err != nil {
					g.abort(err)
					return
				}
			}
		case intent, ok := <-s.intents:
			if !ok {
				intent = input.IntentQuit
			}
			if !s.handle(intent) {
				return
			}
		}
	}
}

func newSession(g *Game, intents <-chan input.Intent) *session {
	s := &session{
		g:       g,
		intents: intents,
		maxSite: g.stage.Width() - constants.LaunchSiteWidth - 1,
	}
	s.site = s.maxSite / 2
	return s
}

// begin paints the status line and launch site
func (s *session) begin() bool {
	c := s.g.stage.Acquire()
	defer c.Release()

	if s.g.halted() {
		return false
	}
	c.Surface().Clear()
	s.g.score.Refresh(c)
	render.DrawLaunchSite(c.Surface(), s.g.stage.LaunchRow(), s.site)
	return true
}

// newSaucer starts a saucer in the next never-used slot
func (s *session) newSaucer() error {
	slot := s.used
	s.used++
	return s.g.launchSaucer(slot)
}

// handle applies one intent; false stops the controller
func (s *session) handle(intent input.Intent) bool {
	switch intent {
	case input.IntentQuit:
		s.quit()
		return false
	case input.IntentLeft:
		s.move(-1)
	case input.IntentRight:
		s.move(1)
	case input.IntentFire:
		if err := s.fire(); err != nil {
			s.g.abort(err)
			return false
		}
	case input.IntentPause:
		return s.pause()
	case input.IntentToggleColour:
		s.g.stage.Draw(func(c *Canvas) {
			c.SetColour(!c.Colour())
		})
	}
	return true
}

func (s *session) quit() {
	s.g.stage.Draw(func(*Canvas) {
		s.g.finish(EndQuit)
	})
}

// move shifts the launch site by dx, clamped to [0, maxSite]
func (s *session) move(dx int) {
	next := min(max(s.site+dx, 0), s.maxSite)
	if next == s.site {
		return
	}
	s.g.stage.Draw(func(c *Canvas) {
		if s.g.halted() {
			return
		}
		row := s.g.stage.LaunchRow()
		c.Erase(row, s.site, constants.LaunchSiteWidth)
		s.site = next
		render.DrawLaunchSite(c.Surface(), row, s.site)
	})
}

// fire spends a rocket and launches a shot from the centre of the site
// The next shot slot's previous task is joined before the slot is rebound
func (s *session) fire() error {
	g := s.g
	if g.score.Ammo() <= 0 {
		return nil
	}

	slot := s.nextShot
	select {
	case <-g.table.Shot(slot).Done():
	case <-g.ctx.Done():
		return nil
	}

	var sh *Shot
	g.stage.Draw(func(c *Canvas) {
		if g.halted() || !g.score.Fire(c) {
			return
		}
		sh = g.table.ResetShot(slot, s.site+1, g.stage.LaunchRow())
	})
	if sh == nil {
		return nil
	}
	s.nextShot = (slot + 1) % g.table.ShotSlots()

	if err := g.tasks.Go(func() { g.runShot(sh) }, sh.exit); err != nil {
		sh.exit()
		return fmt.Errorf("spawn shot %d: %w", slot, err)
	}
	g.fired.Add(1)
	g.sound.Play(audio.EffectFire)
	return nil
}

// pauseRow is the first banner row: mid-screen, kept below the saucer rows
// when there is room and always above the launch row
func (s *session) pauseRow() int {
	return min(max(s.g.stage.Height()/2, s.g.cfg.Rows), s.g.stage.LaunchRow()-2)
}

// pause holds the drawing lock, freezing every task, until resumed or quit
func (s *session) pause() bool {
	g := s.g
	c := g.stage.Acquire()
	if g.halted() {
		c.Release()
		return false
	}
	row := s.pauseRow()
	render.DrawPause(c.Surface(), row, true)
	c.Surface().Flush()
	g.log.Printf("paused")

	for {
		select {
		case <-g.ctx.Done():
			c.Release()
			return false
		case intent, ok := <-s.intents:
			if !ok || intent == input.IntentQuit {
				g.finish(EndQuit)
				c.Release()
				return false
			}
			if intent != input.IntentPause {
				continue
			}
			render.DrawPause(c.Surface(), row, false)
			render.DrawLaunchSite(c.Surface(), g.stage.LaunchRow(), s.site)
			c.Release()
			g.log.Printf("resumed")
			return true
		}
	}
}
