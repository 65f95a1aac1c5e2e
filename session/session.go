package session

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
)

// Sounder plays game feedback; audio.SoundManager satisfies it
type Sounder interface {
	PlayEat()
	PlayGrow()
	ToggleMute() bool
	Muted() bool
}

// Session drives a game at a fixed tick rate and routes terminal input to it
// Run must be called at most once
type Session struct {
	screen   tcell.Screen
	game     *engine.Game
	renderer render.Renderer
	keys     *input.KeyTable
	sound    Sounder
	registry *status.Registry
	tick     time.Duration

	events chan tcell.Event
	done   chan struct{}
}

// Option customizes a Session
type Option func(*Session)

// WithSound attaches an audio sink
func WithSound(s Sounder) Option {
	return func(sess *Session) { sess.sound = s }
}

// WithRegistry publishes counters into r instead of a private registry
func WithRegistry(r *status.Registry) Option {
	return func(sess *Session) { sess.registry = r }
}

// New creates a session; tick is the simulation interval
func New(screen tcell.Screen, game *engine.Game, renderer render.Renderer, keys *input.KeyTable, tick time.Duration, opts ...Option) *Session {
	s := &Session{
		screen:   screen,
		game:     game,
		renderer: renderer,
		keys:     keys,
		sound:    silent{},
		registry: status.NewRegistry(),
		tick:     tick,
		events:   make(chan tcell.Event, parameter.InputQueueSize),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registry.Ints.Get(status.KeyFoodMax).Store(int64(game.Config().MaxFood))
	return s
}

// Registry returns the counters shown in the status line
func (s *Session) Registry() *status.Registry { return s.registry }

// Run blocks until the player quits, the screen closes, or a tick fails
// A tick failure is returned wrapped; quitting returns nil
func (s *Session) Run() error {
	defer close(s.done)

	s.publish()
	s.draw()

	core.Go(s.poll)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				log.Printf("session: screen closed")
				return nil
			}
			if quit := s.handle(s.keys.Translate(ev)); quit {
				log.Printf("session: quit after %d ticks, length %d", s.game.Ticks(), s.game.Snake().Len())
				return nil
			}

		case <-ticker.C:
			if err := s.step(); err != nil {
				return err
			}
		}
	}
}

// poll forwards screen events until the screen is finalized or Run exits
func (s *Session) poll() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// handle applies one intent and reports whether the session should end
func (s *Session) handle(in input.Intent) bool {
	switch in.Type {
	case input.IntentTurn:
		s.game.Turn(in.Dir)
	case input.IntentQuit:
		return true
	case input.IntentMute:
		muted := s.sound.ToggleMute()
		log.Printf("session: muted=%v", muted)
		s.publish()
		s.draw()
	case input.IntentResize:
		s.screen.Sync()
		s.draw()
	}
	return false
}

// step advances the simulation one tick and redraws
func (s *Session) step() error {
	res, err := s.game.Tick()
	if err != nil {
		log.Printf("session: tick %d failed: %v", s.game.Ticks()+1, err)
		return fmt.Errorf("tick %d: %w", s.game.Ticks()+1, err)
	}

	if res.TurnRejected {
		log.Printf("session: tick %d reversal rejected", res.Tick)
	}
	if res.Ate {
		s.sound.PlayEat()
	}
	if res.Grew {
		s.sound.PlayGrow()
		log.Printf("session: tick %d grew to %d", res.Tick, res.Length)
	}

	s.publish()
	s.draw()
	return nil
}

// publish copies the game counters into the registry
func (s *Session) publish() {
	r := s.registry
	r.Ints.Get(status.KeyLength).Store(int64(s.game.Snake().Len()))
	r.Ints.Get(status.KeyFood).Store(int64(s.game.Board().CountFood()))
	r.Ints.Get(status.KeyEaten).Store(int64(s.game.Eaten()))
	r.Ints.Get(status.KeyTick).Store(int64(s.game.Ticks()))
	r.Strings.Get(status.KeyFacing).Store(s.game.Snake().Facing().String())
	r.Bools.Get(status.KeyMuted).Store(s.sound.Muted())
}

func (s *Session) draw() {
	s.renderer.Render(s.game.Board(), s.registry.StatusLine())
}

// silent is the Sounder used when audio is unavailable
type silent struct{}

func (silent) PlayEat()  {}
func (silent) PlayGrow() {}

func (silent) ToggleMute() bool { return false }
func (silent) Muted() bool      { return false }
