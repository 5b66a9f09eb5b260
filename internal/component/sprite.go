package component

import (
	"time"

	"github.com/elysion/engine/internal/colour"
	"github.com/elysion/engine/internal/core/ecs"
)

// Sprite is the renderable face of an entity: a glyph plus a tint that fades
// from one colour to another over the fade duration. The draw hook only
// records that it ran; the engine core does no rendering.
type Sprite struct {
	ecs.BaseComponent
	Glyph    rune
	From, To colour.Colour
	Fade     time.Duration

	elapsed time.Duration
	draws   int
}

func NewSprite(glyph rune, from, to colour.Colour, fade time.Duration) *Sprite {
	return &Sprite{Glyph: glyph, From: from, To: to, Fade: fade}
}

func (s *Sprite) Update(dt time.Duration) {
	s.elapsed += dt
	if s.elapsed > s.Fade {
		s.elapsed = s.Fade
	}
}

func (s *Sprite) Draw() {
	s.draws++
}

// Tint returns the current interpolated colour.
func (s *Sprite) Tint() colour.Colour {
	if s.Fade <= 0 {
		return s.To
	}
	return colour.Lerp(s.From, s.To, float64(s.elapsed)/float64(s.Fade))
}

// Draws returns how many times the draw hook has run.
func (s *Sprite) Draws() int {
	return s.draws
}
