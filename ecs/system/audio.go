package system

import (
	"log"

	"github.com/milk9111/arrowlanes/ecs"
)

// Sound is the part of an audio player the hit sound needs.
type Sound interface {
	Rewind() error
	Play()
}

// HitSoundSystem plays one sound per tick in which any lane was hit.
type HitSoundSystem struct {
	sound Sound
}

func NewHitSoundSystem(sound Sound) *HitSoundSystem {
	return &HitSoundSystem{sound: sound}
}

func (s *HitSoundSystem) Update(w *ecs.World) {
	if s == nil || s.sound == nil {
		return
	}

	hits := 0
	w.Events().Each(func(evt ecs.Event) {
		if evt.Type == ecs.EventLaneHit {
			hits++
		}
	})
	if hits == 0 {
		return
	}

	if err := s.sound.Rewind(); err != nil {
		log.Printf("audio: rewind hit sound: %v", err)
		return
	}
	s.sound.Play()
}
