package sim

import (
	"math"

	"github.com/vovakirdan/nightwalk/internal/config"
)

// Audio is the playback collaborator. The kernel only ever pauses and
// resumes it.
type Audio interface {
	Pause()
	Resume()
	IsPlaying() bool
}

type nopAudio struct{}

func (nopAudio) Pause()          {}
func (nopAudio) Resume()         {}
func (nopAudio) IsPlaying() bool { return false }

// CanMoveTo reports whether the avatar at avatarY may step laterally from
// column from into column to. Borders are never enterable. A bench column
// refuses entry from the side it blocks while a bench overlaps the avatar.
func CanMoveTo(cfg config.TerrainConfig, rows []Row, avatarY float64, from, to int) bool {
	if to < 1 || to > cfg.Width-2 || to == from {
		return false
	}
	t := cfg.TileSize
	band := (0.5 + cfg.Benches.Band) * t
	for _, bc := range cfg.Benches.Columns {
		if bc.Column != to {
			continue
		}
		blocked := (bc.Blocks == "left" && from < to) || (bc.Blocks == "right" && from > to)
		if !blocked {
			continue
		}
		for _, r := range rows {
			if r.At(to) == TileBench && math.Abs(r.Y+t/2-avatarY) < band {
				return false
			}
		}
	}
	return true
}

// IsBlocked reports whether a bench sits directly ahead of the avatar, close
// enough that the world must stop scrolling.
func IsBlocked(cfg config.TerrainConfig, rows []Row, avatar Avatar) bool {
	reach := cfg.Benches.Reach * cfg.TileSize
	for _, r := range rows {
		if r.At(avatar.Col) != TileBench {
			continue
		}
		if d := r.Y - avatar.Y; d > -reach && d < 0 {
			return true
		}
	}
	return false
}

// blocker tracks the blocked condition and the audio it paused.
type blocker struct {
	audio   Audio
	blocked bool
	paused  bool // Audio was paused by the blocked condition
}

// update applies the blocked condition and returns the resulting event, if any.
func (b *blocker) update(blocked bool) (Event, bool) {
	switch {
	case blocked && !b.blocked:
		b.blocked = true
		if b.audio.IsPlaying() {
			b.audio.Pause()
			b.paused = true
		}
		return Event{Kind: EventBlocked}, true
	case !blocked && b.blocked:
		b.blocked = false
		if b.paused {
			b.paused = false
			b.audio.Resume()
		}
		return Event{Kind: EventUnblocked}, true
	}
	return Event{}, false
}

// halt pauses audio for good when the session ends.
func (b *blocker) halt() {
	if b.audio.IsPlaying() {
		b.audio.Pause()
	}
	b.paused = false
}
