package main

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/system"
)

const sampleRate = 48000

type tone struct {
	freq    float64
	seconds float64
	volume  float64
	fallHz  float64
}

var eventTones = map[ecs.EventType]tone{
	system.EventProjectileFired: {freq: 880, seconds: 0.05, volume: 0.25},
	system.EventProjectileHit:   {freq: 440, seconds: 0.06, volume: 0.3},
	system.EventEnemyKilled:     {freq: 220, seconds: 0.2, volume: 0.35, fallHz: 120},
	system.EventPlayerHit:       {freq: 150, seconds: 0.15, volume: 0.5},
	system.EventBossSpawned:     {freq: 70, seconds: 0.8, volume: 0.6, fallHz: 20},
	system.EventWaveStarted:     {freq: 523, seconds: 0.3, volume: 0.4},
	system.EventGameOver:        {freq: 196, seconds: 1.0, volume: 0.5, fallHz: 150},
	system.EventWon:             {freq: 659, seconds: 1.0, volume: 0.5},
}

// soundBoard plays one short synthesized cue per event type. A cue that is
// still playing is not restarted.
type soundBoard struct {
	players map[ecs.EventType]*audio.Player
	volume  map[ecs.EventType]float64
}

func newSoundBoard(ctx *audio.Context) *soundBoard {
	s := &soundBoard{
		players: make(map[ecs.EventType]*audio.Player, len(eventTones)),
		volume:  make(map[ecs.EventType]float64, len(eventTones)),
	}
	if ctx == nil {
		return s
	}
	for typ, t := range eventTones {
		s.players[typ] = ctx.NewPlayerFromBytes(synth(t))
		s.volume[typ] = t.volume
	}
	return s
}

func (s *soundBoard) Play(events []ecs.Event) {
	if s == nil {
		return
	}
	played := make(map[ecs.EventType]bool, len(events))
	for _, evt := range events {
		player := s.players[evt.Type]
		if player == nil || played[evt.Type] || player.IsPlaying() {
			continue
		}
		played[evt.Type] = true
		player.SetVolume(s.volume[evt.Type])
		_ = player.Rewind()
		player.Play()
	}
}

func (s *soundBoard) Close() {
	if s == nil {
		return
	}
	for typ, player := range s.players {
		_ = player.Close()
		delete(s.players, typ)
	}
}

// synth renders a sine sweep as 16-bit little-endian stereo PCM with a
// linear fade out.
func synth(t tone) []byte {
	n := int(t.seconds * sampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.freq + (t.fallHz-t.freq)*progress
		if t.fallHz == 0 {
			freq = t.freq
		}
		phase += 2 * math.Pi * freq / sampleRate
		v := int16(math.Sin(phase) * (1 - progress) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[4*i:], uint16(v))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(v))
	}
	return buf
}
