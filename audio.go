package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const sampleRate = 44100

// loopMusic decodes an MP3 file and returns a player that loops it forever.
func loopMusic(ctx *audio.Context, path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("music: decode %s: %w", path, err)
	}
	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	return player, nil
}

func (g *Game) CloseAudio() {
	if g.player != nil {
		g.player.Close()
	}
}
