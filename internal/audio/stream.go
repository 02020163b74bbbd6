package audio

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"
)

// Player drives a Synth from the default output device.
type Player struct {
	*Synth
	stream *portaudio.Stream
}

func NewPlayer() *Player {
	return &Player{Synth: NewSynth()}
}

func (p *Player) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, p.Render)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio start: %w", err)
	}
	p.stream = stream
	log.Debug("audio started", "rate", SampleRate, "buffer", BufferSize)
	return nil
}

func (p *Player) Stop() {
	if p.stream == nil {
		return
	}
	p.stream.Stop()
	p.stream.Close()
	portaudio.Terminate()
	p.stream = nil
}
