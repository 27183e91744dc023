// Package audio provides recitation audio playback.
package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
	mp3 "github.com/hajimehoshi/go-mp3"
)

const (
	// Channels - go-mp3 always decodes to stereo.
	Channels = 2
	// FramesPerBuffer - output buffer size.
	FramesPerBuffer = 1024
)

// Player streams MP3 recitation audio to the default output device.
type Player struct {
	mu       sync.Mutex
	client   *http.Client
	initDone bool
	initErr  error
	playing  bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates a new Player. The audio device is not touched until the
// first Play, so construction works on machines without working audio.
func New() *Player {
	return &Player{
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

// ensureInit initializes portaudio on first use. The result is sticky:
// a failed host never retries.
func (p *Player) ensureInit() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initDone {
		p.initDone = true
		p.initErr = portaudio.Initialize()
	}
	return p.initErr
}

// Play starts streaming the MP3 at url in the background.
// Any playback already in progress is stopped first.
func (p *Player) Play(ctx context.Context, url string) {
	p.Stop()

	ctx, cancel := context.WithCancel(ctx)

	p.mu.Lock()
	p.playing = true
	p.cancel = cancel
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	go func() {
		defer close(done)
		defer func() {
			p.mu.Lock()
			p.playing = false
			p.cancel = nil
			p.mu.Unlock()
		}()

		if err := p.ensureInit(); err != nil {
			log.Printf("Recitation unavailable: %v", err)
			return
		}

		// Errors are intentionally swallowed: recitation is best-effort
		// and must never surface to the user.
		p.stream(ctx, url)
	}()
}

func (p *Player) stream(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("recitation fetch: unexpected status %d", resp.StatusCode)
	}

	dec, err := mp3.NewDecoder(resp.Body)
	if err != nil {
		return fmt.Errorf("decode recitation: %w", err)
	}

	out := make([]int16, FramesPerBuffer*Channels)
	stream, err := portaudio.OpenDefaultStream(
		0,                         // input channels
		Channels,                  // output channels
		float64(dec.SampleRate()), // sample rate
		FramesPerBuffer,           // frames per buffer
		out,                       // buffer
	)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return err
	}
	defer stream.Stop()

	// go-mp3 emits 16-bit little-endian stereo PCM
	raw := make([]byte, len(out)*2)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := io.ReadFull(dec, raw)
		if n == 0 {
			if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return err
		}

		// Zero-pad a short final chunk
		for i := n; i < len(raw); i++ {
			raw[i] = 0
		}
		for i := range out {
			out[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
		}

		if werr := stream.Write(); werr != nil {
			return werr
		}

		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Stop cancels any playback in progress.
func (p *Player) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}

// IsPlaying returns true if audio is currently playing.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Close releases audio resources. Terminate is only called when
// Initialize actually ran and succeeded.
func (p *Player) Close() {
	p.Stop()

	p.mu.Lock()
	initialized := p.initDone && p.initErr == nil
	p.mu.Unlock()

	if initialized {
		portaudio.Terminate()
	}
}
