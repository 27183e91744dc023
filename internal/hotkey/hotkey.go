// Package hotkey provides the global show-now hotkey.
package hotkey

import (
	"log"
	"sync"
	"time"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"quran-reminder/internal/config"
)

// Handler listens for the global hotkey and invokes a callback.
type Handler struct {
	mu      sync.Mutex
	hk      *hotkey.Hotkey
	onPress func()
	current config.HotkeyConfig
	stopCh  chan struct{}
}

// New creates a hotkey handler.
func New(onPress func()) *Handler {
	return &Handler{onPress: onPress}
}

// Register registers the hotkey, replacing any previous registration.
func (h *Handler) Register(cfg config.HotkeyConfig) error {
	log.Printf("Registering hotkey: %s", cfg.String())

	h.mu.Lock()

	// Stop the previous listener
	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}

	oldHk := h.hk
	h.hk = nil
	h.mu.Unlock()

	// Give the listener time to exit
	time.Sleep(50 * time.Millisecond)

	// Unregister the previous hotkey with a timeout
	if oldHk != nil {
		done := make(chan struct{})
		go func() {
			oldHk.Unregister()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
			log.Printf("Hotkey unregister timeout")
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	mods := make([]hotkey.Modifier, 0, len(cfg.Modifiers))
	for _, m := range cfg.Modifiers {
		if mod, ok := modifierMap[m]; ok {
			mods = append(mods, mod)
		}
	}

	key, ok := keyMap[cfg.Key]
	if !ok {
		key = hotkey.KeyQ // fallback
	}

	h.hk = hotkey.New(mods, key)
	h.current = cfg
	h.stopCh = make(chan struct{})

	if err := h.hk.Register(); err != nil {
		log.Printf("Hotkey registration failed: %v", err)
		h.hk = nil
		h.stopCh = nil
		return err
	}

	go h.listen(h.stopCh)
	return nil
}

func (h *Handler) listen(stopCh chan struct{}) {
	h.mu.Lock()
	hk := h.hk
	h.mu.Unlock()

	if hk == nil {
		return
	}

	var lastKeydown time.Time
	const debounceInterval = 300 * time.Millisecond // guard against key repeat

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			now := time.Now()
			if now.Sub(lastKeydown) < debounceInterval {
				continue
			}
			lastKeydown = now
			if h.onPress != nil {
				h.onPress()
			}
		case _, ok := <-hk.Keyup():
			if !ok {
				return
			}
		}
	}
}

// Unregister removes the hotkey registration.
func (h *Handler) Unregister() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}

	if h.hk != nil {
		err := h.hk.Unregister()
		h.hk = nil
		return err
	}
	return nil
}

// Current returns the currently registered hotkey.
func (h *Handler) Current() config.HotkeyConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RunOnMainThread runs fn on the main OS thread (required on macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// modifierMap is defined in the platform-specific files:
// - modifiers_linux.go
// - modifiers_darwin.go
// - modifiers_windows.go

// keyMap maps config.Key -> hotkey.Key
var keyMap = map[config.Key]hotkey.Key{
	config.KeySpace:  hotkey.KeySpace,
	config.KeyReturn: hotkey.KeyReturn,
	config.KeyQ:      hotkey.KeyQ,
	config.KeyA:      hotkey.KeyA,
	config.KeyS:      hotkey.KeyS,
	config.KeyD:      hotkey.KeyD,
	config.KeyF1:     hotkey.KeyF1,
	config.KeyF2:     hotkey.KeyF2,
	config.KeyF3:     hotkey.KeyF3,
	config.KeyF4:     hotkey.KeyF4,
}
