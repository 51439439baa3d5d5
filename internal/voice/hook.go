// Package voice drives one question/answer cycle of the voice-assisted
// onboarding flow: speak the prompt, listen, submit the transcript for
// intent extraction, confirm.
package voice

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

const (
	confirmationLine = "Got it, thank you."
	apologyLine      = "Sorry, I couldn't process that. Let's try again."
)

// ErrBusy is returned when Start is called outside idle/done/error.
var ErrBusy = errors.New("voice interaction already in progress")

// Hook sequences speech synthesis, capture, and remote extraction for one
// onboarding step. All external signals funnel through the mutex; stale
// async completions are fenced by an epoch counter bumped on reset.
type Hook struct {
	mu         sync.Mutex
	state      State
	transcript string
	extracted  map[string]string
	lastError  string
	epoch      uint64

	step       StepConfig
	synth      Synthesizer
	recognizer Recognizer
	extractor  Extractor
	guardDelay time.Duration
	onComplete CompleteFunc

	guardTimer *time.Timer
	logger     *slog.Logger
}

// NewHook creates a hook for one onboarding step.
func NewHook(log *slog.Logger, step StepConfig, synth Synthesizer, recognizer Recognizer, extractor Extractor, guardDelay time.Duration, onComplete CompleteFunc) *Hook {
	if log == nil {
		log = slog.Default()
	}
	if guardDelay <= 0 {
		guardDelay = 350 * time.Millisecond
	}
	return &Hook{
		state:      StateIdle,
		step:       step,
		synth:      synth,
		recognizer: recognizer,
		extractor:  extractor,
		guardDelay: guardDelay,
		onComplete: onComplete,
		logger:     log.With(slog.String("component", "voice"), slog.String("step", step.ID)),
	}
}

// Supported reports whether speech recognition is available. When false
// the caller is expected to branch to a non-voice flow; the hook performs
// no fallback itself.
func (h *Hook) Supported() bool {
	return h.recognizer != nil && h.recognizer.Supported()
}

// State returns the current interaction phase.
func (h *Hook) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Transcript returns the last captured transcript.
func (h *Hook) Transcript() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.transcript
}

// Extracted returns the extracted field-value mapping from the last
// completed interaction, or nil.
func (h *Hook) Extracted() map[string]string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.extracted == nil {
		return nil
	}
	out := make(map[string]string, len(h.extracted))
	for k, v := range h.extracted {
		out[k] = v
	}
	return out
}

// LastError returns the stored error message, or "".
func (h *Hook) LastError() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastError
}

// Start begins one interaction: synthesize the prompt, wait the guard
// delay, then listen. A fresh Start is always possible from idle, done,
// and error.
func (h *Hook) Start(ctx context.Context) error {
	h.mu.Lock()
	switch h.state {
	case StateIdle, StateDone, StateError:
	default:
		h.mu.Unlock()
		return ErrBusy
	}
	h.state = StateSpeaking
	h.lastError = ""
	h.transcript = ""
	h.extracted = nil
	epoch := h.epoch
	h.mu.Unlock()

	h.speak(ctx, h.step.Prompt, func() {
		h.scheduleListen(ctx, epoch)
	})
	return nil
}

// StopSpeaking cancels synthesis. While speaking this reverts to idle;
// in any other state it is a no-op beyond stopping the output.
func (h *Hook) StopSpeaking() {
	if h.synth != nil {
		h.synth.Stop()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == StateSpeaking {
		h.state = StateIdle
		h.cancelGuardLocked()
	}
}

// StopListening asks the recognizer to stop. It does not change state by
// itself; the capture-stopped signal drives the transition.
func (h *Hook) StopListening() {
	if h.recognizer != nil {
		h.recognizer.Stop()
	}
}

// Reset cancels any in-flight speech or capture, clears transcript,
// extracted data, and error, and returns to idle.
func (h *Hook) Reset() {
	if h.synth != nil {
		h.synth.Stop()
	}
	if h.recognizer != nil {
		h.recognizer.Stop()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.epoch++
	h.cancelGuardLocked()
	h.state = StateIdle
	h.transcript = ""
	h.extracted = nil
	h.lastError = ""
}

// speak degrades to an immediate completion when synthesis is unsupported.
func (h *Hook) speak(ctx context.Context, text string, done func()) {
	if h.synth == nil || !h.synth.Supported() {
		if done != nil {
			done()
		}
		return
	}
	if err := h.synth.Speak(ctx, text, done); err != nil {
		h.logger.Warn("synthesis failed", slog.Any("error", err))
		if done != nil {
			done()
		}
	}
}

// scheduleListen waits the guard delay before capture so the synthesis
// tail is not recorded as input.
func (h *Hook) scheduleListen(ctx context.Context, epoch uint64) {
	h.mu.Lock()
	if h.epoch != epoch || h.state != StateSpeaking {
		h.mu.Unlock()
		return
	}
	h.cancelGuardLocked()
	h.guardTimer = time.AfterFunc(h.guardDelay, func() {
		h.beginListening(ctx, epoch)
	})
	h.mu.Unlock()
}

func (h *Hook) beginListening(ctx context.Context, epoch uint64) {
	h.mu.Lock()
	if h.epoch != epoch || h.state != StateSpeaking {
		h.mu.Unlock()
		return
	}
	h.state = StateListening
	h.mu.Unlock()

	err := h.recognizer.Start(ctx,
		func(text string) {
			h.mu.Lock()
			if h.epoch == epoch {
				h.transcript = text
			}
			h.mu.Unlock()
		},
		func() {
			h.captureStopped(ctx, epoch)
		},
	)
	if err != nil {
		h.mu.Lock()
		if h.epoch == epoch && h.state == StateListening {
			h.state = StateError
			h.lastError = "Failed to start listening"
		}
		h.mu.Unlock()
	}
}

// captureStopped handles the recognizer's stopped signal: empty
// transcript returns silently to idle; otherwise the transcript goes to
// the extraction endpoint.
func (h *Hook) captureStopped(ctx context.Context, epoch uint64) {
	h.mu.Lock()
	if h.epoch != epoch || h.state != StateListening {
		h.mu.Unlock()
		return
	}
	transcript := strings.TrimSpace(h.transcript)
	if transcript == "" {
		h.state = StateIdle
		h.mu.Unlock()
		return
	}
	h.state = StateProcessing
	h.mu.Unlock()

	go h.extract(ctx, epoch, transcript)
}

func (h *Hook) extract(ctx context.Context, epoch uint64, transcript string) {
	extracted, err := h.extractor.Extract(ctx, ExtractRequest{
		Transcript: transcript,
		StepID:     h.step.ID,
		Field:      h.step.Field,
	})

	h.mu.Lock()
	if h.epoch != epoch || h.state != StateProcessing {
		h.mu.Unlock()
		return
	}
	if err != nil {
		h.state = StateError
		h.lastError = api.DisplayMessage(err, "Couldn't understand that answer")
		h.mu.Unlock()
		h.logger.Warn("extraction failed", slog.Any("error", err))
		h.speak(ctx, apologyLine, nil)
		return
	}
	h.state = StateDone
	h.extracted = extracted
	onComplete := h.onComplete
	step := h.step
	h.mu.Unlock()

	h.speak(ctx, confirmationLine, nil)
	if onComplete != nil {
		onComplete(step, extracted)
	}
}

func (h *Hook) cancelGuardLocked() {
	if h.guardTimer != nil {
		h.guardTimer.Stop()
		h.guardTimer = nil
	}
}
