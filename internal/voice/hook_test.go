package voice

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

// mockSynth completes synthesis synchronously.
type mockSynth struct {
	mu        sync.Mutex
	supported bool
	spoken    []string
	stops     int
}

func (m *mockSynth) Supported() bool { return m.supported }

func (m *mockSynth) Speak(_ context.Context, text string, done func()) error {
	m.mu.Lock()
	m.spoken = append(m.spoken, text)
	m.mu.Unlock()
	if done != nil {
		done()
	}
	return nil
}

func (m *mockSynth) Stop() {
	m.mu.Lock()
	m.stops++
	m.mu.Unlock()
}

func (m *mockSynth) spokenLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.spoken))
	copy(out, m.spoken)
	return out
}

// mockRecognizer hands control of transcript and stop signals to the test.
type mockRecognizer struct {
	mu           sync.Mutex
	supported    bool
	started      int
	onTranscript func(string)
	onStopped    func()
}

func (m *mockRecognizer) Supported() bool { return m.supported }

func (m *mockRecognizer) Start(_ context.Context, onTranscript func(string), onStopped func()) error {
	m.mu.Lock()
	m.started++
	m.onTranscript = onTranscript
	m.onStopped = onStopped
	m.mu.Unlock()
	return nil
}

func (m *mockRecognizer) Stop() {}

func (m *mockRecognizer) emit(text string) {
	m.mu.Lock()
	cb := m.onTranscript
	m.mu.Unlock()
	if cb != nil {
		cb(text)
	}
}

func (m *mockRecognizer) stopSignal() {
	m.mu.Lock()
	cb := m.onStopped
	m.mu.Unlock()
	if cb != nil {
		cb()
	}
}

type mockExtractor struct {
	mu     sync.Mutex
	result map[string]string
	err    error
	calls  []ExtractRequest
}

func (m *mockExtractor) Extract(_ context.Context, req ExtractRequest) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	return m.result, m.err
}

func (m *mockExtractor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func testStep() StepConfig {
	return StepConfig{ID: "business-name", Prompt: "What's the name of your business?", Field: "businessName"}
}

// newRunningHook starts an interaction and drives it to listening.
func newRunningHook(t *testing.T, rec *mockRecognizer, ext *mockExtractor, onComplete CompleteFunc) (*Hook, *mockSynth) {
	t.Helper()
	synth := &mockSynth{supported: true}
	h := NewHook(nil, testStep(), synth, rec, ext, time.Millisecond, onComplete)
	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	waitForState(t, h, StateListening)
	return h, synth
}

func waitForState(t *testing.T, h *Hook, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.State() == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("state = %s, want %s", h.State(), want)
}

func TestStart_SpeaksThenListens(t *testing.T) {
	rec := &mockRecognizer{supported: true}
	ext := &mockExtractor{}
	h, synth := newRunningHook(t, rec, ext, nil)

	if got := synth.spokenLines(); len(got) != 1 || got[0] != testStep().Prompt {
		t.Errorf("spoken = %v, want the step prompt", got)
	}
	if rec.started != 1 {
		t.Errorf("recognizer started %d times, want 1", rec.started)
	}
	if h.State() != StateListening {
		t.Errorf("state = %s", h.State())
	}
}

func TestCaptureStop_EmptyTranscriptReturnsToIdle(t *testing.T) {
	rec := &mockRecognizer{supported: true}
	ext := &mockExtractor{}
	h, _ := newRunningHook(t, rec, ext, nil)

	rec.stopSignal()
	waitForState(t, h, StateIdle)
	if ext.callCount() != 0 {
		t.Errorf("extraction called %d times for empty transcript, want 0", ext.callCount())
	}
	if h.LastError() != "" {
		t.Errorf("error surfaced for silent no-op: %q", h.LastError())
	}
}

func TestCaptureStop_TranscriptTriggersOneExtraction(t *testing.T) {
	rec := &mockRecognizer{supported: true}
	ext := &mockExtractor{result: map[string]string{"businessName": "Luna Cuts"}}
	var completed map[string]string
	var completeMu sync.Mutex
	h, synth := newRunningHook(t, rec, ext, func(_ StepConfig, extracted map[string]string) {
		completeMu.Lock()
		completed = extracted
		completeMu.Unlock()
	})

	rec.emit("my business is called Luna Cuts")
	rec.stopSignal()
	waitForState(t, h, StateDone)

	if ext.callCount() != 1 {
		t.Fatalf("extraction calls = %d, want exactly 1", ext.callCount())
	}
	ext.mu.Lock()
	req := ext.calls[0]
	ext.mu.Unlock()
	if req.Transcript != "my business is called Luna Cuts" || req.StepID != "business-name" || req.Field != "businessName" {
		t.Errorf("extract request = %+v", req)
	}

	completeMu.Lock()
	got := completed
	completeMu.Unlock()
	if got["businessName"] != "Luna Cuts" {
		t.Errorf("completion payload = %v", got)
	}

	lines := synth.spokenLines()
	if len(lines) != 2 || lines[1] != confirmationLine {
		t.Errorf("spoken = %v, want confirmation after done", lines)
	}
}

func TestExtractionFailure_SpeaksApologyNoRetry(t *testing.T) {
	rec := &mockRecognizer{supported: true}
	ext := &mockExtractor{err: &api.APIError{Status: 502, Message: "Extractor unavailable"}}
	h, synth := newRunningHook(t, rec, ext, nil)

	rec.emit("something")
	rec.stopSignal()
	waitForState(t, h, StateError)

	if h.LastError() != "Extractor unavailable" {
		t.Errorf("LastError = %q, want server message", h.LastError())
	}
	if ext.callCount() != 1 {
		t.Errorf("extraction calls = %d, want 1 (no auto-retry)", ext.callCount())
	}
	lines := synth.spokenLines()
	if len(lines) != 2 || lines[1] != apologyLine {
		t.Errorf("spoken = %v, want apology", lines)
	}

	// A fresh Start is always possible after an error.
	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("Start after error: %v", err)
	}
	waitForState(t, h, StateListening)
}

func TestReset_FromAnyStateYieldsCleanIdle(t *testing.T) {
	states := []func(t *testing.T) *Hook{
		func(t *testing.T) *Hook { // listening with transcript
			rec := &mockRecognizer{supported: true}
			h, _ := newRunningHook(t, rec, &mockExtractor{}, nil)
			rec.emit("partial words")
			return h
		},
		func(t *testing.T) *Hook { // error state
			rec := &mockRecognizer{supported: true}
			ext := &mockExtractor{err: &api.APIError{Status: 500, Message: "boom"}}
			h, _ := newRunningHook(t, rec, ext, nil)
			rec.emit("x")
			rec.stopSignal()
			waitForState(t, h, StateError)
			return h
		},
		func(t *testing.T) *Hook { // done state
			rec := &mockRecognizer{supported: true}
			ext := &mockExtractor{result: map[string]string{"businessName": "A"}}
			h, _ := newRunningHook(t, rec, ext, nil)
			rec.emit("a")
			rec.stopSignal()
			waitForState(t, h, StateDone)
			return h
		},
	}

	for i, build := range states {
		h := build(t)
		h.Reset()
		if h.State() != StateIdle {
			t.Errorf("case %d: state = %s, want idle", i, h.State())
		}
		if h.Transcript() != "" {
			t.Errorf("case %d: transcript not cleared", i)
		}
		if h.Extracted() != nil {
			t.Errorf("case %d: extracted not cleared", i)
		}
		if h.LastError() != "" {
			t.Errorf("case %d: error not cleared", i)
		}
	}
}

func TestStopSpeaking_RevertsToIdleOnlyWhileSpeaking(t *testing.T) {
	// Synth that never completes keeps the hook in speaking.
	rec := &mockRecognizer{supported: true}
	synth := &hangingSynth{}
	h := NewHook(nil, testStep(), synth, rec, &mockExtractor{}, time.Millisecond, nil)
	if err := h.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if h.State() != StateSpeaking {
		t.Fatalf("state = %s, want speaking", h.State())
	}
	h.StopSpeaking()
	if h.State() != StateIdle {
		t.Errorf("state = %s, want idle after stopping speech", h.State())
	}

	// Stopping speech while idle stays idle.
	h.StopSpeaking()
	if h.State() != StateIdle {
		t.Errorf("second StopSpeaking changed state to %s", h.State())
	}
}

func TestUnsupportedSynthesisDegradesToSilentSkip(t *testing.T) {
	rec := &mockRecognizer{supported: true}
	synth := &mockSynth{supported: false}
	h := NewHook(nil, testStep(), synth, rec, &mockExtractor{}, time.Millisecond, nil)
	if err := h.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	waitForState(t, h, StateListening)
	if got := synth.spokenLines(); len(got) != 0 {
		t.Errorf("unsupported synth spoke: %v", got)
	}
}

func TestUnsupportedRecognizerFlagged(t *testing.T) {
	h := NewHook(nil, testStep(), &mockSynth{supported: true}, &mockRecognizer{supported: false}, &mockExtractor{}, time.Millisecond, nil)
	if h.Supported() {
		t.Error("Supported() = true for unsupported recognizer")
	}
}

type hangingSynth struct{}

func (s *hangingSynth) Supported() bool { return true }

func (s *hangingSynth) Speak(_ context.Context, _ string, _ func()) error { return nil }

func (s *hangingSynth) Stop() {}
