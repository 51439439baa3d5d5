package voice

import "context"

// State is the hook's interaction phase.
type State string

const (
	StateIdle       State = "idle"
	StateSpeaking   State = "speaking"
	StateListening  State = "listening"
	StateProcessing State = "processing"
	StateDone       State = "done"
	StateError      State = "error"
)

// StepConfig describes one unit of the voice-driven setup flow: a spoken
// prompt mapping an answer onto one business-profile field.
type StepConfig struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Field  string `json:"field"`
	Final  bool   `json:"final"`
}

// Synthesizer is the platform text-to-speech capability.
type Synthesizer interface {
	Supported() bool
	// Speak starts synthesis and invokes done when output finishes.
	Speak(ctx context.Context, text string, done func()) error
	// Stop cancels any in-flight synthesis. Idempotent.
	Stop()
}

// Recognizer is the platform speech-to-text capability.
type Recognizer interface {
	Supported() bool
	// Start begins capture. onTranscript delivers the accumulated
	// transcript; onStopped fires when the recognizer reports it stopped.
	Start(ctx context.Context, onTranscript func(string), onStopped func()) error
	// Stop requests capture to end. Idempotent; the state change is
	// driven by the onStopped signal, not by this call.
	Stop()
}

// ExtractRequest is submitted to the remote intent-extraction endpoint.
type ExtractRequest struct {
	Transcript string `json:"transcript"`
	StepID     string `json:"stepId"`
	Field      string `json:"field"`
}

// Extractor resolves a transcript into field values.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (map[string]string, error)
}

// CompleteFunc receives the extracted data when a step finishes.
type CompleteFunc func(step StepConfig, extracted map[string]string)
