package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Text: "x = 2"},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Text != "x = 2" {
		t.Errorf("text = %q, want %q", resp.Text, "x = 2")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryDoesNotRetryInvalidResponse(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("no text")}},
		MockResponse{Text: "never reached"},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", mock.CallCount())
	}
}

func TestRetryDoesNotRetryMaxTokens(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{}},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", mock.CallCount())
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Text: "never reached"},
	)
	p := WithRetry(mock, RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Hour, // force cancellation during backoff
		MaxWait:     time.Hour,
		Multiplier:  1.0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
