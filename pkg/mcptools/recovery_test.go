package mcptools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutNetError struct{ timeout bool }

func (e *timeoutNetError) Error() string   { return "net error" }
func (e *timeoutNetError) Timeout() bool   { return e.timeout }
func (e *timeoutNetError) Temporary() bool { return false }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected RecoveryAction
	}{
		{"nil", nil, NoRetry},
		{"context canceled", context.Canceled, NoRetry},
		{"deadline exceeded", context.DeadlineExceeded, NoRetry},
		{"network timeout", &timeoutNetError{timeout: true}, NoRetry},
		{"network failure", &timeoutNetError{timeout: false}, RetryNewSession},
		{"eof", io.EOF, RetryNewSession},
		{"unexpected eof", io.ErrUnexpectedEOF, RetryNewSession},
		{"wrapped eof", fmt.Errorf("call failed: %w", io.EOF), RetryNewSession},
		{"connection refused", errors.New("dial tcp: connection refused"), RetryNewSession},
		{"connection reset", errors.New("read: connection reset by peer"), RetryNewSession},
		{"broken pipe", errors.New("write: broken pipe"), RetryNewSession},
		{"method not found", errors.New("jsonrpc: method not found"), NoRetry},
		{"invalid params", errors.New("jsonrpc: Invalid Params"), NoRetry},
		{"unknown", errors.New("something odd"), NoRetry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyError(tt.err))
		})
	}
}
