package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func newTestReadLine(t *testing.T, input string) *ReadLine {
	t.Helper()
	r, err := NewReadLine(Config{
		Prompt: "(nemu) ",
		Stdin:  io.NopCloser(strings.NewReader(input)),
		Stdout: &lockedBuffer{},
		Stderr: &lockedBuffer{},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Shutdown(context.Background()) })
	return r
}

func drain(ctx context.Context, r *ReadLine) []string {
	var lines []string
	for {
		line, ok := r.NextLine(ctx)
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestReadLine_NextLine(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantLines   []string
		wantHistory int
	}{
		{
			name:        "lines come back verbatim",
			input:       "si\nx 4  1000\nq\n",
			wantLines:   []string{"si", "x 4  1000", "q"},
			wantHistory: 3,
		},
		{
			name:        "empty line is returned but not recorded",
			input:       "si\n\nq\n",
			wantLines:   []string{"si", "", "q"},
			wantHistory: 2,
		},
		{
			name:        "end of input right away",
			input:       "",
			wantLines:   nil,
			wantHistory: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReadLine(t, tt.input)

			got := drain(context.Background(), r)

			assert.Equal(t, tt.wantLines, got)
			assert.Equal(t, tt.wantHistory, r.HistoryLen())
		})
	}
}

func TestReadLine_EOFIsSticky(t *testing.T) {
	r := newTestReadLine(t, "c\n")

	line, ok := r.NextLine(context.Background())
	require.True(t, ok)
	assert.Equal(t, "c", line)

	_, ok = r.NextLine(context.Background())
	assert.False(t, ok)
}

func TestReadLine_CancelledContext(t *testing.T) {
	r := newTestReadLine(t, "si\nq\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	line, ok := r.NextLine(ctx)

	assert.False(t, ok)
	assert.Empty(t, line)
	assert.Equal(t, 0, r.HistoryLen())
}

func TestReadLine_ShutdownWithoutInstance(t *testing.T) {
	r := &ReadLine{}
	assert.NoError(t, r.Start(context.Background()))
	assert.NoError(t, r.Shutdown(context.Background()))
}
