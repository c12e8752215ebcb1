package log

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewContextWithWriter(t *testing.T) {
	var out syncBuffer
	ctx, flush := NewContextWithWriter(context.Background(), &out, true)

	defer flush()

	FromCtx(ctx).Debug().Msg("stepping")

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "stepping")
	}, time.Second, 5*time.Millisecond)
}

func TestNewContextWithWriter_InfoLevelDropsDebug(t *testing.T) {
	var out syncBuffer
	ctx, flush := NewContextWithWriter(context.Background(), &out, false)

	defer flush()

	FromCtx(ctx).Debug().Msg("hidden")
	FromCtx(ctx).Info().Msg("shown")

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "shown")
	}, time.Second, 5*time.Millisecond)
	assert.NotContains(t, out.String(), "hidden")
}

func TestFromCtx_WithoutLogger(t *testing.T) {
	logger := FromCtx(context.Background())
	assert.NotNil(t, logger)
}
