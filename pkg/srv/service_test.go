package srv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name  string
	calls *[]string
	err   error
}

func (r *recorder) Start(ctx context.Context) error {
	*r.calls = append(*r.calls, "start "+r.name)
	return r.err
}

func (r *recorder) Shutdown(ctx context.Context) error {
	*r.calls = append(*r.calls, "shutdown "+r.name)
	return nil
}

func TestRunForeground_ShutsDownInReverse(t *testing.T) {
	var calls []string
	main := &recorder{name: "console", calls: &calls}
	a := &recorder{name: "a", calls: &calls}
	b := &recorder{name: "b", calls: &calls}

	err := RunForeground(context.Background(), main, a, b)

	assert.NoError(t, err)
	assert.Equal(t, []string{"start console", "shutdown console", "shutdown b", "shutdown a"}, calls)
}

func TestRunForeground_ReturnsStartError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	main := &recorder{name: "console", calls: &calls, err: boom}

	err := RunForeground(context.Background(), main)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start console", "shutdown console"}, calls)
}

func TestCleanup(t *testing.T) {
	closed := false
	svc := NewCleanup(func() error {
		closed = true
		return nil
	})

	assert.NoError(t, svc.Start(context.Background()))
	assert.False(t, closed)
	assert.NoError(t, svc.Shutdown(context.Background()))
	assert.True(t, closed)
}
