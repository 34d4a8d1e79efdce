package bitvec

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	l.LogOp(ctx, "not", MustParse("0011"), nil)
	assert.Contains(t, buf.String(), "not completed")
	assert.Contains(t, buf.String(), "result=0011")
	assert.Contains(t, buf.String(), "bits=4")

	buf.Reset()
	_, err := New(1).And(New(2))
	l.WithBits(1).LogOp(ctx, "and", nil, err)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "and failed")
	assert.Contains(t, buf.String(), "bits=1")

	buf.Reset()
	l.LogOp(ctx, "set", nil, nil)
	assert.Contains(t, buf.String(), "set completed")
}

func TestNoopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NoopLogger().LogOp(context.Background(), "xor", New(0), nil)
	})
}
