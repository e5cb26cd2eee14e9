package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrace_RoundTrip(t *testing.T) {
	ctx := WithTrace(context.Background(), &TraceContext{
		TraceID:   "trace-1",
		RequestID: "req-1",
	})

	assert.Equal(t, "trace-1", GetTraceID(ctx))
	assert.Equal(t, "req-1", GetRequestID(ctx))
}

func TestTrace_Absent(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, GetTrace(ctx))
	assert.NotEmpty(t, GetTraceID(ctx))
	assert.Empty(t, GetRequestID(ctx))
}
