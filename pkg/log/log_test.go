package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestIsDevelopment(t *testing.T) {
	defer environment.Store("development")

	SetEnvironment("Production")
	assert.False(t, IsDevelopment())

	SetEnvironment("dev")
	assert.True(t, IsDevelopment())
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("metric_name"))
	assert.True(t, keepInDevelopment("upload_rows"))
	assert.True(t, keepInDevelopment(correlationIDField))
	assert.False(t, keepInDevelopment("remote_addr"))
}
