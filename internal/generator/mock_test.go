package generator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spark-chat/backend/internal/generator"
)

func TestMock_Generate_EmbedsInput(t *testing.T) {
	gen := generator.NewMock(time.Millisecond, 2*time.Millisecond)

	reply, err := gen.Generate(context.Background(), "how do goroutines work")
	require.NoError(t, err)
	assert.Contains(t, reply, `"how do goroutines work"`)
}

func TestMock_Generate_WaitsAtLeastMinDelay(t *testing.T) {
	gen := generator.NewMock(30*time.Millisecond, 40*time.Millisecond)

	start := time.Now()
	_, err := gen.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestMock_Generate_CanceledContext(t *testing.T) {
	gen := generator.NewMock(time.Second, 2*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, "hi")
	assert.ErrorIs(t, err, context.Canceled)
}
