package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1024, cfg.StartLine.MaxMethodLength)
	assert.Equal(t, 256*1024, cfg.StartLine.MaxResourceLength)
	assert.Equal(t, 1024*1024, cfg.StartLine.MaxQueryLength)
	assert.Equal(t, 1024, cfg.Headers.MaxNameLength)
	assert.Equal(t, 1024*1024, cfg.Headers.MaxValueLength)
	assert.Equal(t, 1024, cfg.Form.MaxNameLength)
	assert.Equal(t, 1024*1024, cfg.Form.MaxValueLength)
	assert.Equal(t, 1024*1024, cfg.Body.MaxSize)
	assert.Equal(t, 8*1024, cfg.NET.ReadBufferSize)
}
