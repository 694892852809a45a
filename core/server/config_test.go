package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodyLimitBytes(t *testing.T) {
	assert.Equal(t, 8*1024*1024, Config{}.BodyLimitBytes())
	assert.Equal(t, 2*1024*1024, Config{BodyLimitMB: 2}.BodyLimitBytes())
	assert.Equal(t, 8*1024*1024, Config{BodyLimitMB: -1}.BodyLimitBytes())
}
