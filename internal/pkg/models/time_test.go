package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowEATOffset(t *testing.T) {
	now := NowEAT()

	_, offset := now.Zone()
	assert.Equal(t, 3*60*60, offset)
	assert.WithinDuration(t, time.Now(), now, time.Second)
}
