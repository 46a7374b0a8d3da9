package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneClock(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	now := ZoneClock{Location: tokyo}.Now()
	assert.Equal(t, tokyo, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Minute)

	assert.Equal(t, time.Local, ZoneClock{}.Now().Location())
}

func TestFixedClock(t *testing.T) {
	instant := day(2024, time.June, 7, 20, 0)
	assert.True(t, FixedClock(instant).Now().Equal(instant))
}
