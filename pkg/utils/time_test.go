package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayLocation(t *testing.T) {
	t.Cleanup(func() { displayLocation.Store(time.UTC) })

	at := time.Date(2026, 11, 1, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, "01 Nov 2026 22:30", FormatEventTime(at))

	require.NoError(t, SetDisplayLocation("Asia/Almaty"))
	assert.Equal(t, "02 Nov 2026", FormatDate(at))

	assert.Error(t, SetDisplayLocation("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Almaty", DisplayLocation().String())

	assert.Empty(t, FormatDate(time.Time{}))
	assert.Empty(t, FormatEventTime(time.Time{}))
}
