package timezone_test

import (
	"testing"
	"time"

	"daily/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	defer timezone.Load("UTC")

	loc := timezone.Load("Asia/Shanghai")

	assert.Equal(t, "Asia/Shanghai", loc.String())
	assert.Equal(t, loc, timezone.GetLocation())
}

func TestLoad_Fallback(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.Load("Mars/Olympus_Mons"))
	assert.Equal(t, time.UTC, timezone.Load(""))
}

func TestFormat(t *testing.T) {
	defer timezone.Load("UTC")

	timezone.Load("Asia/Shanghai")

	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01T20:00:00+08:00", timezone.Format(testTime, time.RFC3339))
	assert.Empty(t, timezone.Format(time.Time{}, time.RFC3339))
}
