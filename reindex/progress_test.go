package reindex

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_ReportsAtInterval(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 10)

	tracker.Start()
	tracker.Update(5)
	assert.Empty(t, buf.String(), "should not report before crossing the interval")

	tracker.Update(10)
	assert.Contains(t, buf.String(), "10/100")
}

func TestProgressTracker_Increment(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 20, 10)

	tracker.Start()
	tracker.Increment(6)
	tracker.Increment(6)
	assert.Contains(t, buf.String(), "12/20")

	// Increment past total is capped
	tracker.Increment(100)
	tracker.Finish()
	assert.Contains(t, buf.String(), "20/20 (100.0%)")
}

func TestProgressTracker_FinishReportsTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 7, 100)

	tracker.Start()
	tracker.Update(3)
	tracker.Finish()

	assert.Contains(t, buf.String(), "7/7 (100.0%)")
}

func TestProgressTracker_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)

	tracker.Update(5)
	tracker.Increment(5)
	tracker.Finish()

	assert.Empty(t, buf.String(), "should ignore updates before Start")
	assert.Equal(t, time.Duration(0), tracker.Elapsed())
}
