package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNext8AMIST(t *testing.T) {
	t.Parallel()

	duration := TimeUntilNext8AMIST()

	// Duration should always be positive and less than 24 hours
	if duration <= 0 {
		t.Errorf("expected positive duration, got %v", duration)
	}
	if duration > 24*time.Hour {
		t.Errorf("expected duration less than 24 hours, got %v", duration)
	}
}
