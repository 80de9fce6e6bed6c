package modification

import (
	"context"
	"time"

	"salonbooking/models"
)

// ModificationService decides whether an existing booking can grow to a new
// duration: in place, shifted earlier, or not at all. It answers only that
// question; finding arbitrary alternative slots is the availability engine's
// job.
type ModificationService interface {
	CheckExtension(ctx context.Context, eventID string, currentStart, currentEnd time.Time, newDurationMin int) (models.ModificationOutcome, error)
}
