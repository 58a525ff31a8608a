package jobs

import "context"

// DeactivateExpiredPriceLists switches off active price lists whose
// valid_until lies before today, so tiered lookups stop finding them.
func (jr *JobRunner) DeactivateExpiredPriceLists() error {
	return jr.runWithRecovery("DeactivateExpiredPriceLists", func(ctx context.Context) error {
		_, err := jr.catalog.DeactivateExpiredPriceLists(ctx)
		return err
	})
}
