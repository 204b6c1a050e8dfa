package cmdutil

import (
	"context"

	"locusfind/internal/locus"
	"locusfind/internal/pipeline"
)

// RunStream runs the lookup pipeline and streams each lookup via send.
// It returns the number of coordinates that hit a feature and the first
// error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	positions []int,
	r pipeline.Resolver,
	send func(locus.Lookup) error,
) (int, error) {
	found := 0
	err := pipeline.ForEachLookup(ctx, cfg, positions, r, func(lk locus.Lookup) error {
		if err := send(lk); err != nil {
			return err
		}
		if lk.Found {
			found++
		}
		return nil
	})
	return found, err
}
