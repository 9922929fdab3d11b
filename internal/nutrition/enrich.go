package nutrition

import (
	"context"

	"github.com/hammamikhairi/calcprods/internal/domain"
	"github.com/hammamikhairi/calcprods/internal/logger"
)

// Enrich looks up every name in turn. Failed lookups and unknown names are
// logged and left out; only a cancelled context stops the loop early, in
// which case the facts gathered so far are returned with the context error.
func Enrich(ctx context.Context, lookup domain.NutritionLookup, names []string, log *logger.Logger) ([]domain.Macros, error) {
	out := make([]domain.Macros, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		m, err := lookup.Lookup(ctx, name)
		if err != nil {
			log.Error("FAILED: %s: %v", name, err)
			continue
		}
		if m == nil {
			log.Warn("nutrition: nothing found for %q", name)
			continue
		}
		out = append(out, *m)
	}

	log.Info("nutrition: %d of %d ingredients found", len(out), len(names))
	return out, nil
}
