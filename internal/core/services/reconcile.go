package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/logger"
)

// reconcileConfig holds the optional knobs for Reconcile.
type reconcileConfig struct {
	idFloor int
}

// ReconcileOption customises a Reconcile call.
type ReconcileOption func(*reconcileConfig)

// WithIDFloor makes merge allocation start above n even when the table's
// highest ID is lower, so IDs freed by deletion are not handed out again.
// Replace ignores it.
func WithIDFloor(n int) ReconcileOption {
	return func(c *reconcileConfig) {
		if n > c.idFloor {
			c.idFloor = n
		}
	}
}

// Reconcile computes the table that results from applying batch to existing.
//
// Candidates failing field validation are dropped first. In replace mode the
// batch becomes the whole table, in batch order, with colliding or unusable
// IDs reassigned above the running maximum. In merge mode the batch is
// upserted into existing by ID and the result is sorted by ascending ID.
//
// The existing table is never modified.
func Reconcile(existing domain.Table, batch domain.ImportBatch, opts ...ReconcileOption) (domain.Table, error) {
	cfg := reconcileConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	candidates := validCandidates(batch.Candidates)

	switch batch.Mode {
	case domain.ImportModeReplace:
		return reconcileReplace(candidates), nil
	case domain.ImportModeMerge:
		return reconcileMerge(existing, candidates, cfg.idFloor), nil
	default:
		return nil, fmt.Errorf("%w: unknown import mode %q", domain.ErrInvalidInput, batch.Mode)
	}
}

// validCandidates returns the candidates whose fields pass validation.
func validCandidates(candidates []domain.Candidate) []domain.Candidate {
	valid := make([]domain.Candidate, 0, len(candidates))
	for i := range candidates {
		if err := candidates[i].Input.Validate(); err != nil {
			logger.Debug("Dropping candidate %d (id %s): %v", i, candidates[i].ID, err)
			continue
		}
		valid = append(valid, candidates[i])
	}
	return valid
}

func reconcileReplace(candidates []domain.Candidate) domain.Table {
	out := make(domain.Table, 0, len(candidates))
	kept := make(map[int]struct{}, len(candidates))
	maxID := 0

	for i := range candidates {
		id, ok := candidates[i].ID.Usable()
		if ok {
			if _, taken := kept[id]; taken {
				ok = false
			}
		}

		if ok {
			maxID = max(maxID, id)
		} else {
			id = nextFreeID(maxID, func(n int) bool { _, taken := kept[n]; return taken })
			maxID = max(maxID, id)
			logger.Debug("Replace: candidate %d (id %s) assigned id %d", i, candidates[i].ID, id)
		}

		kept[id] = struct{}{}
		out = append(out, candidates[i].Input.WithID(id))
	}

	return out
}

func reconcileMerge(existing domain.Table, candidates []domain.Candidate, idFloor int) domain.Table {
	byID := make(map[int]domain.Document, len(existing)+len(candidates))
	for i := range existing {
		byID[existing[i].ID] = existing[i]
	}
	maxID := max(existing.MaxID(), idFloor)

	for i := range candidates {
		id, ok := candidates[i].ID.Usable()
		_, exists := byID[id]

		switch {
		case ok && exists:
			// Last write wins on an identifier already present.
			byID[id] = candidates[i].Input.WithID(id)
		case !ok:
			fresh := nextFreeID(maxID, func(n int) bool { _, taken := byID[n]; return taken })
			maxID = max(maxID, fresh)
			byID[fresh] = candidates[i].Input.WithID(fresh)
			logger.Debug("Merge: candidate %d (id %s) assigned id %d", i, candidates[i].ID, fresh)
		default:
			byID[id] = candidates[i].Input.WithID(id)
			maxID = max(maxID, id)
		}
	}

	out := make(domain.Table, 0, len(byID))
	for id := range byID {
		out = append(out, byID[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// nextFreeID returns the ID following last. Once last has reached
// domain.MaxDocumentID it returns the lowest positive ID not taken instead.
// Every ID above last must be free.
func nextFreeID(last int, taken func(int) bool) int {
	if last < domain.MaxDocumentID {
		return last + 1
	}
	id := 1
	for taken(id) {
		id++
	}
	return id
}
