// README: Candidate aggregation; merges provider result lists before scoring.
package places

import "rumbo/internal/types"

// Aggregate merges one or more candidate lists into a single deduplicated
// sequence. The first occurrence of each place ID wins and first-seen order
// is preserved, so the merge is stable and idempotent. max > 0 truncates the
// output; max <= 0 means unlimited.
func Aggregate(lists [][]Place, max int) []Place {
	seen := make(map[types.ID]struct{})
	out := make([]Place, 0)
	for _, list := range lists {
		for _, p := range list {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p.Sanitize())
			if max > 0 && len(out) >= max {
				return out
			}
		}
	}
	return out
}
