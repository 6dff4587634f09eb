// Package checklist contains the production checklist aggregate.
//
// Each order gets at most one checklist, created lazily on first entry into
// production. Four independent stage flags (cut, sewing, finishing, quality
// check) gate the finish transition: production can only finish once all four
// are true. Stages carry no ordering between each other.
//
// A regression back to the production queue resets the flags and clears the
// responsible, but the row itself survives to preserve history.
package checklist
