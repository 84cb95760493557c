// Package assignment computes the deterministic per-participant link plan for
// the scavenger hunt. For a given participant id and the fixed location
// catalogue it decides which slots show a link, which single slot (if any)
// carries the genuine next-round link, and where every visible link points.
//
// Everything here is pure: no state, no I/O, no clock. Two calls with the
// same participant id always produce identical results, across processes and
// restarts.
package assignment

import (
	"fmt"
	"strings"

	"github.com/huntlabs/treasurehunt/internal/models"
)

// StableHash computes a well-distributed, deterministic hash of a participant
// id, truncated to a signed 32-bit value and returned as its absolute value.
// The empty string hashes to 0. Not cryptographic; the link layout only needs
// to be stable and hard to eyeball, not secret.
func StableHash(participantID string) int {
	var h int32
	for _, r := range participantID {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

// LinkID returns the stable tracking id for one participant's link in one slot.
func LinkID(participantID string, loc models.LinkLocation) string {
	return fmt.Sprintf("link-%s-%s-%s-%s", participantID, loc.Page, loc.Section, loc.Position)
}

// visible reports whether the slot at index i is shown to a participant with
// hash h. Roughly a third of the catalogue ends up visible per participant.
func visible(h, i int) bool {
	return (h+i)%3 == 0
}

// real reports whether the slot at index i is the genuine link for a
// participant with hash h. The right-hand side is constant per participant,
// so at most one index in the catalogue satisfies it. The selected index may
// itself be invisible, in which case the participant has no reachable genuine
// link for the session; callers that care can check HasReachableRealLink.
func real(h, i, n int) bool {
	return visible(h, i) && (h+i)%n == h%n
}

// ForParticipant computes the full assignment plan for a participant across
// the whole catalogue. Invalid or empty ids are hashed like any other string.
func ForParticipant(participantID string) []models.AssignmentResult {
	h := StableHash(participantID)
	n := len(locations)
	d := len(decoyDestinations)

	results := make([]models.AssignmentResult, 0, n)
	for i, loc := range locations {
		r := models.AssignmentResult{
			Location: loc,
			Visible:  visible(h, i),
			IsReal:   real(h, i, n),
			LinkID:   LinkID(participantID, loc),
		}
		if r.IsReal {
			r.Destination = RealDestination
		} else {
			r.Destination = decoyDestinations[(h+i)%d]
		}
		results = append(results, r)
	}
	return results
}

// ForPage computes the assignment plan restricted to the slots on one page.
func ForPage(participantID, page string) []models.AssignmentResult {
	all := ForParticipant(participantID)
	out := make([]models.AssignmentResult, 0, len(all))
	for _, r := range all {
		if r.Location.Page == page {
			out = append(out, r)
		}
	}
	return out
}

// HasReachableRealLink reports whether the participant's genuine slot is also
// visible to them. A false result means this participant cannot win the
// session through normal play.
func HasReachableRealLink(participantID string) bool {
	for _, r := range ForParticipant(participantID) {
		if r.IsReal && r.Visible {
			return true
		}
	}
	return false
}

// NormalizeDestination cleans up a client-submitted destination: trims
// whitespace, strips any scheme and host, and guarantees a leading slash.
func NormalizeDestination(raw string) string {
	dest := strings.TrimSpace(raw)
	if dest == "" {
		return dest
	}
	if idx := strings.Index(dest, "://"); idx != -1 {
		rest := dest[idx+3:]
		if slash := strings.Index(rest, "/"); slash != -1 {
			dest = rest[slash:]
		} else {
			dest = "/"
		}
	}
	if !strings.HasPrefix(dest, "/") {
		dest = "/" + dest
	}
	return dest
}

// IsGenuineDestination reports whether a normalized destination counts as
// reaching the genuine link for the given participant. Exact and
// case-insensitive matches against the round-two secret paths are accepted,
// as is the participant's own computed genuine destination. As a deliberate
// leniency, anything under the round-two prefix also passes; clients mangle
// paths in minor ways and the quota check downstream is the real gate.
func IsGenuineDestination(participantID, destination string) bool {
	dest := NormalizeDestination(destination)
	if dest == "" {
		return false
	}

	if dest == RealDestination {
		return true
	}

	for _, token := range roundTwoTokens {
		if dest == token || strings.EqualFold(dest, token) {
			return true
		}
	}

	return strings.HasPrefix(strings.ToLower(dest), RealDestinationPrefix)
}
