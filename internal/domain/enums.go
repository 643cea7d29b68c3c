package domain

// Role represents the authorization level of a user. Roles form a fixed
// total order: admin > business_owner > viewer. A higher role holds every
// capability of the roles below it.
type Role string

const (
	RoleViewer        Role = "viewer"
	RoleBusinessOwner Role = "business_owner"
	RoleAdmin         Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleBusinessOwner, RoleAdmin:
		return true
	}
	return false
}

// Rank returns the position of the role in the hierarchy:
// viewer=0, business_owner=1, admin=2. Unknown roles rank -1 so that
// every comparison against a real role fails closed.
func (r Role) Rank() int {
	switch r {
	case RoleViewer:
		return 0
	case RoleBusinessOwner:
		return 1
	case RoleAdmin:
		return 2
	}
	return -1
}

// ParseRole converts an external role string into a Role, rejecting
// unknown values. Identity payloads are parsed through this function so
// that an unrecognized role never reaches a rank comparison.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", NewValidationError("role", "unknown role: "+s)
	}
	return r, nil
}

// EntryStatus represents the moderation state of a guestbook entry.
type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "pending"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusRejected EntryStatus = "rejected"
	EntryStatusSpam     EntryStatus = "spam"
)

func (s EntryStatus) String() string { return string(s) }

func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPending, EntryStatusApproved, EntryStatusRejected, EntryStatusSpam:
		return true
	}
	return false
}

// moderationTransitions is the single definition of which statuses a
// moderation action may assign, keyed by the entry's current status.
// Approved, rejected and spam are mutually re-enterable: a moderator can
// reclassify an entry that has already left the pending queue. Pending is
// never a moderation target; it exists only as the initial state set on
// submission.
var moderationTransitions = map[EntryStatus][]EntryStatus{
	EntryStatusPending:  {EntryStatusApproved, EntryStatusRejected, EntryStatusSpam},
	EntryStatusApproved: {EntryStatusApproved, EntryStatusRejected, EntryStatusSpam},
	EntryStatusRejected: {EntryStatusApproved, EntryStatusRejected, EntryStatusSpam},
	EntryStatusSpam:     {EntryStatusApproved, EntryStatusRejected, EntryStatusSpam},
}

// CanTransitionTo reports whether a moderation action may move an entry
// from status s to next.
func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	for _, allowed := range moderationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
