package domain

type AuthorRole string

const (
	RoleResident AuthorRole = "resident"
	RoleFM       AuthorRole = "fm"
	RoleSystem   AuthorRole = "system"
)

type EntityKind string

const (
	EntityKindMoveRequest EntityKind = "move_request"
)

// Actor identifies who is invoking a workflow operation. The engine validates
// the role on every transition rather than trusting the transport layer.
type Actor struct {
	Role AuthorRole `json:"role"`
	Name string     `json:"name"`
}

// StatusChange annotates a comment produced by a workflow transition.
type StatusChange struct {
	From MoveStatus `json:"from"`
	To   MoveStatus `json:"to"`
}

// Comment is one entry of the append-only per-entity thread. Entries are never
// mutated after creation except for the read flag.
type Comment struct {
	ID           string        `json:"id"`
	EntityID     string        `json:"entity_id"`
	EntityKind   EntityKind    `json:"entity_kind"`
	AuthorRole   AuthorRole    `json:"author_role"`
	AuthorName   string        `json:"author_name"`
	Message      string        `json:"message"`
	Read         bool          `json:"read"`
	StatusChange *StatusChange `json:"status_change,omitempty"`
	CreatedOn    string        `json:"created_on"`
}
