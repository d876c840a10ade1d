package domain

// Role identifies the speaker of a conversation turn. The provider has no
// native system role; a tenant's system prompt is simulated as a leading
// user turn.
type Role string

const (
	// RoleUser is an end-user utterance.
	RoleUser Role = "user"
	// RoleModel is a model-generated reply.
	RoleModel Role = "model"
)

// Valid reports whether r is one of the two accepted roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModel
}

// Turn is a single utterance in a conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
