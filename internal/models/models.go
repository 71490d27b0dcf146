package models

// Priority represents the priority level of a todo, serialized as its
// numeric code: high sorts before low.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Valid reports whether p is one of the three defined priority codes.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	}
	return "unknown"
}

// Item represents a single entry in the item list.
//
// Items carry no identity field: an item's id is its position in the list.
// The list is append-only, so positions are stable for the process lifetime,
// but any future support for deletion or reordering must replace positional
// identity with an assigned id (see Todo).
type Item struct {
	Text   string `json:"text"`
	IsDone bool   `json:"is_done"`
}

// Todo represents a complete todo record with its assigned id.
type Todo struct {
	TodoID          int      `json:"todo_id" gorm:"primaryKey;autoIncrement:false"`
	TodoName        string   `json:"todo_name" gorm:"not null;size:512"`
	TodoDescription string   `json:"todo_description" gorm:"not null"`
	Priority        Priority `json:"priority" gorm:"not null"`
}

// TodoCreate represents the request to create a new todo. The id is assigned
// by the store; priority defaults to low when omitted.
type TodoCreate struct {
	TodoName        string   `json:"todo_name" binding:"required,min=3,max=512"`
	TodoDescription string   `json:"todo_description" binding:"required"`
	Priority        Priority `json:"priority" binding:"omitempty,oneof=1 2 3"`
}

// TodoUpdate represents a partial update. Only non-nil fields overwrite the
// stored record; nil means keep the current value. A field cannot be reset
// to its zero value through this type.
type TodoUpdate struct {
	TodoName        *string   `json:"todo_name,omitempty" binding:"omitempty,min=3,max=512"`
	TodoDescription *string   `json:"todo_description,omitempty"`
	Priority        *Priority `json:"priority,omitempty" binding:"omitempty,oneof=1 2 3"`
}

// DeletedTodo wraps a removed record in the delete response body.
type DeletedTodo struct {
	Deleted Todo `json:"deleted"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
