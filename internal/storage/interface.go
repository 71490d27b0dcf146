package storage

import "records-api/internal/models"

// ItemStore defines the storage operations for the item list.
type ItemStore interface {
	// CreateItem appends an item and returns the full updated list.
	CreateItem(item models.Item) ([]models.Item, error)
	// ListItems returns the prefix of the list of length min(limit, len).
	// Negative limits clamp to zero.
	ListItems(limit int) ([]models.Item, error)
	// GetItem returns the item at the given position.
	GetItem(index int) (*models.Item, error)
}

// TodoStore defines the storage operations for todos.
type TodoStore interface {
	// ListTodos returns todos in insertion order. A nil firstN returns the
	// whole list; otherwise the prefix of length min(*firstN, len), with
	// negative values clamping to zero.
	ListTodos(firstN *int) ([]models.Todo, error)
	GetTodo(todoID int) (*models.Todo, error)
	CreateTodo(req models.TodoCreate) (*models.Todo, error)
	UpdateTodo(todoID int, req models.TodoUpdate) (*models.Todo, error)
	// DeleteTodo removes the matching todo and returns it.
	DeleteTodo(todoID int) (*models.Todo, error)
	// Seed replaces the store contents with the given records.
	Seed(todos []models.Todo) error
}
