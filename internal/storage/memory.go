package storage

import (
	"errors"
	"sync"

	"records-api/internal/models"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrTodoNotFound = errors.New("todo not found")
)

// DefaultTodos returns the fixed records every todo store is seeded with at
// startup.
func DefaultTodos() []models.Todo {
	return []models.Todo{
		{TodoID: 1, TodoName: "Exercise", TodoDescription: "Gym", Priority: models.PriorityMedium},
		{TodoID: 2, TodoName: "Read", TodoDescription: "Library", Priority: models.PriorityLow},
		{TodoID: 3, TodoName: "Shop", TodoDescription: "Mall", Priority: models.PriorityHigh},
		{TodoID: 4, TodoName: "Study", TodoDescription: "College", Priority: models.PriorityMedium},
		{TodoID: 5, TodoName: "Meditate", TodoDescription: "Session", Priority: models.PriorityLow},
	}
}

// clampPrefix bounds a requested prefix length to [0, length].
func clampPrefix(n, length int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}
	return n
}

// ItemStorage provides in-memory storage for the item list. The list is
// append-only; an item's identity is its position.
type ItemStorage struct {
	mu    sync.RWMutex
	items []models.Item
}

// NewItemStorage creates a new in-memory item store.
func NewItemStorage() *ItemStorage {
	return &ItemStorage{items: make([]models.Item, 0)}
}

// CreateItem appends the item and returns a copy of the full updated list.
func (s *ItemStorage) CreateItem(item models.Item) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)

	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// ListItems returns the prefix of length min(limit, len) in insertion order.
func (s *ItemStorage) ListItems(limit int) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := clampPrefix(limit, len(s.items))
	out := make([]models.Item, n)
	copy(out, s.items[:n])
	return out, nil
}

// GetItem returns the item at the given position, or ErrItemNotFound when
// the position is outside the list.
func (s *ItemStorage) GetItem(index int) (*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.items) {
		return nil, ErrItemNotFound
	}

	itemCopy := s.items[index]
	return &itemCopy, nil
}

// TodoStorage provides in-memory storage for todos, kept in insertion order.
type TodoStorage struct {
	mu    sync.RWMutex
	todos []models.Todo
}

// NewTodoStorage creates a new, empty in-memory todo store.
func NewTodoStorage() *TodoStorage {
	return &TodoStorage{todos: make([]models.Todo, 0)}
}

// Seed replaces the store contents with the given records.
func (s *TodoStorage) Seed(todos []models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = make([]models.Todo, len(todos))
	copy(s.todos, todos)
	return nil
}

// ListTodos returns todos in insertion order. A nil firstN returns the whole
// list; otherwise the prefix of length min(*firstN, len).
func (s *TodoStorage) ListTodos(firstN *int) ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.todos)
	if firstN != nil {
		n = clampPrefix(*firstN, len(s.todos))
	}

	out := make([]models.Todo, n)
	copy(out, s.todos[:n])
	return out, nil
}

// GetTodo returns the todo with the given id.
func (s *TodoStorage) GetTodo(todoID int) (*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, todo := range s.todos {
		if todo.TodoID == todoID {
			todoCopy := todo
			return &todoCopy, nil
		}
	}
	return nil, ErrTodoNotFound
}

// CreateTodo assigns the next id (max existing + 1, so an emptied store
// restarts at 1), applies the default priority, and appends the record.
func (s *TodoStorage) CreateTodo(req models.TodoCreate) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, todo := range s.todos {
		if todo.TodoID > maxID {
			maxID = todo.TodoID
		}
	}

	priority := req.Priority
	if priority == 0 {
		priority = models.PriorityLow
	}

	todo := models.Todo{
		TodoID:          maxID + 1,
		TodoName:        req.TodoName,
		TodoDescription: req.TodoDescription,
		Priority:        priority,
	}

	s.todos = append(s.todos, todo)
	return &todo, nil
}

// UpdateTodo overwrites the fields present in the patch on the matching
// record; absent fields keep their current value.
func (s *TodoStorage) UpdateTodo(todoID int, req models.TodoUpdate) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].TodoID != todoID {
			continue
		}

		if req.TodoName != nil {
			s.todos[i].TodoName = *req.TodoName
		}
		if req.TodoDescription != nil {
			s.todos[i].TodoDescription = *req.TodoDescription
		}
		if req.Priority != nil {
			s.todos[i].Priority = *req.Priority
		}

		todoCopy := s.todos[i]
		return &todoCopy, nil
	}
	return nil, ErrTodoNotFound
}

// DeleteTodo removes the matching record, preserving the order of the rest,
// and returns the removed record.
func (s *TodoStorage) DeleteTodo(todoID int) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].TodoID == todoID {
			removed := s.todos[i]
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return &removed, nil
		}
	}
	return nil, ErrTodoNotFound
}
