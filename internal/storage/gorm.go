package storage

import (
	"errors"

	"records-api/internal/models"

	"gorm.io/gorm"
)

// itemRow is the table shape for items. Positional identity is made explicit
// as a row column so reads come back in insertion order.
type itemRow struct {
	Position int    `gorm:"primaryKey;autoIncrement:false"`
	Text     string `gorm:"column:text"`
	IsDone   bool   `gorm:"column:is_done"`
}

func (itemRow) TableName() string { return "items" }

func (r itemRow) toModel() models.Item {
	return models.Item{Text: r.Text, IsDone: r.IsDone}
}

// GormItemStorage implements ItemStore on a GORM database. It is intended
// for SQLite ":memory:", which keeps the process-lifetime semantics of the
// in-memory store.
type GormItemStorage struct {
	db *gorm.DB
}

// NewGormItemStorage migrates the items table and returns the store.
func NewGormItemStorage(db *gorm.DB) (*GormItemStorage, error) {
	if err := db.AutoMigrate(&itemRow{}); err != nil {
		return nil, err
	}
	return &GormItemStorage{db: db}, nil
}

// CreateItem appends the item at the next position and returns the full
// updated list.
func (s *GormItemStorage) CreateItem(item models.Item) ([]models.Item, error) {
	var items []models.Item

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&itemRow{}).Count(&count).Error; err != nil {
			return err
		}

		row := itemRow{Position: int(count), Text: item.Text, IsDone: item.IsDone}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		var rows []itemRow
		if err := tx.Order("position").Find(&rows).Error; err != nil {
			return err
		}

		items = make([]models.Item, 0, len(rows))
		for _, r := range rows {
			items = append(items, r.toModel())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListItems returns the prefix of length min(limit, len) in insertion order.
func (s *GormItemStorage) ListItems(limit int) ([]models.Item, error) {
	var count int64
	if err := s.db.Model(&itemRow{}).Count(&count).Error; err != nil {
		return nil, err
	}

	n := clampPrefix(limit, int(count))
	items := make([]models.Item, 0, n)
	if n == 0 {
		return items, nil
	}

	var rows []itemRow
	if err := s.db.Order("position").Limit(n).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		items = append(items, r.toModel())
	}
	return items, nil
}

// GetItem returns the item at the given position.
func (s *GormItemStorage) GetItem(index int) (*models.Item, error) {
	var row itemRow
	err := s.db.First(&row, "position = ?", index).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	item := row.toModel()
	return &item, nil
}

// GormTodoStorage implements TodoStore on a GORM database. Ids are assigned
// by the store (max existing + 1), not by the database, so the id sequence
// matches the in-memory store exactly, including the reset to 1 after the
// table is emptied. Since every new id exceeds all live ids, ascending
// todo_id order is insertion order.
type GormTodoStorage struct {
	db *gorm.DB
}

// NewGormTodoStorage migrates the todos table and returns the store.
func NewGormTodoStorage(db *gorm.DB) (*GormTodoStorage, error) {
	if err := db.AutoMigrate(&models.Todo{}); err != nil {
		return nil, err
	}
	return &GormTodoStorage{db: db}, nil
}

// Seed replaces the table contents with the given records.
func (s *GormTodoStorage) Seed(todos []models.Todo) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Todo{}).Error; err != nil {
			return err
		}
		if len(todos) == 0 {
			return nil
		}
		return tx.Create(&todos).Error
	})
}

// ListTodos returns todos in insertion order, optionally limited to the
// first *firstN records.
func (s *GormTodoStorage) ListTodos(firstN *int) ([]models.Todo, error) {
	query := s.db.Order("todo_id")
	if firstN != nil {
		var count int64
		if err := s.db.Model(&models.Todo{}).Count(&count).Error; err != nil {
			return nil, err
		}
		n := clampPrefix(*firstN, int(count))
		if n == 0 {
			return []models.Todo{}, nil
		}
		query = query.Limit(n)
	}

	todos := make([]models.Todo, 0)
	if err := query.Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// GetTodo returns the todo with the given id.
func (s *GormTodoStorage) GetTodo(todoID int) (*models.Todo, error) {
	var todo models.Todo
	err := s.db.First(&todo, "todo_id = ?", todoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// CreateTodo assigns the next id and inserts the record. The max-id read and
// the insert run in one transaction so concurrent creates cannot collide.
func (s *GormTodoStorage) CreateTodo(req models.TodoCreate) (*models.Todo, error) {
	priority := req.Priority
	if priority == 0 {
		priority = models.PriorityLow
	}

	var todo models.Todo
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var maxID int
		if err := tx.Model(&models.Todo{}).
			Select("COALESCE(MAX(todo_id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}

		todo = models.Todo{
			TodoID:          maxID + 1,
			TodoName:        req.TodoName,
			TodoDescription: req.TodoDescription,
			Priority:        priority,
		}
		return tx.Create(&todo).Error
	})
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo overwrites the fields present in the patch on the matching
// record.
func (s *GormTodoStorage) UpdateTodo(todoID int, req models.TodoUpdate) (*models.Todo, error) {
	var todo models.Todo
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&todo, "todo_id = ?", todoID).Error; err != nil {
			return err
		}

		if req.TodoName != nil {
			todo.TodoName = *req.TodoName
		}
		if req.TodoDescription != nil {
			todo.TodoDescription = *req.TodoDescription
		}
		if req.Priority != nil {
			todo.Priority = *req.Priority
		}
		return tx.Save(&todo).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo removes the matching record and returns it.
func (s *GormTodoStorage) DeleteTodo(todoID int) (*models.Todo, error) {
	var todo models.Todo
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&todo, "todo_id = ?", todoID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Todo{}, "todo_id = ?", todoID).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}
