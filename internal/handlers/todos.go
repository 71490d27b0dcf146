package handlers

import (
	"net/http"
	"strconv"

	"records-api/internal/models"
	"records-api/internal/storage"

	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo operations
type TodoHandler struct {
	storage storage.TodoStore
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(store storage.TodoStore) *TodoHandler {
	return &TodoHandler{storage: store}
}

// Root handles GET /
func (h *TodoHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Todo API is running"})
}

// ListTodos handles GET /todos?first_n=N. Without first_n the whole list is
// returned, in insertion order rather than priority order.
func (h *TodoHandler) ListTodos(c *gin.Context) {
	var firstN *int
	if raw := c.Query("first_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Code:    "INVALID_FIRST_N",
				Message: "first_n must be an integer",
			})
			return
		}
		firstN = &n
	}

	todos, err := h.storage.ListTodos(firstN)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to list todos",
		})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// GetTodo handles GET /todos/:todoId
func (h *TodoHandler) GetTodo(c *gin.Context) {
	todoID, ok := parseTodoID(c)
	if !ok {
		return
	}

	todo, err := h.storage.GetTodo(todoID)
	if err != nil {
		respondTodoError(c, err, "Failed to retrieve todo")
		return
	}

	c.JSON(http.StatusOK, todo)
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req models.TodoCreate
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Invalid request body",
			Details: map[string]interface{}{"error": bindErr.Error()},
		})
		return
	}

	todo, err := h.storage.CreateTodo(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to create todo",
		})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo handles PUT /todos/:todoId. Only fields present in the body
// overwrite the stored record.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	todoID, ok := parseTodoID(c)
	if !ok {
		return
	}

	var req models.TodoUpdate
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Invalid request body",
			Details: map[string]interface{}{"error": bindErr.Error()},
		})
		return
	}

	todo, err := h.storage.UpdateTodo(todoID, req)
	if err != nil {
		respondTodoError(c, err, "Failed to update todo")
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo handles DELETE /todos/:todoId and returns the removed record
// wrapped in a "deleted" envelope.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	todoID, ok := parseTodoID(c)
	if !ok {
		return
	}

	todo, err := h.storage.DeleteTodo(todoID)
	if err != nil {
		respondTodoError(c, err, "Failed to delete todo")
		return
	}

	c.JSON(http.StatusOK, models.DeletedTodo{Deleted: *todo})
}

func parseTodoID(c *gin.Context) (int, bool) {
	todoID, err := strconv.Atoi(c.Param("todoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_TODO_ID",
			Message: "Todo ID must be an integer",
		})
		return 0, false
	}
	return todoID, true
}

func respondTodoError(c *gin.Context, err error, internalMsg string) {
	if err == storage.ErrTodoNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Code:    "TODO_NOT_FOUND",
			Message: "Todo not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: internalMsg,
	})
}
