package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"records-api/internal/models"
	"records-api/internal/storage"
	"records-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTodoHandler(t *testing.T) (*TodoHandler, storage.TodoStore) {
	store := storage.NewTodoStorage()
	require.NoError(t, store.Seed(storage.DefaultTodos()))
	return NewTodoHandler(store), store
}

func todoContext(w *httptest.ResponseRecorder, req *http.Request, todoID string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if todoID != "" {
		c.Params = gin.Params{{Key: "todoId", Value: todoID}}
	}
	return c
}

func TestTodoRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler, _ := setupTodoHandler(t)

	w := httptest.NewRecorder()
	c := todoContext(w, httptest.NewRequest("GET", "/", nil), "")

	handler.Root(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Todo API is running"}`, w.Body.String())
}

func TestListTodos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns all todos in insertion order", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		c := todoContext(w, httptest.NewRequest("GET", "/todos", nil), "")

		handler.ListTodos(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var todos []models.Todo
		testutil.ParseJSONResponse(t, w, &todos)
		require.Len(t, todos, 5)
		assert.Equal(t, "Exercise", todos[0].TodoName)
		assert.Equal(t, "Meditate", todos[4].TodoName)
	})

	t.Run("first_n returns the prefix", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		c := todoContext(w, httptest.NewRequest("GET", "/todos?first_n=3", nil), "")

		handler.ListTodos(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var todos []models.Todo
		testutil.ParseJSONResponse(t, w, &todos)
		require.Len(t, todos, 3)
		assert.Equal(t, 1, todos[0].TodoID)
		assert.Equal(t, 3, todos[2].TodoID)
	})

	t.Run("priority serializes as its numeric code", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		c := todoContext(w, httptest.NewRequest("GET", "/todos?first_n=1", nil), "")

		handler.ListTodos(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"priority":2`)
	})

	t.Run("rejects a non-integer first_n", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		c := todoContext(w, httptest.NewRequest("GET", "/todos?first_n=many", nil), "")

		handler.ListTodos(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errResp models.ErrorResponse
		testutil.ParseJSONResponse(t, w, &errResp)
		assert.Equal(t, "INVALID_FIRST_N", errResp.Code)
	})
}

func TestGetTodo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the matching todo", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		c := todoContext(w, httptest.NewRequest("GET", "/todos/3", nil), "3")

		handler.GetTodo(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var todo models.Todo
		testutil.ParseJSONResponse(t, w, &todo)
		assert.Equal(t, 3, todo.TodoID)
		assert.Equal(t, "Shop", todo.TodoName)
		assert.Equal(t, models.PriorityHigh, todo.Priority)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		c := todoContext(w, httptest.NewRequest("GET", "/todos/99", nil), "99")

		handler.GetTodo(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var errResp models.ErrorResponse
		testutil.ParseJSONResponse(t, w, &errResp)
		assert.Equal(t, "TODO_NOT_FOUND", errResp.Code)
		assert.Equal(t, "Todo not found", errResp.Message)
	})

	t.Run("rejects a non-integer id", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		c := todoContext(w, httptest.NewRequest("GET", "/todos/abc", nil), "abc")

		handler.GetTodo(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateTodo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("creates a todo with the next id", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		req := testutil.MakeJSONRequest(t, "POST", "/todos", models.TodoCreate{
			TodoName:        "Cook",
			TodoDescription: "Kitchen",
			Priority:        models.PriorityHigh,
		})
		c := todoContext(w, req, "")

		handler.CreateTodo(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var todo models.Todo
		testutil.ParseJSONResponse(t, w, &todo)
		assert.Equal(t, 6, todo.TodoID)
		assert.Equal(t, "Cook", todo.TodoName)
		assert.Equal(t, models.PriorityHigh, todo.Priority)
	})

	t.Run("priority defaults to low when omitted", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		req := testutil.MakeJSONRequest(t, "POST", "/todos", map[string]interface{}{
			"todo_name":        "Cook",
			"todo_description": "Kitchen",
		})
		c := todoContext(w, req, "")

		handler.CreateTodo(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var todo models.Todo
		testutil.ParseJSONResponse(t, w, &todo)
		assert.Equal(t, models.PriorityLow, todo.Priority)
	})

	t.Run("name length bounds", func(t *testing.T) {
		cases := []struct {
			name       string
			todoName   string
			wantStatus int
		}{
			{"too short", "ab", http.StatusBadRequest},
			{"minimum length", "abc", http.StatusCreated},
			{"maximum length", strings.Repeat("x", 512), http.StatusCreated},
			{"too long", strings.Repeat("x", 513), http.StatusBadRequest},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				handler, _ := setupTodoHandler(t)

				w := httptest.NewRecorder()
				req := testutil.MakeJSONRequest(t, "POST", "/todos", map[string]interface{}{
					"todo_name":        tc.todoName,
					"todo_description": "somewhere",
				})
				c := todoContext(w, req, "")

				handler.CreateTodo(c)

				assert.Equal(t, tc.wantStatus, w.Code)
			})
		}
	})

	t.Run("description is required", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		req := testutil.MakeJSONRequest(t, "POST", "/todos", map[string]interface{}{
			"todo_name": "Cook",
		})
		c := todoContext(w, req, "")

		handler.CreateTodo(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errResp models.ErrorResponse
		testutil.ParseJSONResponse(t, w, &errResp)
		assert.Equal(t, "INVALID_INPUT", errResp.Code)
	})

	t.Run("rejects an out-of-range priority", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		req := testutil.MakeJSONRequest(t, "POST", "/todos", map[string]interface{}{
			"todo_name":        "Cook",
			"todo_description": "Kitchen",
			"priority":         7,
		})
		c := todoContext(w, req, "")

		handler.CreateTodo(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateTodo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("patch with only priority leaves other fields alone", func(t *testing.T) {
		handler, store := setupTodoHandler(t)

		w := httptest.NewRecorder()
		req := testutil.MakeJSONRequest(t, "PUT", "/todos/2", map[string]interface{}{
			"priority": 1,
		})
		c := todoContext(w, req, "2")

		handler.UpdateTodo(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var todo models.Todo
		testutil.ParseJSONResponse(t, w, &todo)
		assert.Equal(t, "Read", todo.TodoName)
		assert.Equal(t, "Library", todo.TodoDescription)
		assert.Equal(t, models.PriorityHigh, todo.Priority)

		stored, err := store.GetTodo(2)
		require.NoError(t, err)
		assert.Equal(t, models.PriorityHigh, stored.Priority)
	})

	t.Run("patch can overwrite every field", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		req := testutil.MakeJSONRequest(t, "PUT", "/todos/1", models.TodoUpdate{
			TodoName:        testutil.StringPtr("Swim"),
			TodoDescription: testutil.StringPtr("Pool"),
			Priority:        testutil.PriorityPtr(models.PriorityLow),
		})
		c := todoContext(w, req, "1")

		handler.UpdateTodo(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var todo models.Todo
		testutil.ParseJSONResponse(t, w, &todo)
		assert.Equal(t, "Swim", todo.TodoName)
		assert.Equal(t, "Pool", todo.TodoDescription)
		assert.Equal(t, models.PriorityLow, todo.Priority)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		req := testutil.MakeJSONRequest(t, "PUT", "/todos/99", map[string]interface{}{
			"priority": 1,
		})
		c := todoContext(w, req, "99")

		handler.UpdateTodo(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects a patch name that is too short", func(t *testing.T) {
		handler, _ := setupTodoHandler(t)

		w := httptest.NewRecorder()
		req := testutil.MakeJSONRequest(t, "PUT", "/todos/1", map[string]interface{}{
			"todo_name": "ab",
		})
		c := todoContext(w, req, "1")

		handler.UpdateTodo(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteTodo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the removed record in a deleted envelope", func(t *testing.T) {
		handler, store := setupTodoHandler(t)

		w := httptest.NewRecorder()
		c := todoContext(w, httptest.NewRequest("DELETE", "/todos/3", nil), "3")

		handler.DeleteTodo(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.DeletedTodo
		testutil.ParseJSONResponse(t, w, &resp)
		assert.Equal(t, 3, resp.Deleted.TodoID)
		assert.Equal(t, "Shop", resp.Deleted.TodoName)

		_, err := store.GetTodo(3)
		assert.ErrorIs(t, err, storage.ErrTodoNotFound)
	})

	t.Run("unknown id is not found and the store is untouched", func(t *testing.T) {
		handler, store := setupTodoHandler(t)

		w := httptest.NewRecorder()
		c := todoContext(w, httptest.NewRequest("DELETE", "/todos/99", nil), "99")

		handler.DeleteTodo(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		todos, err := store.ListTodos(nil)
		require.NoError(t, err)
		assert.Len(t, todos, 5)
	})
}

// TestTodoLifecycle drives the seeded service through a delete, a list and a
// create over real routing.
func TestTodoLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := storage.NewTodoStorage()
	require.NoError(t, store.Seed(storage.DefaultTodos()))
	handler := NewTodoHandler(store)

	router := gin.New()
	router.GET("/todos", handler.ListTodos)
	router.POST("/todos", handler.CreateTodo)
	router.GET("/todos/:todoId", handler.GetTodo)
	router.PUT("/todos/:todoId", handler.UpdateTodo)
	router.DELETE("/todos/:todoId", handler.DeleteTodo)

	// Delete "Shop"/Mall
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/todos/3", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var deleted models.DeletedTodo
	testutil.ParseJSONResponse(t, w, &deleted)
	assert.Equal(t, "Shop", deleted.Deleted.TodoName)
	assert.Equal(t, "Mall", deleted.Deleted.TodoDescription)

	// Remaining todos keep their order
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/todos", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var todos []models.Todo
	testutil.ParseJSONResponse(t, w, &todos)
	require.Len(t, todos, 4)
	ids := []int{todos[0].TodoID, todos[1].TodoID, todos[2].TodoID, todos[3].TodoID}
	assert.Equal(t, []int{1, 2, 4, 5}, ids)

	// The next create picks up after the highest live id
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeJSONRequest(t, "POST", "/todos", models.TodoCreate{
		TodoName:        "Garden",
		TodoDescription: "Backyard",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Todo
	testutil.ParseJSONResponse(t, w, &created)
	assert.Equal(t, 6, created.TodoID)
	assert.Equal(t, models.PriorityLow, created.Priority)
}
