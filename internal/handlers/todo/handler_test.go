package todo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"daily/infras/otel/mocks"
	"daily/internal/domains/todo/model/dto"
	todoService "daily/internal/domains/todo/service/mocks"
	"daily/internal/handlers/todo"
	"daily/shared/envelope"
	"daily/transport/http/response"
)

func newRouter(t *testing.T) (http.Handler, *todoService.MockTodo) {
	t.Helper()

	svc := todoService.NewMockTodo(gomock.NewController(t))

	handler := todo.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, url, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
	}

	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_GetRoutes(t *testing.T) {
	ok := envelope.New(envelope.Success, "ok", nil)

	tests := []struct {
		name      string
		url       string
		setupMock func(svc *todoService.MockTodo)
	}{
		{
			name:      "statistics",
			url:       "/ToDo/StatisticsToDo",
			setupMock: func(svc *todoService.MockTodo) { svc.EXPECT().Statistics(gomock.Any()).Return(ok) },
		},
		{
			name:      "all",
			url:       "/ToDo/GetAllToDoList",
			setupMock: func(svc *todoService.MockTodo) { svc.EXPECT().GetAll(gomock.Any()).Return(ok) },
		},
		{
			name:      "active",
			url:       "/ToDo/GetActiveToDoList",
			setupMock: func(svc *todoService.MockTodo) { svc.EXPECT().GetActive(gomock.Any()).Return(ok) },
		},
		{
			name:      "completed",
			url:       "/ToDo/GetCompletedToDoList",
			setupMock: func(svc *todoService.MockTodo) { svc.EXPECT().GetCompleted(gomock.Any()).Return(ok) },
		},
		{
			name: "condition query",
			url:  "/ToDo/GetConditionQueryToDoList?status=2&searchText=run",
			setupMock: func(svc *todoService.MockTodo) {
				svc.EXPECT().ConditionQuery(gomock.Any(), 2, "run").Return(ok)
			},
		},
		{
			name: "condition query defaults",
			url:  "/ToDo/GetConditionQueryToDoList",
			setupMock: func(svc *todoService.MockTodo) {
				svc.EXPECT().ConditionQuery(gomock.Any(), 0, "").Return(ok)
			},
		},
		{
			name:      "delete",
			url:       "/ToDo/DeleteToDo?id=4",
			setupMock: func(svc *todoService.MockTodo) { svc.EXPECT().Delete(gomock.Any(), 4).Return(ok) },
		},
		{
			name:      "toggle",
			url:       "/ToDo/UpdateToDoStatus?id=4",
			setupMock: func(svc *todoService.MockTodo) { svc.EXPECT().UpdateStatus(gomock.Any(), 4).Return(ok) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodGet, tt.url, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"resultCode":1,"msg":"ok","resultData":null}`, rec.Body.String())
		})
	}
}

func TestHandler_MalformedQuery(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		field string
		msg   string
	}{
		{name: "status", url: "/ToDo/GetConditionQueryToDoList?status=x", field: "status", msg: "invalid status parameter"},
		{name: "delete id", url: "/ToDo/DeleteToDo?id=1.5", field: "id", msg: "invalid id parameter"},
		{name: "toggle id", url: "/ToDo/UpdateToDoStatus?id=one", field: "id", msg: "invalid id parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			rec := serve(router, http.MethodGet, tt.url, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var problem response.Problem
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, []string{tt.msg}, problem.Errors[tt.field])
		})
	}
}

func TestHandler_AddToDo(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().
			Add(gomock.Any(), dto.AddToDoRequest{Title: "Run", Content: "5k"}).
			Return(envelope.New(envelope.Success, "todo added", 0))

		rec := serve(router, http.MethodPost, "/ToDo/AddToDo", `{"title":"Run","content":"5k","status":0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"resultCode":1,"msg":"todo added","resultData":0}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/ToDo/AddToDo", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_EditToDo(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().
		Edit(gomock.Any(), dto.EditToDoRequest{ToDoID: 2, Title: "Run", Content: "10k", Status: 1}).
		Return(envelope.New(envelope.Success, "todo edited", 0))

	rec := serve(router, http.MethodPost, "/ToDo/EditToDo", `{"toDoId":2,"title":"Run","content":"10k","status":1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}
