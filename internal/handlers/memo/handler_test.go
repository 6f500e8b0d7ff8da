package memo_test

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
	"daily/internal/domains/memo/model/dto"
	memoService "daily/internal/domains/memo/service/mocks"
	"daily/internal/handlers/memo"
	"daily/shared/envelope"
	"daily/transport/http/response"
)

func newRouter(t *testing.T) (http.Handler, *memoService.MockMemo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := memoService.NewMockMemo(ctrl)

	handler := memo.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope.Envelope {
	t.Helper()

	var env envelope.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestHandler_AddMemo(t *testing.T) {
	t.Run("valid body reaches the service", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Add(gomock.Any(), dto.AddMemoRequest{Title: "Groceries", Content: "milk", Status: 1}).
			Return(envelope.New(envelope.Success, "memo added", 0))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/Memo/AddMemo", strings.NewReader(`{"title":"Groceries","content":"milk","status":1}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, envelope.Success, env.ResultCode)
		assert.Equal(t, "memo added", env.Msg)
	})

	t.Run("missing field is a validation problem", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/Memo/AddMemo", strings.NewReader(`{"title":"Groceries"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

		var problem response.Problem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
		assert.Equal(t, http.StatusBadRequest, problem.Status)
		assert.Equal(t, "One or more validation errors occurred.", problem.Title)
		assert.Equal(t, []string{"content must not be blank"}, problem.Errors["content"])
	})
}

func TestHandler_EditMemo(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Edit(gomock.Any(), dto.EditMemoRequest{MemoID: 3, Title: "a", Content: "b"}).
		Return(envelope.New(envelope.NotFound, "memo not found", 10))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/Memo/EditMemo", strings.NewReader(`{"memoId":3,"title":"a","content":"b","status":0}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, envelope.NotFound, env.ResultCode)
	assert.InDelta(t, 10, env.ResultData, 0)
}

func TestHandler_DeleteMemo(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		url        string
		setupMock  func(svc *memoService.MockMemo)
		wantStatus int
	}{
		{
			name:   "GET with id",
			method: http.MethodGet,
			url:    "/Memo/DeleteMemo?id=5",
			setupMock: func(svc *memoService.MockMemo) {
				svc.EXPECT().Delete(gomock.Any(), 5).Return(envelope.New(envelope.Success, "memo deleted", 0))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "DELETE with id",
			method: http.MethodDelete,
			url:    "/Memo/DeleteMemo?id=5",
			setupMock: func(svc *memoService.MockMemo) {
				svc.EXPECT().Delete(gomock.Any(), 5).Return(envelope.New(envelope.Success, "memo deleted", 0))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "missing id is zero",
			method: http.MethodGet,
			url:    "/Memo/DeleteMemo",
			setupMock: func(svc *memoService.MockMemo) {
				svc.EXPECT().Delete(gomock.Any(), 0).Return(envelope.New(envelope.DtoError, envelope.MsgServerBusy, nil))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed id",
			method:     http.MethodGet,
			url:        "/Memo/DeleteMemo?id=abc",
			setupMock:  func(*memoService.MockMemo) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Lists(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any()).Return(envelope.New(envelope.Success, "fetched all memos", []dto.MemoResponse{}))
	svc.EXPECT().ConditionQuery(gomock.Any(), "milk").Return(envelope.New(envelope.Success, "fetched matching memos", []dto.MemoResponse{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/Memo/GetAllMemoList", nil))
	assert.Equal(t, "fetched all memos", decodeEnvelope(t, rec).Msg)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/Memo/GetConditionQueryMemoList?searchText=milk", nil))
	assert.Equal(t, "fetched matching memos", decodeEnvelope(t, rec).Msg)
}
