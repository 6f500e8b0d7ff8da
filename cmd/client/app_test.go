package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(t *testing.T, answer string, args ...string) (out string, uri string, body string, err error) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		uri, body = r.URL.RequestURI(), string(raw)

		_, _ = w.Write([]byte(answer))
	}))
	defer srv.Close()

	buf := &bytes.Buffer{}
	app := newApp(buf)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err = app.Run(append([]string{"daily", "--base-url", srv.URL + "/api/"}, args...))

	return buf.String(), uri, body, err
}

func TestApp_Login(t *testing.T) {
	out, uri, _, err := run(t, `{"resultCode":1,"msg":"login successful","resultData":"Administrator"}`,
		"account", "login", "--account", "admin", "--password", "123")

	require.NoError(t, err)
	assert.Equal(t, "/api/Account/Login?logAccount=admin&logPassword=202CB962AC59075B964B07152D234B70", uri)
	assert.Contains(t, out, `"resultData": "Administrator"`)
}

func TestApp_TodoAdd(t *testing.T) {
	_, uri, body, err := run(t, `{"resultCode":1,"msg":"todo added","resultData":0}`,
		"todo", "add", "--title", "Run", "--content", "5k")

	require.NoError(t, err)
	assert.Equal(t, "/api/ToDo/AddToDo", uri)
	assert.JSONEq(t, `{"title":"Run","content":"5k","status":0}`, body)
}

func TestApp_MemoListSearch(t *testing.T) {
	_, uri, _, err := run(t, `{"resultCode":1,"msg":"fetched matching memos","resultData":[]}`,
		"memo", "list", "--search", "milk")

	require.NoError(t, err)
	assert.Equal(t, "/api/Memo/GetConditionQueryMemoList?searchText=milk", uri)
}

func TestApp_NotSuccessExitsNonZero(t *testing.T) {
	out, uri, _, err := run(t, `{"resultCode":-2,"msg":"todo not found","resultData":10}`,
		"todo", "toggle", "--id", "9")

	require.Error(t, err)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, exitCodeNotSuccess, exitErr.ExitCode())
	assert.Equal(t, "/api/ToDo/UpdateToDoStatus?id=9", uri)
	assert.Contains(t, out, `"msg": "todo not found"`)
}
