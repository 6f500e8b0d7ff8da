package client

import (
	"context"
	accountDto "daily/internal/domains/account/model/dto"
	memoDto "daily/internal/domains/memo/model/dto"
	todoDto "daily/internal/domains/todo/model/dto"
	"daily/shared/constant"
	"daily/shared/envelope"
	"net/http"
	"net/url"
	"strconv"
)

const (
	routeLogin    = "Account/Login"
	routeRegister = "Account/Register"

	routeMemoAll    = "Memo/GetAllMemoList"
	routeMemoQuery  = "Memo/GetConditionQueryMemoList"
	routeMemoAdd    = "Memo/AddMemo"
	routeMemoEdit   = "Memo/EditMemo"
	routeMemoDelete = "Memo/DeleteMemo"

	routeToDoStatistics = "ToDo/StatisticsToDo"
	routeToDoAll        = "ToDo/GetAllToDoList"
	routeToDoActive     = "ToDo/GetActiveToDoList"
	routeToDoCompleted  = "ToDo/GetCompletedToDoList"
	routeToDoQuery      = "ToDo/GetConditionQueryToDoList"
	routeToDoAdd        = "ToDo/AddToDo"
	routeToDoEdit       = "ToDo/EditToDo"
	routeToDoDelete     = "ToDo/DeleteToDo"
	routeToDoToggle     = "ToDo/UpdateToDoStatus"
)

func withQuery(route string, params url.Values) string {
	return route + "?" + params.Encode()
}

func withID(route string, id int) string {
	return withQuery(route, url.Values{constant.RequestParamID: {strconv.Itoa(id)}})
}

func (c *Client) get(ctx context.Context, route string) envelope.Envelope {
	return c.Execute(ctx, Request{Route: route, Method: http.MethodGet})
}

func (c *Client) post(ctx context.Context, route string, body any) envelope.Envelope {
	return c.Execute(ctx, Request{Route: route, Method: http.MethodPost, Parameters: body, ContentType: constant.ContentTypeJSON})
}

// Login expects pwd already hashed with HashPassword.
func (c *Client) Login(ctx context.Context, account, pwd string) envelope.Envelope {
	return c.get(ctx, withQuery(routeLogin, url.Values{
		constant.RequestParamLogAccount: {account},
		constant.RequestParamLogPwd:     {pwd},
	}))
}

func (c *Client) Register(ctx context.Context, req accountDto.RegisterRequest) envelope.Envelope {
	return c.post(ctx, routeRegister, req)
}

func (c *Client) GetAllMemos(ctx context.Context) envelope.Envelope {
	return c.get(ctx, routeMemoAll)
}

func (c *Client) QueryMemos(ctx context.Context, searchText string) envelope.Envelope {
	return c.get(ctx, withQuery(routeMemoQuery, url.Values{constant.RequestParamSearchText: {searchText}}))
}

func (c *Client) AddMemo(ctx context.Context, req memoDto.AddMemoRequest) envelope.Envelope {
	return c.post(ctx, routeMemoAdd, req)
}

func (c *Client) EditMemo(ctx context.Context, req memoDto.EditMemoRequest) envelope.Envelope {
	return c.post(ctx, routeMemoEdit, req)
}

func (c *Client) DeleteMemo(ctx context.Context, id int) envelope.Envelope {
	return c.get(ctx, withID(routeMemoDelete, id))
}

func (c *Client) ToDoStatistics(ctx context.Context) envelope.Envelope {
	return c.get(ctx, routeToDoStatistics)
}

func (c *Client) GetAllToDos(ctx context.Context) envelope.Envelope {
	return c.get(ctx, routeToDoAll)
}

func (c *Client) GetActiveToDos(ctx context.Context) envelope.Envelope {
	return c.get(ctx, routeToDoActive)
}

func (c *Client) GetCompletedToDos(ctx context.Context) envelope.Envelope {
	return c.get(ctx, routeToDoCompleted)
}

// QueryToDos filters by status (0 all, 1 active, 2 completed) and search text.
func (c *Client) QueryToDos(ctx context.Context, status int, searchText string) envelope.Envelope {
	return c.get(ctx, withQuery(routeToDoQuery, url.Values{
		constant.RequestParamStatus:     {strconv.Itoa(status)},
		constant.RequestParamSearchText: {searchText},
	}))
}

func (c *Client) AddToDo(ctx context.Context, req todoDto.AddToDoRequest) envelope.Envelope {
	return c.post(ctx, routeToDoAdd, req)
}

func (c *Client) EditToDo(ctx context.Context, req todoDto.EditToDoRequest) envelope.Envelope {
	return c.post(ctx, routeToDoEdit, req)
}

func (c *Client) DeleteToDo(ctx context.Context, id int) envelope.Envelope {
	return c.get(ctx, withID(routeToDoDelete, id))
}

func (c *Client) ToggleToDo(ctx context.Context, id int) envelope.Envelope {
	return c.get(ctx, withID(routeToDoToggle, id))
}
