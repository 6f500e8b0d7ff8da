package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"daily/infras/otel"
	"daily/infras/postgres"
	"daily/internal/domains/todo/model"
	"daily/shared"
	"daily/shared/constant"
	gDto "daily/shared/dto"
	"daily/shared/failure"
	gRepo "daily/shared/repository"
	"daily/shared/result"
	"fmt"
	"strings"
)

const toggleStatusQuery = "UPDATE " + model.TableName + " SET " + model.FieldStatus + " = 1 - " + model.FieldStatus +
	" WHERE " + model.FieldID + " = :" + model.FieldID

type Todo interface {
	Add(ctx context.Context, todo *model.Todo) (result.Result, error)
	Delete(ctx context.Context, id int) (result.Result, error)
	Update(ctx context.Context, todo *model.Todo) (result.Result, error)
	ConditionQuery(ctx context.Context, status int, text string) ([]model.Todo, result.Result, error)
	Statistics(ctx context.Context) (total, completed int, res result.Result, err error)
	ToggleStatus(ctx context.Context, id int) (result.Result, error)
}

type repositoryImpl struct {
	base gRepo.Repository[model.Todo]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		base: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel: otel,
	}
}

func (r *repositoryImpl) Add(ctx context.Context, todo *model.Todo) (result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Add")
	defer scope.End()

	if todo == nil {
		return result.Result{}, failure.ErrInvalidArgument
	}

	if shared.IsBlank(todo.Title, todo.Content) {
		return result.Fail(AddIncomplete), nil
	}

	id, err := r.base.Insert(ctx, *todo)
	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to add todo: %w", err)
	}

	todo.ID = id

	return result.OK(), nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Delete")
	defer scope.End()

	if id <= 0 {
		return result.Fail(DeleteInvalidID), nil
	}

	affected, err := r.base.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to delete todo: %w", err)
	}

	if affected == 0 {
		return result.Fail(DeleteNotFound), nil
	}

	return result.OK(), nil
}

func (r *repositoryImpl) Update(ctx context.Context, todo *model.Todo) (result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Update")
	defer scope.End()

	if todo == nil {
		return result.Result{}, failure.ErrInvalidArgument
	}

	if shared.IsBlank(todo.Title, todo.Content) {
		return result.Fail(UpdateIncomplete), nil
	}

	if todo.ID <= 0 {
		return result.Fail(UpdateInvalidID), nil
	}

	fields := shared.TransformFields(todo, model.FieldID, model.FieldCreatedAt)

	affected, err := r.base.Update(ctx, fields, shared.FilterByID(todo.ID, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to update todo: %w", err)
	}

	if affected == 0 {
		return result.Fail(UpdateNotFound), nil
	}

	return result.OK(), nil
}

// ConditionQuery lists todos by status filter (all, active, completed) and an
// optional case-insensitive substring of title or content. The code names the
// branch taken; an unknown status fails with a nil list.
func (r *repositoryImpl) ConditionQuery(ctx context.Context, status int, text string) ([]model.Todo, result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.ConditionQuery")
	defer scope.End()

	filters := []any{}

	var code result.Code

	switch status {
	case FilterAll:
		code = QueryAll
	case FilterActive:
		code = QueryActive
		filters = append(filters, statusFilter(model.StatusActive))
	case FilterCompleted:
		code = QueryCompleted
		filters = append(filters, statusFilter(model.StatusCompleted))
	default:
		return nil, result.Fail(QueryInvalidStatus), nil
	}

	if strings.TrimSpace(text) != "" {
		code += QueryAllMatching
		filters = append(filters, textFilter(text))
	}

	todos, err := r.base.GetAll(ctx, gDto.OrderBy(model.FieldID, gDto.SortDirAsc), gDto.And(filters...))
	if err != nil {
		scope.TraceError(err)

		return nil, result.Result{}, fmt.Errorf("failed to query todos: %w", err)
	}

	return todos, result.Done(code), nil
}

func (r *repositoryImpl) Statistics(ctx context.Context) (total, completed int, res result.Result, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Statistics")
	defer scope.End()

	total, err = r.base.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)

		return 0, 0, result.Result{}, fmt.Errorf("failed to count todos: %w", err)
	}

	completed, err = r.base.Count(ctx, gDto.And(statusFilter(model.StatusCompleted)))
	if err != nil {
		scope.TraceError(err)

		return 0, 0, result.Result{}, fmt.Errorf("failed to count completed todos: %w", err)
	}

	return total, completed, result.OK(), nil
}

// ToggleStatus flips status between active and completed in a single statement.
func (r *repositoryImpl) ToggleStatus(ctx context.Context, id int) (result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.ToggleStatus")
	defer scope.End()

	if id <= 0 {
		return result.Fail(ToggleInvalidID), nil
	}

	affected, err := r.base.Exec(ctx, "ToggleStatus", toggleStatusQuery, map[string]any{model.FieldID: id})
	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to toggle todo status: %w", err)
	}

	if affected == 0 {
		return result.Fail(ToggleNotFound), nil
	}

	return result.OK(), nil
}

func statusFilter(status int) gDto.Filter {
	return gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: model.TableName}
}

func textFilter(text string) gDto.FilterGroup {
	return gDto.Or(
		gDto.Filter{ArgName: "title_text", Field: model.FieldTitle, Value: text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
		gDto.Filter{ArgName: "content_text", Field: model.FieldContent, Value: text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
	)
}
