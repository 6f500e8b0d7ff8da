package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"daily/infras/otel"
	"daily/infras/postgres"
	"daily/internal/domains/memo/model"
	"daily/shared"
	"daily/shared/constant"
	gDto "daily/shared/dto"
	"daily/shared/failure"
	gRepo "daily/shared/repository"
	"daily/shared/result"
	"fmt"
	"strings"
)

type Memo interface {
	Add(ctx context.Context, memo *model.Memo) (result.Result, error)
	Delete(ctx context.Context, id int) (result.Result, error)
	Update(ctx context.Context, memo *model.Memo) (result.Result, error)
	GetAll(ctx context.Context) ([]model.Memo, result.Result, error)
	Search(ctx context.Context, text string) ([]model.Memo, result.Result, error)
}

type repositoryImpl struct {
	base gRepo.Repository[model.Memo]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Memo {
	return &repositoryImpl{
		base: gRepo.NewRepository[model.Memo](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel: otel,
	}
}

func (r *repositoryImpl) Add(ctx context.Context, memo *model.Memo) (result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memo.Add")
	defer scope.End()

	if memo == nil {
		return result.Result{}, failure.ErrInvalidArgument
	}

	if shared.IsBlank(memo.Title, memo.Content) {
		return result.Fail(AddIncomplete), nil
	}

	id, err := r.base.Insert(ctx, *memo)
	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to add memo: %w", err)
	}

	if id == 0 {
		return result.Fail(AddNotWritten), nil
	}

	memo.ID = id

	return result.OK(), nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memo.Delete")
	defer scope.End()

	if id <= 0 {
		return result.Fail(DeleteInvalidID), nil
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := r.base.Exist(ctx, filter)
	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to check memo: %w", err)
	}

	if !exist {
		return result.Fail(DeleteNotFound), nil
	}

	affected, err := r.base.Delete(ctx, filter)
	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to delete memo: %w", err)
	}

	if affected != 1 {
		return result.Fail(DeleteNotApplied), nil
	}

	return result.OK(), nil
}

func (r *repositoryImpl) Update(ctx context.Context, memo *model.Memo) (result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memo.Update")
	defer scope.End()

	if memo == nil {
		return result.Result{}, failure.ErrInvalidArgument
	}

	if shared.IsBlank(memo.Title, memo.Content) {
		return result.Fail(UpdateIncomplete), nil
	}

	filter := shared.FilterByID(memo.ID, model.FieldID, model.TableName)

	exist, err := r.base.Exist(ctx, filter)
	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to check memo: %w", err)
	}

	if !exist {
		return result.Fail(UpdateNotFound), nil
	}

	affected, err := r.base.Update(ctx, shared.TransformFields(memo, model.FieldID, model.FieldCreatedAt), filter)
	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to update memo: %w", err)
	}

	if affected != 1 {
		return result.Fail(UpdateNotApplied), nil
	}

	return result.OK(), nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Memo, result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memo.GetAll")
	defer scope.End()

	memos, err := r.base.GetAll(ctx, gDto.OrderBy(model.FieldID, gDto.SortDirAsc), gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)

		return nil, result.Result{}, fmt.Errorf("failed to get memos: %w", err)
	}

	return memos, result.Done(ListOK), nil
}

// Search matches text as a case-insensitive substring of the title or the content.
// Blank text matches every memo.
func (r *repositoryImpl) Search(ctx context.Context, text string) ([]model.Memo, result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memo.Search")
	defer scope.End()

	filter := gDto.FilterGroup{}
	if strings.TrimSpace(text) != "" {
		filter = gDto.Or(
			gDto.Filter{ArgName: "title_text", Field: model.FieldTitle, Value: text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "content_text", Field: model.FieldContent, Value: text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
		)
	}

	memos, err := r.base.GetAll(ctx, gDto.OrderBy(model.FieldID, gDto.SortDirAsc), filter)
	if err != nil {
		scope.TraceError(err)

		return nil, result.Result{}, fmt.Errorf("failed to search memos: %w", err)
	}

	return memos, result.Done(ListOK), nil
}
