package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"daily/infras/otel"
	"daily/infras/postgres"
	"daily/internal/domains/account/model"
	"daily/shared"
	"daily/shared/constant"
	gDto "daily/shared/dto"
	"daily/shared/failure"
	gRepo "daily/shared/repository"
	"daily/shared/result"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type Account interface {
	Add(ctx context.Context, account *model.Account) (result.Result, error)
	Login(ctx context.Context, account, pwd string) (name string, res result.Result, err error)
	GetByID(ctx context.Context, id int) (model.Account, result.Result, error)
}

type repositoryImpl struct {
	base gRepo.Repository[model.Account]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Account {
	return &repositoryImpl{
		base: gRepo.NewRepository[model.Account](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel: otel,
	}
}

// Add registers a new account. The handle is checked first; a concurrent
// duplicate that slips past the check is caught by the unique constraint.
func (r *repositoryImpl) Add(ctx context.Context, account *model.Account) (result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".account.Add")
	defer scope.End()

	if account == nil {
		return result.Result{}, failure.ErrInvalidArgument
	}

	if shared.IsBlank(account.Account, account.Name, account.Pwd) {
		return result.Fail(AddIncomplete), nil
	}

	exist, err := r.base.Exist(ctx, gDto.And(handleFilter(account.Account)))
	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to check account: %w", err)
	}

	if exist {
		return result.Fail(AddExists), nil
	}

	id, err := r.base.Insert(ctx, *account)
	if isUniqueViolation(err) {
		return result.Fail(AddExists), nil
	}

	if err != nil {
		scope.TraceError(err)

		return result.Result{}, fmt.Errorf("failed to add account: %w", err)
	}

	account.ID = id

	return result.OK(), nil
}

// Login matches account and pwd exactly and returns the display name.
func (r *repositoryImpl) Login(ctx context.Context, account, pwd string) (string, result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".account.Login")
	defer scope.End()

	if shared.IsBlank(account, pwd) {
		return constant.Empty, result.Fail(LoginIncomplete), nil
	}

	filter := gDto.And(
		handleFilter(account),
		gDto.Filter{Field: model.FieldPwd, Value: pwd, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)

	found, ok, err := r.base.Get(ctx, filter)
	if err != nil {
		scope.TraceError(err)

		return constant.Empty, result.Result{}, fmt.Errorf("failed to find account: %w", err)
	}

	if !ok {
		return constant.Empty, result.Fail(LoginNoMatch), nil
	}

	return found.Name, result.OK(), nil
}

func (r *repositoryImpl) GetByID(ctx context.Context, id int) (model.Account, result.Result, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".account.GetByID")
	defer scope.End()

	if id <= 0 {
		return model.Account{}, result.Fail(GetInvalidID), nil
	}

	found, ok, err := r.base.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return model.Account{}, result.Result{}, fmt.Errorf("failed to get account: %w", err)
	}

	if !ok {
		return model.Account{}, result.Fail(GetNotFound), nil
	}

	return found, result.OK(), nil
}

func handleFilter(account string) gDto.Filter {
	return gDto.Filter{Field: model.FieldAccount, Value: account, Operator: gDto.FilterOperatorEq, Table: model.TableName}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation
}
