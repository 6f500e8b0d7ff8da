package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"daily/infras/otel/mocks"
	accountMocks "daily/internal/domains/account/mocks"
	"daily/internal/domains/account/model"
	"daily/internal/domains/account/model/dto"
	"daily/internal/domains/account/repository"
	"daily/internal/domains/account/service"
	"daily/shared/envelope"
	"daily/shared/failure"
	"daily/shared/result"
)

const adminHash = "202CB962AC59075B964B07152D234B70"

func newService(t *testing.T) (service.Account, *accountMocks.MockAccount) {
	t.Helper()

	mockRepo := accountMocks.NewMockAccount(gomock.NewController(t))

	return service.New(mockRepo, mocks.NewOtel()), mockRepo
}

func TestAccountService_Login(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.LoginRequest
		repoName string
		res      result.Result
		err      error
		want     envelope.Envelope
	}{
		{
			name:     "successful login",
			req:      dto.LoginRequest{Account: "admin", Password: adminHash},
			repoName: "Administrator",
			res:      result.OK(),
			want:     envelope.New(envelope.Success, "login successful", "Administrator"),
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Account: "admin", Password: "bad"},
			res:  result.Fail(repository.LoginNoMatch),
			want: envelope.New(envelope.NotFound, "wrong account or password", repository.LoginNoMatch),
		},
		{
			name: "blank credentials",
			req:  dto.LoginRequest{},
			res:  result.Fail(repository.LoginIncomplete),
			want: envelope.New(envelope.DtoError, "account or password is empty", nil),
		},
		{
			name: "storage fault",
			req:  dto.LoginRequest{Account: "admin", Password: adminHash},
			err:  failure.Storage("login", errors.New("timeout")),
			want: envelope.ServerBusy(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			repo.EXPECT().Login(gomock.Any(), tt.req.Account, tt.req.Password).Return(tt.repoName, tt.res, tt.err)

			assert.Equal(t, tt.want, svc.Login(context.Background(), tt.req))
		})
	}
}

func TestAccountService_Register(t *testing.T) {
	req := dto.RegisterRequest{Name: "Jane", Account: "jane", Pwd: adminHash}

	tests := []struct {
		name string
		res  result.Result
		err  error
		want envelope.Envelope
	}{
		{name: "registered", res: result.OK(), want: envelope.New(envelope.Success, "registration successful", repository.AddOK)},
		{name: "duplicate", res: result.Fail(repository.AddExists), want: envelope.New(envelope.Exist, "account already exists", repository.AddExists)},
		{name: "incomplete", res: result.Fail(repository.AddIncomplete), want: envelope.New(envelope.DtoError, envelope.MsgServerBusy, nil)},
		{name: "unmapped", res: result.Fail(99), want: envelope.ServerBusy()},
		{name: "storage fault", err: failure.Storage("insert", errors.New("refused")), want: envelope.ServerBusy()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			repo.EXPECT().
				Add(gomock.Any(), &model.Account{Name: "Jane", Account: "jane", Pwd: adminHash}).
				Return(tt.res, tt.err)

			assert.Equal(t, tt.want, svc.Register(context.Background(), req))
		})
	}
}
