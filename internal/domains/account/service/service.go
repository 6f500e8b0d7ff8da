package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"daily/infras/otel"
	"daily/internal/domains/account/model/dto"
	"daily/internal/domains/account/repository"
	"daily/shared/constant"
	"daily/shared/envelope"
	"daily/shared/result"

	"github.com/rs/zerolog/log"
)

const (
	msgLoginIncomplete = "account or password is empty"
	msgLoginNoMatch    = "wrong account or password"
	msgLoginOK         = "login successful"
	msgAccountExists   = "account already exists"
	msgRegisterOK      = "registration successful"
)

type Account interface {
	Login(ctx context.Context, req dto.LoginRequest) envelope.Envelope
	Register(ctx context.Context, req dto.RegisterRequest) envelope.Envelope
}

type serviceImpl struct {
	repo repository.Account
	otel otel.Otel
}

func New(repo repository.Account, otel otel.Otel) Account {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.Login")
	defer scope.End()

	name, res, err := s.repo.Login(ctx, req.Account, req.Password)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("account", req.Account).Msg("failed to log in")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	switch {
	case res.Success && res.Code == repository.LoginOK:
		log.Info().Str("account", req.Account).Msg("account logged in")

		return envelope.New(envelope.Success, msgLoginOK, name)
	case res.Code == repository.LoginIncomplete:
		return envelope.New(envelope.DtoError, msgLoginIncomplete, nil)
	case res.Code == repository.LoginNoMatch:
		return envelope.New(envelope.NotFound, msgLoginNoMatch, res.Code)
	}

	return unmapped(res)
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.Register")
	defer scope.End()

	account := req.ToModel()

	res, err := s.repo.Add(ctx, &account)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("account", req.Account).Msg("failed to register account")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	switch {
	case res.Success && res.Code == repository.AddOK:
		log.Info().Str("account", req.Account).Int("id", account.ID).Msg("account registered")

		return envelope.New(envelope.Success, msgRegisterOK, res.Code)
	case res.Code == repository.AddIncomplete:
		return envelope.New(envelope.DtoError, envelope.MsgServerBusy, nil)
	case res.Code == repository.AddExists:
		return envelope.New(envelope.Exist, msgAccountExists, res.Code)
	}

	return unmapped(res)
}

func unmapped(res result.Result) envelope.Envelope {
	log.Warn().Bool("success", res.Success).Int("code", int(res.Code)).Msg("unmapped account repository result")

	return envelope.ServerBusy()
}
