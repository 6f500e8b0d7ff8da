package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"daily/infras/otel"
	"daily/internal/domains/memo/model/dto"
	"daily/internal/domains/memo/repository"
	"daily/shared"
	"daily/shared/constant"
	"daily/shared/envelope"
	"daily/shared/result"

	"github.com/rs/zerolog/log"
)

const (
	msgMemoAdded      = "memo added"
	msgMemoDeleted    = "memo deleted"
	msgMemoEdited     = "memo edited"
	msgMemoIncomplete = "memo information is incomplete"
	msgMemoNotFound   = "memo not found"
	msgMemoListAll    = "fetched all memos"
	msgMemoListQuery  = "fetched matching memos"
)

type Memo interface {
	Add(ctx context.Context, req dto.AddMemoRequest) envelope.Envelope
	Delete(ctx context.Context, id int) envelope.Envelope
	Edit(ctx context.Context, req dto.EditMemoRequest) envelope.Envelope
	GetAll(ctx context.Context) envelope.Envelope
	ConditionQuery(ctx context.Context, searchText string) envelope.Envelope
}

type serviceImpl struct {
	repo repository.Memo
	otel otel.Otel
}

func New(repo repository.Memo, otel otel.Otel) Memo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddMemoRequest) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".memo.Add")
	defer scope.End()

	if shared.IsBlank(req.Title, req.Content) {
		return envelope.New(envelope.DtoNotComplete, msgMemoIncomplete, nil)
	}

	memo := req.ToModel()

	res, err := s.repo.Add(ctx, &memo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add memo")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	switch {
	case res.Success && res.Code == repository.AddOK:
		return envelope.New(envelope.Success, msgMemoAdded, res.Code)
	case res.Code == repository.AddIncomplete:
		return envelope.New(envelope.DtoNotComplete, msgMemoIncomplete, res.Code)
	case res.Code == repository.AddNotWritten:
		return envelope.New(envelope.DataBaseError, envelope.MsgServerBusy, res.Code)
	}

	return unmapped(res)
}

func (s *serviceImpl) Delete(ctx context.Context, id int) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".memo.Delete")
	defer scope.End()

	if id <= 0 {
		return envelope.New(envelope.DtoError, envelope.MsgServerBusy, nil)
	}

	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("id", id).Msg("failed to delete memo")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	switch {
	case res.Success && res.Code == repository.DeleteOK:
		return envelope.New(envelope.Success, msgMemoDeleted, res.Code)
	case res.Code == repository.DeleteInvalidID:
		return envelope.New(envelope.DtoError, envelope.MsgServerBusy, res.Code)
	case res.Code == repository.DeleteNotFound:
		return envelope.New(envelope.NotFound, msgMemoNotFound, res.Code)
	case res.Code == repository.DeleteNotApplied:
		return envelope.New(envelope.DataBaseError, envelope.MsgServerBusy, res.Code)
	}

	return unmapped(res)
}

func (s *serviceImpl) Edit(ctx context.Context, req dto.EditMemoRequest) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".memo.Edit")
	defer scope.End()

	if shared.IsBlank(req.Title, req.Content) {
		return envelope.New(envelope.DtoNotComplete, msgMemoIncomplete, nil)
	}

	memo := req.ToModel()

	res, err := s.repo.Update(ctx, &memo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("id", req.MemoID).Msg("failed to edit memo")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	switch {
	case res.Success && res.Code == repository.UpdateOK:
		return envelope.New(envelope.Success, msgMemoEdited, res.Code)
	case res.Code == repository.UpdateIncomplete:
		return envelope.New(envelope.DtoNotComplete, msgMemoIncomplete, res.Code)
	case res.Code == repository.UpdateNotFound:
		return envelope.New(envelope.NotFound, msgMemoNotFound, res.Code)
	case res.Code == repository.UpdateNotApplied:
		return envelope.New(envelope.DataBaseError, envelope.MsgServerBusy, res.Code)
	}

	return unmapped(res)
}

func (s *serviceImpl) GetAll(ctx context.Context) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".memo.GetAll")
	defer scope.End()

	memos, res, err := s.repo.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get memos")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	if res.Success && res.Code == repository.ListOK {
		return envelope.New(envelope.Success, msgMemoListAll, dto.FromModels(memos))
	}

	return unmapped(res)
}

func (s *serviceImpl) ConditionQuery(ctx context.Context, searchText string) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".memo.ConditionQuery")
	defer scope.End()

	memos, res, err := s.repo.Search(ctx, searchText)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("searchText", searchText).Msg("failed to search memos")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	if res.Success && res.Code == repository.ListOK {
		return envelope.New(envelope.Success, msgMemoListQuery, dto.FromModels(memos))
	}

	return unmapped(res)
}

func unmapped(res result.Result) envelope.Envelope {
	log.Warn().Bool("success", res.Success).Int("code", int(res.Code)).Msg("unmapped memo repository result")

	return envelope.ServerBusy()
}
