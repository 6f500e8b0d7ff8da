package dto

import (
	"daily/internal/domains/memo/model"
	"daily/shared/constant"
	"daily/shared/timezone"
)

type AddMemoRequest struct {
	MemoID  int    `json:"memoId"`
	Title   string `json:"title" validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
	Status  int    `json:"status" validate:"min=0,max=1"`
}

func (r *AddMemoRequest) ToModel() model.Memo {
	return model.Memo{
		Title:   r.Title,
		Content: r.Content,
		Status:  r.Status,
	}
}

type EditMemoRequest struct {
	MemoID  int    `json:"memoId"`
	Title   string `json:"title" validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
	Status  int    `json:"status" validate:"min=0,max=1"`
}

func (r *EditMemoRequest) ToModel() model.Memo {
	return model.Memo{
		ID:      r.MemoID,
		Title:   r.Title,
		Content: r.Content,
		Status:  r.Status,
	}
}

type MemoResponse struct {
	MemoID     int    `json:"memoId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Status     int    `json:"status"`
	CreateTime string `json:"createTime"`
}

func (r *MemoResponse) FromModel(memo model.Memo) {
	r.MemoID = memo.ID
	r.Title = memo.Title
	r.Content = memo.Content
	r.Status = memo.Status
	r.CreateTime = timezone.Format(memo.CreatedAt, constant.DateFormat)
}

// FromModels maps a list of memos, returning an empty (never nil) slice.
func FromModels(memos []model.Memo) []MemoResponse {
	res := make([]MemoResponse, len(memos))
	for i, memo := range memos {
		res[i].FromModel(memo)
	}

	return res
}
