package repository

import "daily/shared/result"

const (
	AddOK         result.Code = 0
	AddIncomplete result.Code = 5
	AddNotWritten result.Code = 10
)

const (
	DeleteOK         result.Code = 0
	DeleteInvalidID  result.Code = 5
	DeleteNotFound   result.Code = 10
	DeleteNotApplied result.Code = 15
)

const (
	UpdateOK         result.Code = 0
	UpdateIncomplete result.Code = 5
	UpdateNotFound   result.Code = 10
	UpdateNotApplied result.Code = 15
)

const (
	ListOK result.Code = 0
)
