package repository

import "daily/shared/result"

const (
	AddOK         result.Code = 0
	AddExists     result.Code = 5
	AddIncomplete result.Code = 10
)

const (
	LoginOK         result.Code = 0
	LoginNoMatch    result.Code = 5
	LoginIncomplete result.Code = 10
)

const (
	GetOK        result.Code = 0
	GetNotFound  result.Code = 5
	GetInvalidID result.Code = 10
)
