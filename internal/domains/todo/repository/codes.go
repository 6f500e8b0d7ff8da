package repository

import "daily/shared/result"

const (
	AddOK         result.Code = 0
	AddIncomplete result.Code = 5
)

const (
	DeleteOK        result.Code = 0
	DeleteInvalidID result.Code = 5
	DeleteNotFound  result.Code = 10
)

// Update checks completeness before the id.
const (
	UpdateOK         result.Code = 0
	UpdateInvalidID  result.Code = 5
	UpdateNotFound   result.Code = 10
	UpdateIncomplete result.Code = 15
)

// Condition query codes name the branch that produced the list.
const (
	QueryAll               result.Code = 0
	QueryAllMatching       result.Code = 5
	QueryActive            result.Code = 10
	QueryActiveMatching    result.Code = 15
	QueryCompleted         result.Code = 20
	QueryCompletedMatching result.Code = 25
	QueryInvalidStatus     result.Code = 30
)

const (
	StatisticsOK result.Code = 0
)

const (
	ToggleOK        result.Code = 0
	ToggleInvalidID result.Code = 5
	ToggleNotFound  result.Code = 10
)

// Status filters accepted by ConditionQuery.
const (
	FilterAll       = 0
	FilterActive    = 1
	FilterCompleted = 2
)
