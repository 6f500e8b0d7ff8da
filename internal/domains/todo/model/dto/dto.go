package dto

import (
	"daily/internal/domains/todo/model"
	"fmt"
)

type AddToDoRequest struct {
	Title   string `json:"title" validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
	Status  int    `json:"status" validate:"min=0,max=1"`
}

func (r *AddToDoRequest) ToModel() model.Todo {
	return model.Todo{
		Title:   r.Title,
		Content: r.Content,
		Status:  r.Status,
	}
}

type EditToDoRequest struct {
	ToDoID  int    `json:"toDoId"`
	Title   string `json:"title" validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
	Status  int    `json:"status" validate:"min=0,max=1"`
}

func (r *EditToDoRequest) ToModel() model.Todo {
	return model.Todo{
		ID:      r.ToDoID,
		Title:   r.Title,
		Content: r.Content,
		Status:  r.Status,
	}
}

type ToDoResponse struct {
	ToDoID  int    `json:"toDoId"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  int    `json:"status"`
}

func (r *ToDoResponse) FromModel(todo model.Todo) {
	r.ToDoID = todo.ID
	r.Title = todo.Title
	r.Content = todo.Content
	r.Status = todo.Status
}

func FromModels(todos []model.Todo) []ToDoResponse {
	res := make([]ToDoResponse, len(todos))
	for i, todo := range todos {
		res[i].FromModel(todo)
	}

	return res
}

type StatisticsResponse struct {
	Total            int    `json:"total"`
	Completed        int    `json:"completed"`
	CompletedPercent string `json:"completedPercent"`
}

// NewStatistics derives the completion percentage, "0%" for an empty list.
func NewStatistics(total, completed int) StatisticsResponse {
	percent := "0%"
	if total > 0 {
		percent = fmt.Sprintf("%.2f%%", float64(completed)*100/float64(total))
	}

	return StatisticsResponse{
		Total:            total,
		Completed:        completed,
		CompletedPercent: percent,
	}
}
