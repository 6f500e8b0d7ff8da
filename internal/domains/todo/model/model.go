package model

import "time"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
)

const (
	StatusActive    = 0
	StatusCompleted = 1
)

type Todo struct {
	ID        int       `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Status    int       `db:"status"`
	CreatedAt time.Time `db:"created_at" insert:"-"`
}
