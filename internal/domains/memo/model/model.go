package model

import "time"

const (
	TableName  = "memos"
	EntityName = "memo"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
)

// Memo is a free-form note. Status is stored and returned but never filtered on.
type Memo struct {
	ID        int       `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Status    int       `db:"status"`
	CreatedAt time.Time `db:"created_at" insert:"-"`
}
