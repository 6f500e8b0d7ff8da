package model

const (
	TableName  = "accounts"
	EntityName = "account"

	FieldID      = "id"
	FieldName    = "name"
	FieldAccount = "account"
	FieldPwd     = "pwd"
)

// Account is a login identity. Pwd holds the client-side hash verbatim.
type Account struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Account string `db:"account"`
	Pwd     string `db:"pwd"`
}
