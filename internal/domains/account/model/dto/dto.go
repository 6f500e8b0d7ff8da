package dto

import "daily/internal/domains/account/model"

type RegisterRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Account string `json:"account" validate:"notblank"`
	Pwd     string `json:"pwd" validate:"notblank"`
}

func (r *RegisterRequest) ToModel() model.Account {
	return model.Account{
		Name:    r.Name,
		Account: r.Account,
		Pwd:     r.Pwd,
	}
}

// LoginRequest is read from the logAccount and logPassword query parameters.
type LoginRequest struct {
	Account  string
	Password string
}
