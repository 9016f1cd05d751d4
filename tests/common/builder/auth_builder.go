//go:build unit || e2e

package builder

import (
	reqdto "sendero-web/internal/handler/dto/request"
)

type AuthBuilder struct {
	Password  string
	ReturnURL string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Password:  "trail-preview",
		ReturnURL: "/es/tours",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	password := a.Password
	return reqdto.LoginRequest{
		Password:  &password,
		ReturnURL: a.ReturnURL,
	}
}
