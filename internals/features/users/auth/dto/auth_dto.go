package dto

import (
	"github.com/google/uuid"

	"hocphi_backend/internals/features/users/auth/model"
)

type LoginDTO struct {
	Username string `json:"username" validate:"required,max=40"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterOperatorDTO struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin accountant"`
}

type OperatorResponse struct {
	OperatorID       uuid.UUID `json:"operator_id"`
	OperatorUsername string    `json:"operator_username"`
	OperatorRole     string    `json:"operator_role"`
}

type TokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Operator     OperatorResponse `json:"operator"`
}

func ToOperatorResponse(m model.Operator) OperatorResponse {
	return OperatorResponse{
		OperatorID:       m.OperatorID,
		OperatorUsername: m.OperatorUsername,
		OperatorRole:     m.OperatorRole,
	}
}
