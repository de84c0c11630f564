package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/users/auth/dto"
	"hocphi_backend/internals/features/users/auth/model"
	"hocphi_backend/internals/features/users/auth/service"
	helper "hocphi_backend/internals/helpers"
)

type AuthHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db, Validate: validator.New()}
}

// -----------------------------------------
// Login (POST /login) — public, rate limited.
// -----------------------------------------
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// usernames are stored lowercased
	var op model.Operator
	err := h.DB.First(&op, "operator_username = ?", strings.ToLower(strings.TrimSpace(in.Username))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same message as a bad password, no username probing
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if bcrypt.CompareHashAndPassword([]byte(op.OperatorPasswordHash), []byte(in.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	access, err := service.IssueAccessToken(op)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refresh, err := service.IssueRefreshToken(op)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "login ok", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Operator:     dto.ToOperatorResponse(op),
	})
}

// -----------------------------------------
// Refresh (POST /refresh) — public.
// -----------------------------------------
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	operatorID, err := service.ParseRefreshToken(in.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid refresh token")
	}

	var op model.Operator
	if err := h.DB.First(&op, "operator_id = ?", operatorID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "operator no longer exists")
	}

	access, err := service.IssueAccessToken(op)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "token refreshed", fiber.Map{"access_token": access})
}

// -----------------------------------------
// Register operator (POST /operators) — admin only.
// -----------------------------------------
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterOperatorDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	op := model.Operator{
		OperatorUsername:     in.Username,
		OperatorPasswordHash: string(hash),
		OperatorRole:         in.Role,
	}
	if err := h.DB.Create(&op).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "username already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "operator registered", dto.ToOperatorResponse(op))
}

// -----------------------------------------
// Me (GET /me)
// -----------------------------------------
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	operatorID, _ := c.Locals("operator_id").(string)
	if operatorID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var op model.Operator
	if err := h.DB.First(&op, "operator_id = ?", operatorID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "operator not found")
	}
	return helper.JsonOK(c, "", dto.ToOperatorResponse(op))
}
