package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educore_backend/internals/configs"
	authDTO "educore_backend/internals/features/users/auth/dto"
	authHelper "educore_backend/internals/features/users/auth/helper"
	authModel "educore_backend/internals/features/users/auth/model"
	authService "educore_backend/internals/features/users/auth/service"
	helper "educore_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var cnt int64
	if err := h.DB.Model(&authModel.UserModel{}).
		Where("username = ?", req.Username).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check username")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username already taken")
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         "user",
		IsActive:     true,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User registered", authDTO.FromUserModel(user))
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user authModel.UserModel
	if err := h.DB.
		Where("username = ?", strings.TrimSpace(req.Username)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if err := authHelper.CheckPasswordHash(user.PasswordHash, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := authService.CreateAccessToken(user, configs.JWTSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	now := time.Now()
	if err := h.DB.Model(&user).Update("last_login", now).Error; err == nil {
		user.LastLogin = &now
	}

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		Token: token,
		User:  authDTO.FromUserModel(user),
	})
}
