package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/services/auth"
	"github.com/quickkart/backend/validation"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

func SetupAuth(router *gin.Engine, logger logger.Logger, service *auth.Service, validator *validation.Validator) {
	router.POST("/api/auth/register", handleRegister(service, logger, validator))
	router.POST("/api/auth/login", handleLogin(service, logger, validator))
	router.GET("/api/auth/user/:email", handleGetUser(service, logger))
	router.PUT("/api/auth/user/:email", handleUpdateUser(service, logger))
}

func handleRegister(service *auth.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := RegisterRequest{}
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.Warn("could not extract register request body", "err", err.Error())
			writeError(c, http.StatusBadRequest, "failed to extract request body parameters")
			return
		}

		if err := validator.Validate(request); err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}

		user, err := service.Register(request.Email, request.Password, request.FullName)
		if err != nil {
			if errors.Is(err, auth.ErrUserExists) {
				writeError(c, http.StatusBadRequest, err.Error())
				return
			}
			logger.Error("registration failed", "err", err.Error())
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func handleLogin(service *auth.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := LoginRequest{}
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.Warn("could not extract login request body", "err", err.Error())
			writeError(c, http.StatusBadRequest, "failed to extract request body parameters")
			return
		}

		if err := validator.Validate(request); err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}

		user, err := service.Login(request.Email, request.Password)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) || errors.Is(err, auth.ErrInvalidCredentials) {
				writeError(c, http.StatusBadRequest, err.Error())
				return
			}
			logger.Error("login failed", "err", err.Error())
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func handleGetUser(service *auth.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		user, err := service.Get(email)
		if err != nil {
			logger.Warn("user not found", "email", email)
			writeError(c, http.StatusNotFound, "User not found")
			return
		}

		user.Token = ""
		c.JSON(http.StatusOK, user)
	}
}

func handleUpdateUser(service *auth.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		request := UpdateUserRequest{}
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.Warn("could not extract update user request body", "err", err.Error())
			writeError(c, http.StatusBadRequest, "failed to extract request body parameters")
			return
		}

		user, err := service.Update(email, models.User{
			FullName: request.FullName,
			Phone:    request.Phone,
			Address:  request.Address,
			City:     request.City,
			Country:  request.Country,
		})
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				writeError(c, http.StatusBadRequest, err.Error())
				return
			}
			logger.Error("update user failed", "err", err.Error())
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}

		user.Token = ""
		c.JSON(http.StatusOK, user)
	}
}
