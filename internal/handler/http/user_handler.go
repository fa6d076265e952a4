package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	"github.com/mikiasgoitom/ScribeSpace/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	CreateUser(*gin.Context)
	Login(*gin.Context)
	GetUser(*gin.Context)
	UpdateProfile(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase    usecasecontract.IUserUseCase
	maxUploadBytes int64
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, maxUploadBytes int64) *UserHandler {
	return &UserHandler{
		userUsecase:    userUsecase,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateUser handles user registration (signup)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.SignUp(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperror.ErrAuthRejected) || errors.Is(err, apperror.ErrValidation) {
			FailureHandler(c, http.StatusBadRequest, "Error creating user", err)
			return
		}
		FailureHandler(c, http.StatusInternalServerError, "Error creating user", err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.UserEnvelope{
		Message: "User created successfully",
		User:    dto.ToUserResponse(*user),
	})
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	user, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrInvalidCredentials):
			ErrorHandler(c, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, apperror.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "User not found in database")
		default:
			FailureHandler(c, http.StatusInternalServerError, "Server error", err)
		}
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "User not found")
			return
		}
		FailureHandler(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserEnvelope{User: dto.ToUserResponse(*user)})
}

// UpdateProfile handles PUT /profile/:userId (multipart: username, optional
// profile_picture). Every failure answers 500.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	var picture *entity.MediaFile
	header, err := c.FormFile("profile_picture")
	switch {
	case err == nil:
		file, openErr := header.Open()
		if openErr != nil {
			FailureHandler(c, http.StatusInternalServerError, "Server error", openErr)
			return
		}
		defer file.Close()
		picture = &entity.MediaFile{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		}
	case isTooLarge(err):
		FailureHandler(c, http.StatusRequestEntityTooLarge, "File too large", err)
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), c.Param("userId"), c.PostForm("username"), picture)
	if err != nil {
		FailureHandler(c, http.StatusInternalServerError, "Server error", err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.UserEnvelope{
		Message: "Profile updated successfully",
		User:    dto.ToUserResponse(*user),
	})
}
