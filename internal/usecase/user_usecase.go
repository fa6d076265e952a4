package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/contract"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// profilePictureFolder is the bucket folder holding profile pictures.
const profilePictureFolder = "public"

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	authProvider  contract.IAuthProvider
	storage       contract.IMediaStorage
	hasher        contract.IHasher
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
	now           func() time.Time
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	authProvider contract.IAuthProvider,
	storage contract.IMediaStorage,
	hasher contract.IHasher,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		authProvider:  authProvider,
		storage:       storage,
		hasher:        hasher,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
		now:           time.Now,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// SignUp hashes the password, registers the credential with the auth
// provider and then stores the local user row.
func (uc *UserUsecase) SignUp(ctx context.Context, username, email, password string) (*entity.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required: %w", apperror.ErrValidation)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", apperror.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("password is required: %w", apperror.ErrValidation)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	if err := uc.authProvider.SignUp(ctx, email, password); err != nil {
		if errors.Is(err, apperror.ErrAuthRejected) {
			uc.logger.Infof("signup rejected by auth provider email=%s: %v", email, err)
		} else {
			uc.logger.Errorf("auth provider signup failed email=%s: %v", email, err)
		}
		return nil, err
	}

	now := uc.now().UTC()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		// the auth identity exists without a local row; a retry hits the
		// provider's duplicate check
		uc.logger.Errorf("failed to create user row email=%s: %v", email, err)
		return nil, err
	}

	uc.logger.Infof("user signed up id=%s", user.ID)
	return user, nil
}

// Login checks the credential with the auth provider and returns the local
// user. A missing local row wraps apperror.ErrNotFound.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", apperror.ErrInvalidCredentials)
	}

	if err := uc.authProvider.SignIn(ctx, email, password); err != nil {
		if !errors.Is(err, apperror.ErrInvalidCredentials) {
			uc.logger.Errorf("auth provider login failed: %v", err)
		}
		return nil, err
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Warnf("authenticated identity has no user row email=%s", email)
		}
		return nil, err
	}
	return user, nil
}

// GetUserByID returns the user or an error wrapping apperror.ErrNotFound.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", apperror.ErrValidation)
	}
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile uploads the picture, when given, to public/<millis>.<ext> and
// stores the username and the picture's public URL.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID, username string, picture *entity.MediaFile) (*entity.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", apperror.ErrValidation)
	}

	update := entity.ProfileUpdate{Username: strings.TrimSpace(username)}
	if picture != nil && picture.Content != nil {
		path := fmt.Sprintf("%s/%d.%s", profilePictureFolder, uc.now().UnixMilli(), extensionFor(picture.ContentType))
		if err := uc.storage.Upload(ctx, path, picture.Content, picture.ContentType); err != nil {
			uc.logger.Errorf("profile picture upload failed user=%s: %v", userID, err)
			return nil, err
		}
		url := uc.storage.PublicURL(path)
		update.ProfilePicture = &url
	}

	user, err := uc.userRepo.UpdateProfile(ctx, userID, update)
	if err != nil {
		uc.logger.Errorf("failed to update profile user=%s: %v", userID, err)
		return nil, err
	}
	return user, nil
}
