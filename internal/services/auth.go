package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/repositories"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/service"
	"uyumplast-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, loginData dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	Me(ctx context.Context) (*dto.ShortUserDTO, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	jwtSvc   service.JWTService
	logger   *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{userRepo: userRepo, jwtSvc: jwtSvc, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, loginData dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, loginData.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Не раскрываем, существует ли e-mail.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, loginData.Password); err != nil {
		s.logger.Warn("Неудачная попытка входа", zap.String("email", loginData.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtSvc.GenerateTokens(user.ID, user.RoleID)
	if err != nil {
		s.logger.Error("Ошибка генерации токенов", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Пользователь вошёл в систему", zap.Uint64("userID", user.ID))
	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtSvc.GetAccessTokenTTL().Seconds()),
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtSvc.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	// Пользователь мог быть деактивирован после выдачи refresh-токена.
	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	accessToken, newRefreshToken, err := s.jwtSvc.GenerateTokens(user.ID, user.RoleID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int64(s.jwtSvc.GetAccessTokenTTL().Seconds()),
	}, nil
}

func (s *AuthService) Me(ctx context.Context) (*dto.ShortUserDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ShortUserDTO{ID: user.ID, Fio: user.Fio}, nil
}
