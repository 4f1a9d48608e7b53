package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tareas-backend/internal/model"
	"tareas-backend/internal/repository"
	"tareas-backend/internal/util"
	"tareas-backend/pkg/metrics"
)

// ErrInvalidCredentials covers both unknown usernames and wrong
// passwords; callers must not distinguish them.
var ErrInvalidCredentials = errors.New("usuario o password incorrectos")

type UsuarioStore interface {
	FindByUsuario(ctx context.Context, usuario string) (*model.Usuario, error)
}

type Service struct {
	usuarios  UsuarioStore
	jwtSecret string
	logger    *zap.Logger
}

func NewService(usuarios UsuarioStore, jwtSecret string, logger *zap.Logger) *Service {
	return &Service{
		usuarios:  usuarios,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Login verifies credentials and issues a signed session token. Each
// call is a stateless verify-and-issue; tokens stay valid until their
// natural 24h expiry.
func (s *Service) Login(ctx context.Context, usuario, password string) (string, *model.Usuario, error) {
	u, err := s.usuarios.FindByUsuario(ctx, usuario)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			metrics.IncrementLoginAttempt("failed")
			s.logger.Warn("Login failed: unknown usuario", zap.String("usuario", usuario))
			return "", nil, ErrInvalidCredentials
		}
		// A datastore failure is not a credential problem; let the
		// handler answer 500 instead of 401.
		s.logger.Error("Login lookup failed", zap.Error(err))
		return "", nil, err
	}

	if !util.CheckPassword(password, u.PasswordHash) {
		metrics.IncrementLoginAttempt("failed")
		s.logger.Warn("Login failed: wrong password", zap.String("usuario", usuario))
		return "", nil, ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(u.ID, u.Usuario, s.jwtSecret)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return "", nil, err
	}

	metrics.IncrementLoginAttempt("success")
	s.logger.Info("Login succeeded", zap.String("usuario", usuario), zap.Int("user_id", u.ID))
	return token, u, nil
}
