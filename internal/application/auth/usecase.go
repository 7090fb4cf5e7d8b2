package auth

import (
	"github.com/jhoicas/Minimarket-api/internal/application/dto"
	"github.com/jhoicas/Minimarket-api/internal/application/usecase"
	"github.com/jhoicas/Minimarket-api/internal/domain"
	"github.com/jhoicas/Minimarket-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación de la API: delega la verificación de credenciales
// al directorio de usuarios (contrato booleano) y emite el JWT.
type AuthUseCase struct {
	users  *usecase.UserUseCase
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users *usecase.UserUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el directorio y genera el token.
// El directorio solo reporta éxito o fallo, así que cualquier causa (usuario
// inexistente, contraseña errada, usuario inactivo) se devuelve como
// ErrUnauthorized sin distinguirla.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.users.Login(in.Username, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	user := uc.users.GetByUsername(in.Username)
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: dto.UserFromEntity(user)}, nil
}
