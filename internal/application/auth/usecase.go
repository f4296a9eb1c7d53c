// Package auth implementa registro, login e a guarda de sessão por token
// opaco com expiração absoluta. A sessão vive no banco: logout a remove e um
// token expirado é removido no primeiro uso.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
	"github.com/stockflow/stockflow-api/pkg/token"
)

// SessionConfig validade das sessões criadas no login.
type SessionConfig struct {
	TTL time.Duration
}

// AuthUseCase casos de uso de autenticação e sessão.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         SessionConfig

	now      func() time.Time        // ponto de injeção para os testes de expiração
	newToken func() (string, error)
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg SessionConfig) *AuthUseCase {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
		now:         time.Now,
		newToken:    token.New,
	}
}

// Register cria um usuário: valida campos, verifica duplicidade de email e
// persiste com hash bcrypt. O nome inicial é a parte local do email.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	if in.Email == "" || in.Senha == "" {
		return domain.Validationf("Preencha todas as informações.")
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := uc.now()
	name := in.Email
	if i := strings.Index(in.Email, "@"); i > 0 {
		name = in.Email[:i]
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.userRepo.Create(ctx, user)
}

// Login verifica email/senha e cria uma sessão com validade absoluta a partir
// da criação. Credenciais ruins devolvem sempre ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Senha == "" {
		return nil, domain.Validationf("Preencha todas as informações.")
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	tok, err := uc.newToken()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     tok,
		ExpiresAt: now.Add(uc.cfg.TTL),
		CreatedAt: now,
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		User:    dto.LoginUser{ID: user.ID, Login: user.Email},
		Token:   tok,
	}, nil
}

// Authenticate resolve um bearer token para usuário + sessão. Token ausente,
// desconhecido ou expirado devolve ErrUnauthorized; a sessão expirada é
// removida como efeito colateral da detecção.
func (uc *AuthUseCase) Authenticate(ctx context.Context, tok string) (*entity.User, *entity.Session, error) {
	if tok == "" {
		return nil, nil, domain.ErrUnauthorized
	}
	session, err := uc.sessionRepo.GetByToken(ctx, tok)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, domain.ErrUnauthorized
	}
	if session.Expirada(uc.now()) {
		_ = uc.sessionRepo.Delete(ctx, session.ID)
		return nil, nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUnauthorized
	}
	return user, session, nil
}

// Logout remove a sessão do token, se existir. Idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context, tok string) error {
	if tok == "" {
		return nil
	}
	return uc.sessionRepo.DeleteByToken(ctx, tok)
}

// CheckSession responde se o token ainda corresponde a uma sessão válida.
func (uc *AuthUseCase) CheckSession(ctx context.Context, tok string) (*dto.CheckSessionResponse, error) {
	user, _, err := uc.Authenticate(ctx, tok)
	if err != nil {
		return nil, err
	}
	return &dto.CheckSessionResponse{LoggedIn: true, UserID: user.ID, UserLogin: user.Email}, nil
}

// Me devolve o perfil do usuário autenticado; UltimoAcesso é a criação da sessão.
func (uc *AuthUseCase) Me(ctx context.Context, tok string) (*dto.MeResponse, error) {
	user, session, err := uc.Authenticate(ctx, tok)
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Active:       user.Active,
		UltimoAcesso: session.CreatedAt,
	}, nil
}

// UpdateProfile atualiza nome e email do usuário autenticado. Trocar para um
// email já usado por outro usuário devolve ErrEmailAlreadyExists.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, tok string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, _, err := uc.Authenticate(ctx, tok)
	if err != nil {
		return nil, err
	}
	if in.Email != "" && in.Email != user.Email {
		existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = in.Email
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{ID: user.ID, Email: user.Email, Name: user.Name, Active: user.Active}, nil
}
