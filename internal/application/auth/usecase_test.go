package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	for i, cur := range r.users {
		if cur.ID == u.ID {
			r.users[i] = u
		}
	}
	return nil
}

type memSessionRepo struct {
	sessions []*entity.Session
}

func (r *memSessionRepo) Create(_ context.Context, s *entity.Session) error {
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *memSessionRepo) GetByToken(_ context.Context, token string) (*entity.Session, error) {
	for _, s := range r.sessions {
		if s.Token == token {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memSessionRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.sessions {
		if s.ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memSessionRepo) DeleteByToken(_ context.Context, token string) error {
	for i, s := range r.sessions {
		if s.Token == token {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var instanteFixo = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func novoAmbiente(t *testing.T) (*AuthUseCase, *memUserRepo, *memSessionRepo) {
	t.Helper()
	users := &memUserRepo{}
	sessions := &memSessionRepo{}
	uc := NewAuthUseCase(users, sessions, SessionConfig{TTL: 24 * time.Hour})
	uc.now = func() time.Time { return instanteFixo }
	uc.newToken = func() (string, error) { return "token-de-teste", nil }
	return uc, users, sessions
}

func registrarELogar(t *testing.T, uc *AuthUseCase) *dto.LoginResponse {
	t.Helper()
	require.NoError(t, uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Senha: "segredo123",
	}))
	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@example.com", Senha: "segredo123",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / Login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CriaUsuarioComHashBcrypt(t *testing.T) {
	uc, users, _ := novoAmbiente(t)

	require.NoError(t, uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Senha: "segredo123",
	}))

	require.Len(t, users.users, 1)
	u := users.users[0]
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, "ana", u.Name, "nome inicial é a parte local do email")
	assert.True(t, u.Active)
	assert.NotEqual(t, "segredo123", u.PasswordHash, "a senha nunca é persistida em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("segredo123")))
}

func TestRegister_CamposObrigatorios(t *testing.T) {
	uc, _, _ := novoAmbiente(t)

	err := uc.Register(context.Background(), dto.RegisterRequest{Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Register(context.Background(), dto.RegisterRequest{Senha: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _ := novoAmbiente(t)

	require.NoError(t, uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Senha: "segredo123",
	}))
	err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Senha: "outra-senha",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CriaSessaoComValidadeAbsoluta(t *testing.T) {
	uc, _, sessions := novoAmbiente(t)

	out := registrarELogar(t, uc)
	assert.True(t, out.Success)
	assert.Equal(t, "token-de-teste", out.Token)
	assert.Equal(t, "ana@example.com", out.User.Login)

	require.Len(t, sessions.sessions, 1)
	s := sessions.sessions[0]
	assert.Equal(t, instanteFixo, s.CreatedAt)
	assert.Equal(t, instanteFixo.Add(24*time.Hour), s.ExpiresAt)
}

func TestLogin_CredenciaisInvalidas(t *testing.T) {
	uc, _, _ := novoAmbiente(t)
	registrarELogar(t, uc)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@example.com", Senha: "senha-errada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "ninguem@example.com", Senha: "segredo123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email desconhecido devolve o mesmo erro que senha errada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate — fronteira de expiração
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_TokenValido(t *testing.T) {
	uc, _, _ := novoAmbiente(t)
	out := registrarELogar(t, uc)

	user, session, err := uc.Authenticate(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, user.ID, session.UserID)
}

func TestAuthenticate_NoInstanteExatoDeExpiracao_AindaVale(t *testing.T) {
	uc, _, sessions := novoAmbiente(t)
	out := registrarELogar(t, uc)

	uc.now = func() time.Time { return instanteFixo.Add(24 * time.Hour) }
	_, _, err := uc.Authenticate(context.Background(), out.Token)
	assert.NoError(t, err, "no instante exato de expires_at a sessão ainda vale")
	assert.Len(t, sessions.sessions, 1)
}

func TestAuthenticate_Expirada_Remove_E_401(t *testing.T) {
	uc, _, sessions := novoAmbiente(t)
	out := registrarELogar(t, uc)

	uc.now = func() time.Time { return instanteFixo.Add(24*time.Hour + time.Millisecond) }
	_, _, err := uc.Authenticate(context.Background(), out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, sessions.sessions, "sessão expirada é removida no primeiro uso")

	// Segundo uso do mesmo token: a sessão já não existe.
	_, _, err = uc.Authenticate(context.Background(), out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_TokenDesconhecido(t *testing.T) {
	uc, _, _ := novoAmbiente(t)

	_, _, err := uc.Authenticate(context.Background(), "token-que-nunca-existiu")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = uc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout / CheckSession / Me / UpdateProfile
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_RemoveSessao_E_Idempotente(t *testing.T) {
	uc, _, sessions := novoAmbiente(t)
	out := registrarELogar(t, uc)

	require.NoError(t, uc.Logout(context.Background(), out.Token))
	assert.Empty(t, sessions.sessions)

	assert.NoError(t, uc.Logout(context.Background(), out.Token), "logout repetido não falha")
	assert.NoError(t, uc.Logout(context.Background(), ""))
}

func TestCheckSession(t *testing.T) {
	uc, _, _ := novoAmbiente(t)
	out := registrarELogar(t, uc)

	check, err := uc.CheckSession(context.Background(), out.Token)
	require.NoError(t, err)
	assert.True(t, check.LoggedIn)
	assert.Equal(t, out.User.ID, check.UserID)
	assert.Equal(t, "ana@example.com", check.UserLogin)

	require.NoError(t, uc.Logout(context.Background(), out.Token))
	_, err = uc.CheckSession(context.Background(), out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_UltimoAcessoEDaSessao(t *testing.T) {
	uc, _, _ := novoAmbiente(t)
	out := registrarELogar(t, uc)

	me, err := uc.Me(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", me.Email)
	assert.Equal(t, instanteFixo, me.UltimoAcesso)
}

func TestUpdateProfile_TrocaNomeEEmail(t *testing.T) {
	uc, users, _ := novoAmbiente(t)
	out := registrarELogar(t, uc)

	perfil, err := uc.UpdateProfile(context.Background(), out.Token, dto.UpdateProfileRequest{
		Name: "Ana Souza", Email: "ana.souza@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", perfil.Name)
	assert.Equal(t, "ana.souza@example.com", perfil.Email)
	assert.Equal(t, "ana.souza@example.com", users.users[0].Email)
}

func TestUpdateProfile_EmailJaUsado(t *testing.T) {
	uc, _, _ := novoAmbiente(t)
	out := registrarELogar(t, uc)
	require.NoError(t, uc.Register(context.Background(), dto.RegisterRequest{
		Email: "bruno@example.com", Senha: "segredo123",
	}))

	_, err := uc.UpdateProfile(context.Background(), out.Token, dto.UpdateProfileRequest{
		Email: "bruno@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
