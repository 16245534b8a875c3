package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, now time.Time) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{Auth: config.Auth{Secret: "segredo-de-teste", TokenTTL: time.Hour}}
	service := NewService(userRepo, cfg).(*Service)
	service.now = func() time.Time { return now }

	return service, userRepo
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           10,
		FullName:     "Ana Souza",
		Email:        "ana@empresa.com",
		PasswordHash: string(hash),
		Role:         domain.RoleSalesman,
		CompanyID:    3,
	}

	tests := []struct {
		name         string
		email        string
		password     string
		setup        func(userRepo *mocks.MockUserRepository)
		expectedErr  error
		expectedCode string
	}{
		{
			name:         "Email vazio - deve retornar dados obrigatórios ausentes",
			email:        "",
			password:     "senha123",
			setup:        func(userRepo *mocks.MockUserRepository) {},
			expectedErr:  ErrMissingRequiredData,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente - deve retornar usuário não encontrado",
			email:    "nao@existe.com",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "nao@existe.com").Return(nil, nil)
			},
			expectedErr:  ErrUserNotFound,
			expectedCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "Senha incorreta - deve retornar credenciais inválidas",
			email:    "ana@empresa.com",
			password: "errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@empresa.com").Return(user, nil)
			},
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Erro no banco - deve retornar erro de banco",
			email:    "ana@empresa.com",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@empresa.com").Return(nil, errors.New("conexão perdida"))
			},
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
		{
			name:     "Email com espaços e maiúsculas - deve normalizar e autenticar",
			email:    "  Ana@Empresa.com ",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@empresa.com").Return(user, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := newTestService(t, now)
			tt.setup(userRepo)

			token, err := service.LoginUser(ctx, tt.email, tt.password)

			if tt.expectedCode != "" {
				require.Error(t, err)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.expectedCode, authErr.Code)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 10, claims.UserID)
			assert.Equal(t, 3, claims.UserCompany)
			assert.Equal(t, domain.RoleSalesman, claims.UserRole)
			assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	issuedAt := time.Now()

	service, _ := newTestService(t, issuedAt)
	validToken, err := service.generateJWT(&domain.User{ID: 1, Role: domain.RoleManager, CompanyID: 2})
	require.NoError(t, err)

	noCompanyToken, err := service.generateJWT(&domain.User{ID: 1, Role: domain.RoleManager})
	require.NoError(t, err)

	tests := []struct {
		name         string
		token        string
		now          time.Time
		secret       string
		expectedErr  error
		expectedRole string
	}{
		{
			name:         "Token válido - deve retornar as claims",
			token:        validToken,
			now:          issuedAt.Add(time.Minute),
			secret:       "segredo-de-teste",
			expectedRole: domain.RoleManager,
		},
		{
			name:        "Token expirado - deve retornar token expirado",
			token:       validToken,
			now:         issuedAt.Add(2 * time.Hour),
			secret:      "segredo-de-teste",
			expectedErr: ErrExpiredToken,
		},
		{
			name:        "Assinatura com outro segredo - deve retornar token inválido",
			token:       validToken,
			now:         issuedAt.Add(time.Minute),
			secret:      "outro-segredo",
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "Token malformado - deve retornar token inválido",
			token:       "nao.e.um.token",
			now:         issuedAt,
			secret:      "segredo-de-teste",
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "Usuário sem empresa - deve negar acesso",
			token:       noCompanyToken,
			now:         issuedAt.Add(time.Minute),
			secret:      "segredo-de-teste",
			expectedErr: ErrInsufficientPrivilege,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator, _ := newTestService(t, tt.now)
			validator.cfg.Auth.Secret = tt.secret

			claims, err := validator.ValidateToken(tt.token)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedRole, claims.UserRole)
			assert.Equal(t, 2, claims.UserCompany)
		})
	}
}

func TestIsCredentialsError(t *testing.T) {
	assert.True(t, IsCredentialsError(NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")))
	assert.True(t, IsAuthorizationError(NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")))
	assert.False(t, IsCredentialsError(errors.New("outro")))
}
