package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/cache"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const generatedPasswordLength = 12

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Authenticator interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResponse, error)
	Logout(ctx context.Context, claims *domain.Claims) error
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
	GetUserProfile(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	GenerateStrongPassword(ctx context.Context, caller *domain.Claims, targetUserID string) (string, error)
	ListUsers(ctx context.Context, organizationID string) ([]*domain.User, error)
	CreateUser(ctx context.Context, organizationID string, req domain.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, caller *domain.Claims, req domain.UpdateUserRequest) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	revoker  cache.TokenRevoker
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, revoker cache.TokenRevoker, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		revoker:  revoker,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Register cria a organização e seu administrador e já devolve o token de acesso
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	firstName, lastName := splitName(req)
	if firstName == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome é obrigatório")
	}

	if err := ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	email := handleEmail(req.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	orgName := strings.TrimSpace(req.OrganizationName)
	if orgName == "" {
		orgName = fmt.Sprintf("Organização de %s", firstName)
	}

	slug, err := utils.Slug(orgName)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	org, user, err := s.userRepo.CreateOrganization(ctx,
		&domain.Organization{Name: orgName, Slug: slug},
		&domain.User{
			Email:        email,
			PasswordHash: string(hash),
			FirstName:    firstName,
			LastName:     lastName,
			RoleID:       domain.RoleAdmin,
			Active:       true,
		},
	)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar organização")
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": org.ID,
		"user_id":         user.ID,
	}).Info("Nova organização registrada")

	return s.authResponse(user, org)
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// usuário inexistente e senha errada respondem igual
	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Email ou senha incorretos")
	}

	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Erro ao registrar último login")
	}

	org, err := s.userRepo.GetOrganization(ctx, user.OrganizationID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar organização")
	}

	return s.authResponse(user, org)
}

// Logout revoga o jti do token até a expiração original
func (s *Service) Logout(ctx context.Context, claims *domain.Claims) error {
	if claims == nil || claims.ID == "" {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem identificador")
	}

	ttl := time.Hour
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}

	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return errors.Wrap(err, "erro ao revogar token")
	}

	return nil
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if !token.Valid || claims.UserID == "" || claims.OrganizationID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	for _, key := range []string{claims.ID, userRevocationKey(claims.UserID)} {
		if key == "" {
			continue
		}
		revoked, err := s.revoker.IsRevoked(ctx, key)
		if err != nil {
			// sem o cache não dá para garantir a revogação; o token segue válido
			logrus.WithError(err).Warn("Erro ao consultar revogação de token")
		}
		if revoked {
			return nil, NewUserAuthError(ErrRevokedToken, apiErrors.ErrRevokedToken, claims.UserID, "")
		}
	}

	return claims, nil
}

// userRevocationKey derruba todos os tokens do usuário enquanto ele estiver desativado
func userRevocationKey(userID string) string {
	return "user:" + userID
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangePassword permite que um usuário altere a própria senha
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidPassword, apiErrors.ErrInvalidCredentials, userID, "")
	}

	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, apiErrors.ErrValidationFailed, userID, "")
	}

	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	return s.userRepo.UpdateUser(ctx, user)
}

// GenerateStrongPassword redefine a senha de um membro da organização. Apenas administradores.
func (s *Service) GenerateStrongPassword(ctx context.Context, caller *domain.Claims, targetUserID string) (string, error) {
	if caller.UserRoleID != domain.RoleAdmin {
		return "", NewUserAuthError(ErrNoAdminPrivilege, apiErrors.ErrInsufficientPrivilege, caller.UserID, "")
	}

	target, err := s.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return "", err
	}
	if target == nil || target.OrganizationID != caller.OrganizationID {
		return "", NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, targetUserID, "")
	}

	password, err := generateStrongPassword(generatedPasswordLength)
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	target.PasswordHash = string(hash)
	if err := s.userRepo.UpdateUser(ctx, target); err != nil {
		return "", err
	}

	return password, nil
}

func (s *Service) ListUsers(ctx context.Context, organizationID string) ([]*domain.User, error) {
	return s.userRepo.ListUser(ctx, organizationID)
}

// CreateUser convida um membro para a organização do administrador
func (s *Service) CreateUser(ctx context.Context, organizationID string, req domain.CreateUserRequest) (*domain.User, error) {
	if err := ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	email := handleEmail(req.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roleID := req.RoleID
	if roleID == 0 {
		roleID = domain.RoleMember
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		OrganizationID: organizationID,
		Email:          email,
		PasswordHash:   string(hash),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		RoleID:         roleID,
		Active:         true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateUser altera o próprio perfil ou, para administradores, qualquer membro da organização.
// Papel e status só podem ser alterados por administradores.
func (s *Service) UpdateUser(ctx context.Context, caller *domain.Claims, req domain.UpdateUserRequest) (*domain.User, error) {
	isAdmin := caller.UserRoleID == domain.RoleAdmin
	if req.ID != caller.UserID && !isAdmin {
		return nil, NewUserAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, caller.UserID, "")
	}
	if !isAdmin && (req.RoleID != nil || req.Active != nil) {
		return nil, NewUserAuthError(ErrNoAdminPrivilege, apiErrors.ErrInsufficientPrivilege, caller.UserID, "")
	}

	user, err := s.userRepo.GetUserByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.OrganizationID != caller.OrganizationID {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, req.ID, "")
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		user.Email = handleEmail(*req.Email)
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}

	// senha não é alterada por aqui
	user.PasswordHash = ""

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, err
	}

	if req.Active != nil {
		s.syncUserRevocation(ctx, user.ID, user.Active)
	}

	return user, nil
}

// syncUserRevocation invalida os tokens emitidos de um usuário desativado; a reativação libera a chave
func (s *Service) syncUserRevocation(ctx context.Context, userID string, active bool) {
	key := userRevocationKey(userID)

	var err error
	if active {
		err = s.revoker.Restore(ctx, key)
	} else {
		err = s.revoker.Revoke(ctx, key, s.cfg.Auth.TokenTTL)
	}
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao atualizar revogação dos tokens do usuário")
	}
}

func (s *Service) authResponse(user *domain.User, org *domain.Organization) (*domain.AuthResponse, error) {
	token, expiresAt, err := s.generateJWT(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	user.PasswordHash = ""
	return &domain.AuthResponse{
		Token:        token,
		ExpiresAt:    expiresAt,
		User:         user,
		Organization: org,
	}, nil
}

func (s *Service) generateJWT(user *domain.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.Auth.TokenTTL)

	claims := domain.Claims{
		UserID:         user.ID,
		OrganizationID: user.OrganizationID,
		UserEmail:      user.Email,
		UserName:       user.FullName(),
		UserRoleID:     user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SecretKey))
	return signed, expiresAt, err
}

func splitName(req domain.RegisterRequest) (string, string) {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first != "" {
		return first, last
	}

	parts := strings.Fields(req.Name)
	if len(parts) == 0 {
		return "", last
	}
	if last == "" && len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return parts[0], last
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
