package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/pkg/jwt"
	"github.com/jhoicas/stockflow-api/pkg/slug"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro de tenant + admin, login
// scopeado por tenant_slug y cambio de contraseña.
type UseCase struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	jwtCfg     JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, tenantRepo repository.TenantRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, tenantRepo: tenantRepo, jwtCfg: jwtCfg}
}

// Register crea un tenant nuevo con su primer usuario administrador y deja la
// sesión iniciada. El slug se deriva del nombre; si ya existe, ErrDuplicate.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	if in.TenantName == "" || in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	tenantSlug := slug.Make(in.TenantName)
	if tenantSlug == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.tenantRepo.GetBySlug(tenantSlug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	tenant := &entity.Tenant{
		ID:        uuid.New().String(),
		Name:      in.TenantName,
		Slug:      tenantSlug,
		Industry:  in.Industry,
		Plan:      "free",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tenantRepo.Create(tenant); err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenant.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.session(user, tenant)
}

// Login verifica tenant_slug + email + password y genera la sesión.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	tenant, err := uc.tenantRepo.GetBySlug(in.TenantSlug)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrUnauthorized // no revelar si el tenant existe
	}
	user, err := uc.userRepo.FindByEmailAndTenant(in.Email, tenant.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" || tenant.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.session(user, tenant)
}

// ChangePassword verifica la contraseña actual y persiste el nuevo hash.
func (uc *UseCase) ChangePassword(actor domain.Actor, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(actor.UserID)
	if err != nil {
		return err
	}
	if user == nil || user.TenantID != actor.TenantID {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

func (uc *UseCase) session(user *entity.User, tenant *entity.Tenant) (*dto.LoginResponse, error) {
	token, expiresAt, err := jwt.Generate(
		uc.jwtCfg.Secret, user.ID, tenant.ID, user.DepartmentID, user.Role,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *toUserResponse(user),
		Tenant: dto.TenantResponse{
			ID:       tenant.ID,
			Name:     tenant.Name,
			Slug:     tenant.Slug,
			Industry: tenant.Industry,
			Plan:     tenant.Plan,
		},
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		TenantID:     u.TenantID,
		DepartmentID: u.DepartmentID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
	}
}
