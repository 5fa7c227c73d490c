package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
	"github.com/hiringgroup/talento-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta el registro (cuenta + perfil) dentro de una transacción.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		accounts repository.AccountRepository,
		applicants repository.ApplicantProfileRepository,
		companies repository.CompanyProfileRepository,
	) error) error
}

// AuthUseCase registro y login. El login calcula el rol efectivo en cada
// llamada: un postulante con contrato activo es "contratado" durante esa
// sesión. El rol derivado nunca se persiste ni se cachea.
type AuthUseCase struct {
	txRunner     TxRunner
	accountRepo  repository.AccountRepository
	contractRepo repository.ContractRepository
	catalogRepo  repository.CatalogRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	txRunner TxRunner,
	accountRepo repository.AccountRepository,
	contractRepo repository.ContractRepository,
	catalogRepo repository.CatalogRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		txRunner:     txRunner,
		accountRepo:  accountRepo,
		contractRepo: contractRepo,
		catalogRepo:  catalogRepo,
		jwtCfg:       jwtCfg,
	}
}

// Register crea cuenta y perfil en una sola transacción. Hashea la contraseña
// con bcrypt. Duplicados de email, cédula o RIF llegan como ErrEmailAlreadyExists,
// ErrNationalIDExists o ErrTaxIDExists desde el constraint único.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if !entity.ValidAccountType(in.AccountType) || in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	switch in.AccountType {
	case entity.AccountPostulante:
		if in.FirstName == "" || in.LastName == "" || in.NationalID == "" || in.Phone == "" {
			return nil, domain.ErrInvalidInput
		}
		if in.UniversityID != "" {
			ok, err := uc.catalogRepo.Exists(entity.CatalogUniversities, in.UniversityID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, domain.ErrNotFound
			}
		}
	case entity.AccountEmpresa:
		if in.LegalName == "" || in.TaxID == "" || in.Sector == "" ||
			in.ContactName == "" || in.ContactPhone == "" || in.ContactEmail == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		AccountType:  in.AccountType,
		Status:       entity.AccountActivo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunRegistration(ctx, func(
		accounts repository.AccountRepository,
		applicants repository.ApplicantProfileRepository,
		companies repository.CompanyProfileRepository,
	) error {
		if err := accounts.Create(account); err != nil {
			return err
		}
		switch in.AccountType {
		case entity.AccountPostulante:
			return applicants.Create(&entity.ApplicantProfile{
				AccountID:    account.ID,
				FirstName:    in.FirstName,
				LastName:     in.LastName,
				NationalID:   in.NationalID,
				Phone:        in.Phone,
				UniversityID: in.UniversityID,
			})
		case entity.AccountEmpresa:
			return companies.Create(&entity.CompanyProfile{
				AccountID:    account.ID,
				LegalName:    in.LegalName,
				TaxID:        in.TaxID,
				Sector:       in.Sector,
				ContactName:  in.ContactName,
				ContactPhone: in.ContactPhone,
				ContactEmail: in.ContactEmail,
			})
		}
		return nil // hiring_group no tiene perfil propio
	})
	if err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Login verifica credenciales y deriva el rol efectivo. Email inexistente,
// contraseña incorrecta y cuenta inactiva responden lo mismo: ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accountRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if account.Status != entity.AccountActivo {
		return nil, domain.ErrUnauthorized
	}

	role, err := uc.effectiveRole(account)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:         token,
		EffectiveRole: role,
		Account:       *toAccountResponse(account),
	}, nil
}

// effectiveRole deriva el rol de la sesión a partir de hechos almacenados.
// Único lugar del sistema donde se calcula: el estado de los contratos puede
// cambiar entre sesiones, así que se consulta en cada login.
func (uc *AuthUseCase) effectiveRole(account *entity.Account) (string, error) {
	if account.AccountType != entity.AccountPostulante {
		return account.AccountType, nil
	}
	hired, err := uc.contractRepo.HasActiveByApplicant(account.ID)
	if err != nil {
		return "", err
	}
	if hired {
		return entity.RoleContratado, nil
	}
	return entity.AccountPostulante, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		AccountType: a.AccountType,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}
