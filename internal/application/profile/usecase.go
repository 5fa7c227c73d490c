// Package profile actualización del perfil propio, historial de experiencia
// laboral y administración de cuentas.
package profile

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

// TxRunner ejecuta la actualización de cuenta + perfil y la eliminación de
// cuentas en una transacción (misma forma que el registro).
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		accounts repository.AccountRepository,
		applicants repository.ApplicantProfileRepository,
		companies repository.CompanyProfileRepository,
	) error) error
	RunAccountDeletion(ctx context.Context, fn func(
		accounts repository.AccountRepository,
	) error) error
}

// ProfileUseCase perfil propio y cuentas.
type ProfileUseCase struct {
	txRunner       TxRunner
	accountRepo    repository.AccountRepository
	applicantRepo  repository.ApplicantProfileRepository
	companyRepo    repository.CompanyProfileRepository
	experienceRepo repository.WorkExperienceRepository
	catalogRepo    repository.CatalogRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(
	txRunner TxRunner,
	accountRepo repository.AccountRepository,
	applicantRepo repository.ApplicantProfileRepository,
	companyRepo repository.CompanyProfileRepository,
	experienceRepo repository.WorkExperienceRepository,
	catalogRepo repository.CatalogRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		txRunner:       txRunner,
		accountRepo:    accountRepo,
		applicantRepo:  applicantRepo,
		companyRepo:    companyRepo,
		experienceRepo: experienceRepo,
		catalogRepo:    catalogRepo,
	}
}

// Update actualiza el perfil del dueño de la sesión y, si viene password, la
// credencial; ambos cambios en una sola transacción.
func (uc *ProfileUseCase) Update(ctx context.Context, accountID string, in dto.UpdateProfileRequest) error {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	if in.Password != "" && len(in.Password) < 8 {
		return domain.ErrInvalidInput
	}
	var newHash string
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		newHash = string(h)
	}
	if account.AccountType == entity.AccountPostulante && in.UniversityID != "" {
		ok, err := uc.catalogRepo.Exists(entity.CatalogUniversities, in.UniversityID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
	}

	return uc.txRunner.RunRegistration(ctx, func(
		accounts repository.AccountRepository,
		applicants repository.ApplicantProfileRepository,
		companies repository.CompanyProfileRepository,
	) error {
		if newHash != "" {
			if err := accounts.UpdatePassword(accountID, newHash); err != nil {
				return err
			}
		}
		switch account.AccountType {
		case entity.AccountPostulante:
			p, err := applicants.GetByAccountID(accountID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
			if in.FirstName != "" {
				p.FirstName = in.FirstName
			}
			if in.LastName != "" {
				p.LastName = in.LastName
			}
			if in.Phone != "" {
				p.Phone = in.Phone
			}
			if in.UniversityID != "" {
				p.UniversityID = in.UniversityID
			}
			return applicants.Update(p)
		case entity.AccountEmpresa:
			p, err := companies.GetByAccountID(accountID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
			if in.LegalName != "" {
				p.LegalName = in.LegalName
			}
			if in.Sector != "" {
				p.Sector = in.Sector
			}
			if in.ContactName != "" {
				p.ContactName = in.ContactName
			}
			if in.ContactPhone != "" {
				p.ContactPhone = in.ContactPhone
			}
			if in.ContactEmail != "" {
				p.ContactEmail = in.ContactEmail
			}
			return companies.Update(p)
		}
		return nil
	})
}

// ListAccounts vista admin: todas las cuentas menos las hiring_group.
func (uc *ProfileUseCase) ListAccounts() ([]dto.AccountResponse, error) {
	rows, err := uc.accountRepo.List(entity.AccountHiringGroup)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, dto.AccountResponse{
			ID:          a.ID,
			Email:       a.Email,
			AccountType: a.AccountType,
			Status:      a.Status,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out, nil
}

// ListCompanies vista admin: todas las empresas registradas.
func (uc *ProfileUseCase) ListCompanies() ([]dto.CompanyResponse, error) {
	rows, err := uc.companyRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.CompanyResponse{
			AccountID:    p.AccountID,
			LegalName:    p.LegalName,
			TaxID:        p.TaxID,
			Sector:       p.Sector,
			ContactName:  p.ContactName,
			ContactPhone: p.ContactPhone,
			ContactEmail: p.ContactEmail,
		})
	}
	return out, nil
}

// DeleteAccount elimina una cuenta. Mientras contratos o postulaciones la
// referencien, la eliminación falla con conflicto (guardia de integridad).
// La cascada (experiencias, perfil, cuenta) corre dentro de una transacción:
// si la FK corta a mitad de camino, ningún paso previo queda aplicado.
func (uc *ProfileUseCase) DeleteAccount(ctx context.Context, accountID string) error {
	a, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunAccountDeletion(ctx, func(accounts repository.AccountRepository) error {
		return accounts.Delete(accountID)
	})
}

// AddExperience agrega una entrada al historial laboral del postulante.
func (uc *ProfileUseCase) AddExperience(applicantID string, in dto.WorkExperienceRequest) (*dto.WorkExperienceResponse, error) {
	if in.CompanyName == "" || in.RoleTitle == "" || in.StartDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.WorkExperience{
		ID:          uuid.New().String(),
		ApplicantID: applicantID,
		CompanyName: in.CompanyName,
		RoleTitle:   in.RoleTitle,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	if err := uc.experienceRepo.Create(e); err != nil {
		return nil, err
	}
	return toExperienceResponse(e), nil
}

// ListExperience historial laboral del postulante.
func (uc *ProfileUseCase) ListExperience(applicantID string) ([]dto.WorkExperienceResponse, error) {
	rows, err := uc.experienceRepo.ListByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkExperienceResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, *toExperienceResponse(e))
	}
	return out, nil
}

// DeleteExperience elimina una entrada propia del historial.
func (uc *ProfileUseCase) DeleteExperience(applicantID, experienceID string) error {
	return uc.experienceRepo.Delete(experienceID, applicantID)
}

func toExperienceResponse(e *entity.WorkExperience) *dto.WorkExperienceResponse {
	return &dto.WorkExperienceResponse{
		ID:          e.ID,
		CompanyName: e.CompanyName,
		RoleTitle:   e.RoleTitle,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
	}
}
