package service

import (
	"context"

	"github.com/findme-ke/findme-api/internal/dto"
	apperrors "github.com/findme-ke/findme-api/internal/errors"
	"github.com/findme-ke/findme-api/internal/model"
	"github.com/findme-ke/findme-api/internal/repository"
	ctxutil "github.com/findme-ke/findme-api/pkg/context"
	"github.com/findme-ke/findme-api/pkg/database"
	"github.com/findme-ke/findme-api/pkg/logger"
)

type MissingPersonService struct {
	repo *repository.MissingPersonRepository
}

func NewMissingPersonService(repo *repository.MissingPersonRepository) *MissingPersonService {
	return &MissingPersonService{repo: repo}
}

// Create validates and persists a new report owned by the caller
func (s *MissingPersonService) Create(ctx context.Context, callerID uint, req *dto.CreateMissingPersonRequest) (*dto.MissingPersonResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Create")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	status := req.Status
	if status == "" {
		status = model.StatusMissing
	}
	if !model.ValidStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}

	caseNumber := req.CaseNumber
	if caseNumber != nil && *caseNumber == "" {
		// Empty case numbers are treated as absent, not as a unique value
		caseNumber = nil
	}

	person := &model.MissingPerson{
		UserID:                 callerID,
		FullName:               req.FullName,
		Age:                    req.Age,
		Gender:                 req.Gender,
		Height:                 req.Height,
		Weight:                 req.Weight,
		HairColor:              req.HairColor,
		EyeColor:               req.EyeColor,
		DistinguishingFeatures: req.DistinguishingFeatures,
		LastSeenDate:           req.LastSeenDate,
		LastSeenLocation:       req.LastSeenLocation,
		LastSeenWearing:        req.LastSeenWearing,
		ContactName:            req.ContactName,
		ContactPhone:           req.ContactPhone,
		ContactEmail:           req.ContactEmail,
		CaseNumber:             caseNumber,
		Status:                 status,
		AdditionalInfo:         req.AdditionalInfo,
		PhotoURL:               req.PhotoURL,
	}

	if err := s.repo.Create(ctx, person); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrCaseNumberExists
		}
		logger.ErrorWithContext(ctx, "Failed to create report").
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := dto.NewMissingPersonResponse(person)
	return &response, nil
}

func (s *MissingPersonService) GetByID(ctx context.Context, id uint) (*dto.MissingPersonResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "GetByID")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrReportNotFound
		}
		logger.ErrorWithContext(ctx, "Failed to get report").
			Int("report_id", int(id)).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := dto.NewMissingPersonResponse(person)
	return &response, nil
}

func (s *MissingPersonService) GetAll(ctx context.Context) ([]dto.MissingPersonResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "GetAll")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	persons, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewMissingPersonResponses(persons), nil
}

func (s *MissingPersonService) GetByOwner(ctx context.Context, userID uint) ([]dto.MissingPersonResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "GetByOwner")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	persons, err := s.repo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewMissingPersonResponses(persons), nil
}

// Update applies the allow-listed fields after the ownership check. The
// record is fetched first so a missing report reads as 404 before any 403.
func (s *MissingPersonService) Update(ctx context.Context, id, callerID uint, req *dto.UpdateMissingPersonRequest) (*dto.MissingPersonResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Update")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	if req.IsEmpty() {
		return nil, apperrors.ErrEmptyUpdate
	}

	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := requireOwner(person, callerID); err != nil {
		logger.WarnWithContext(ctx, "Update rejected: caller is not the owner").
			Int("report_id", int(id)).
			Int("caller_id", int(callerID)).
			Int("owner_id", int(person.UserID)).
			Log()
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return nil, apperrors.ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.AdditionalInfo != nil {
		updates["additional_info"] = *req.AdditionalInfo
	}
	if req.LastSeenLocation != nil {
		updates["last_seen_location"] = *req.LastSeenLocation
	}
	if req.LastSeenWearing != nil {
		updates["last_seen_wearing"] = *req.LastSeenWearing
	}
	if req.DistinguishingFeatures != nil {
		updates["distinguishing_features"] = *req.DistinguishingFeatures
	}

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := dto.NewMissingPersonResponse(updated)
	return &response, nil
}

// Delete removes a report after the ownership check
func (s *MissingPersonService) Delete(ctx context.Context, id, callerID uint) error {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Delete")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return apperrors.ErrReportNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := requireOwner(person, callerID); err != nil {
		logger.WarnWithContext(ctx, "Delete rejected: caller is not the owner").
			Int("report_id", int(id)).
			Int("caller_id", int(callerID)).
			Int("owner_id", int(person.UserID)).
			Log()
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if database.IsNotFound(err) {
			return apperrors.ErrReportNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return nil
}

// SetPhotoURL attaches an uploaded photo to a report, owner-only
func (s *MissingPersonService) SetPhotoURL(ctx context.Context, id, callerID uint, photoURL string) (*dto.MissingPersonResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "SetPhotoURL")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := requireOwner(person, callerID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, map[string]interface{}{"photo_url": photoURL})
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := dto.NewMissingPersonResponse(updated)
	return &response, nil
}

// requireOwner enforces the per-row ownership rule on mutating operations
func requireOwner(person *model.MissingPerson, callerID uint) error {
	if person.UserID != callerID {
		return apperrors.ErrForbidden
	}
	return nil
}
