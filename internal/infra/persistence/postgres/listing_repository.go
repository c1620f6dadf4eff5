package postgres

import (
	"context"

	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/repository"
	"proptrust/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPreconditionFailed.WrapMessage("listing already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// UpdateIfUnchanged writes every mutable column, guarded by the previously read status and version.
func (repo *listingRepository) UpdateIfUnchanged(ctx context.Context, listing *entity.Listing, expectedStatus entity.ListingStatus, expectedVersion int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND status = ? AND version = ?", listing.ID, string(expectedStatus), expectedVersion).
		Updates(map[string]any{
			"status":                 string(listing.Status),
			"is_duplicate":           listing.IsDuplicate,
			"flagged_for_review":     listing.FlaggedForReview,
			"verified_at":            listing.VerifiedAt,
			"rejection_reason":       listing.RejectionReason,
			"scheduled_vetting_date": listing.ScheduledVettingDate,
			"ml_verdict":             string(listing.MLVerdict),
			"ml_confidence_score":    listing.MLConfidenceScore,
			"version":                listing.Version,
			"updated_at":             listing.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingStale
	}

	return nil
}

// FindByNormalizedAddress reads from the primary so a duplicate committed moments ago is visible.
func (repo *listingRepository) FindByNormalizedAddress(ctx context.Context, normalized string, excludeID uuid.UUID, excludeStatuses []entity.ListingStatus) ([]*entity.Listing, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("normalized_address = ? AND id <> ?", normalized, excludeID)
	if len(excludeStatuses) > 0 {
		query = query.Where("status NOT IN ?", statusStrings(excludeStatuses))
	}

	var listingModels []*model.ListingModel
	if err := query.Order("id").Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by address")
	}

	return toListingDomains(listingModels), nil
}

// FindWithinBound returns listings whose coordinates fall inside the bounding box.
func (repo *listingRepository) FindWithinBound(ctx context.Context, bound orb.Bound, excludeID uuid.UUID, excludeStatuses []entity.ListingStatus) ([]*entity.Listing, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id <> ?", excludeID).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat())
	// A box crossing the antimeridian comes back with Min.Lon > Max.Lon.
	if bound.Min.Lon() > bound.Max.Lon() {
		query = query.Where("(longitude >= ? OR longitude <= ?)", bound.Min.Lon(), bound.Max.Lon())
	} else {
		query = query.Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon())
	}
	if len(excludeStatuses) > 0 {
		query = query.Where("status NOT IN ?", statusStrings(excludeStatuses))
	}

	var listingModels []*model.ListingModel
	if err := query.Order("id").Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings within bound")
	}

	return toListingDomains(listingModels), nil
}

// FindByOwnerInStatuses returns the owner's other listings in the given statuses.
func (repo *listingRepository) FindByOwnerInStatuses(ctx context.Context, ownerID uuid.UUID, statuses []entity.ListingStatus, excludeID uuid.UUID) ([]*entity.Listing, error) {
	if len(statuses) == 0 {
		return []*entity.Listing{}, nil
	}

	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("owner_id = ? AND id <> ?", ownerID, excludeID).
		Where("status IN ?", statusStrings(statuses)).
		Order("id").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by owner")
	}

	return toListingDomains(listingModels), nil
}

func statusStrings(statuses []entity.ListingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}

	return result
}

// --- Mapper Functions ---

func toListingDomains(listingModels []*model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings
}

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:                   data.ID,
		OwnerID:              data.OwnerID,
		Title:                data.Title,
		Description:          data.Description,
		Price:                data.Price,
		Address:              data.Address,
		NormalizedAddress:    data.NormalizedAddress,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		Status:               entity.ListingStatus(data.Status),
		IsDuplicate:          data.IsDuplicate,
		FlaggedForReview:     data.FlaggedForReview,
		VerifiedAt:           data.VerifiedAt,
		RejectionReason:      data.RejectionReason,
		ScheduledVettingDate: data.ScheduledVettingDate,
		MLVerdict:            entity.MLVerdict(data.MLVerdict),
		MLConfidenceScore:    data.MLConfidenceScore,
		Version:              data.Version,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:                   data.ID,
		OwnerID:              data.OwnerID,
		Title:                data.Title,
		Description:          data.Description,
		Price:                data.Price,
		Address:              data.Address,
		NormalizedAddress:    data.NormalizedAddress,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		Status:               string(data.Status),
		IsDuplicate:          data.IsDuplicate,
		FlaggedForReview:     data.FlaggedForReview,
		VerifiedAt:           data.VerifiedAt,
		RejectionReason:      data.RejectionReason,
		ScheduledVettingDate: data.ScheduledVettingDate,
		MLVerdict:            string(data.MLVerdict),
		MLConfidenceScore:    data.MLConfidenceScore,
		Version:              data.Version,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
