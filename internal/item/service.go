package item

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/storage"
	"github.com/shopspring/decimal"
)

const (
	maxImageSizeBytes = 10 << 20 // 10 MiB
	maxImageDimension = 1600
)

type CreateRequest struct {
	Name          string
	Description   *string
	PricePerDay   decimal.Decimal
	Category      string
	Available     bool
	StockQuantity int
}

type UpdateRequest struct {
	Name          *string
	Description   *string
	PricePerDay   *decimal.Decimal
	Category      *string
	Available     *bool
	StockQuantity *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, filter Filter) ([]*Item, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Item, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, fileHeader *multipart.FileHeader) (*Item, error)
}

type service struct {
	repo      Repository
	store     storage.Storage
	processor *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage, processor *storage.ImageProcessor) Service {
	return &service{
		repo:      repo,
		store:     store,
		processor: processor,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.PricePerDay.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if req.StockQuantity < 1 {
		return nil, ErrInvalidStock
	}

	it := &Item{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		PricePerDay:   req.PricePerDay,
		Category:      strings.TrimSpace(req.Category),
		Available:     req.Available,
		StockQuantity: req.StockQuantity,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Item, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		it.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		it.Description = req.Description
	}
	if req.PricePerDay != nil {
		if req.PricePerDay.IsNegative() {
			return nil, ErrInvalidPrice
		}
		it.PricePerDay = *req.PricePerDay
	}
	if req.Category != nil {
		it.Category = strings.TrimSpace(*req.Category)
	}
	if req.Available != nil {
		it.Available = *req.Available
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 1 {
			return nil, ErrInvalidStock
		}
		it.StockQuantity = *req.StockQuantity
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Best effort: remove the stored photo after the row is gone.
	if it.ImageURL != nil {
		_ = s.store.Delete(ctx, storedPathFromURL(*it.ImageURL))
	}
	return nil
}

func (s *service) UploadImage(ctx context.Context, id string, fileHeader *multipart.FileHeader) (*Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fileHeader.Size > maxImageSizeBytes {
		return nil, ErrImageTooLarge
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	normalized, err := s.processor.NormalizeJPEG(src, maxImageDimension, maxImageDimension)
	if err != nil {
		return nil, ErrInvalidImage
	}

	storedPath := path.Join("items", uuid.NewString()+".jpg")
	if err := s.store.Save(ctx, storedPath, normalized); err != nil {
		return nil, fmt.Errorf("failed to store item image: %w", err)
	}

	url := imageURL(storedPath)
	if err := s.repo.UpdateImageURL(ctx, id, &url); err != nil {
		// Roll the orphaned file back so storage stays in sync with the row.
		_ = s.store.Delete(ctx, storedPath)
		return nil, err
	}

	// Replace the previous photo once the new one is referenced.
	if it.ImageURL != nil {
		_ = s.store.Delete(ctx, storedPathFromURL(*it.ImageURL))
	}

	it.ImageURL = &url
	return it, nil
}

// imageURL maps a stored file path to its public URL under /uploads.
func imageURL(storedPath string) string {
	return "/uploads/" + storedPath
}

func storedPathFromURL(url string) string {
	return strings.TrimPrefix(url, "/uploads/")
}
