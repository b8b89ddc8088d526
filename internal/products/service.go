package products

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
	pkgerrors "github.com/jmlee-dev/cafekiosk-backend/pkg/errors"
)

const firstProductNumber = "001"

// Service exposes catalog management operations.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	GetSellingProducts(ctx context.Context) ([]ProductDTO, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid product type %q", input.Type))
	}
	if !input.SellingStatus.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid selling status %q", input.SellingStatus))
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name required")
	}
	if input.Price <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product price must be positive")
	}

	number, err := s.nextProductNumber(ctx)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:            uuid.New(),
		ProductNumber: number,
		Type:          input.Type,
		SellingStatus: input.SellingStatus,
		Name:          input.Name,
		Price:         input.Price,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return FromModel(product), nil
}

func (s *service) GetSellingProducts(ctx context.Context) ([]ProductDTO, error) {
	listed, err := s.repo.FindAllBySellingStatusIn(ctx, enums.DisplayStatuses())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list selling products")
	}
	return FromModels(listed), nil
}

// nextProductNumber assigns sequential zero-padded numbers starting at "001".
func (s *service) nextProductNumber(ctx context.Context) (string, error) {
	latest, err := s.repo.FindLatestProductNumber(ctx)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load latest product number")
	}
	if latest == "" {
		return firstProductNumber, nil
	}
	n, err := strconv.Atoi(latest)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("malformed product number %q", latest))
	}
	return fmt.Sprintf("%03d", n+1), nil
}
