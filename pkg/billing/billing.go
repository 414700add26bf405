package billing

import (
	"context"
	"errors"
	"fmt"

	"auracoach/pkg/domain"
	"auracoach/pkg/store"
)

// ErrUnknownPackage is returned for purchase attempts on product IDs that are
// not in the current offering.
var ErrUnknownPackage = errors.New("unknown package")

// Product describes a purchasable subscription product.
type Product struct {
	Identifier   string  `json:"identifier"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	PriceString  string  `json:"priceString"`
	CurrencyCode string  `json:"currencyCode"`
}

// Package pairs a store package identifier with its product.
type Package struct {
	Identifier  string  `json:"identifier"`
	PackageType string  `json:"packageType"`
	Product     Product `json:"product"`
}

// Offering is the current set of purchasable packages.
type Offering struct {
	AvailablePackages []Package `json:"availablePackages"`
}

// Service answers subscription questions and processes purchases.
type Service interface {
	IsPremium(ctx context.Context, userID string) (bool, error)
	PurchasePackage(ctx context.Context, userID, productID string) (domain.User, error)
	RestorePurchases(ctx context.Context, userID string) (domain.User, error)
	GetOfferings() Offering
}

// MockService is a stand-in for a real payment provider. Purchases succeed
// unconditionally and flip the user's stored plan.
type MockService struct {
	records *store.Records
}

// NewMockService builds a mock billing service over the record store.
func NewMockService(records *store.Records) *MockService {
	return &MockService{records: records}
}

var currentOffering = Offering{
	AvailablePackages: []Package{
		{
			Identifier:  "$rc_monthly",
			PackageType: "MONTHLY",
			Product: Product{
				Identifier:   "pro_monthly",
				Title:        "Pro Monthly",
				Description:  "Unlock all features",
				Price:        9.99,
				PriceString:  "$9.99",
				CurrencyCode: "USD",
			},
		},
		{
			Identifier:  "$rc_annual",
			PackageType: "ANNUAL",
			Product: Product{
				Identifier:   "pro_annual",
				Title:        "Pro Annual",
				Description:  "Unlock all features (Save 20%)",
				Price:        99.99,
				PriceString:  "$99.99",
				CurrencyCode: "USD",
			},
		},
	},
}

// IsPremium reports whether the user is on the pro plan.
func (s *MockService) IsPremium(ctx context.Context, userID string) (bool, error) {
	user, ok := s.records.GetUserByID(ctx, userID)
	if !ok {
		return false, fmt.Errorf("user %s not found", userID)
	}
	return user.Plan == domain.PlanPro, nil
}

// PurchasePackage upgrades the user to pro for a known product ID.
func (s *MockService) PurchasePackage(ctx context.Context, userID, productID string) (domain.User, error) {
	if !knownProduct(productID) {
		return domain.User{}, ErrUnknownPackage
	}
	user, ok := s.records.GetUserByID(ctx, userID)
	if !ok {
		return domain.User{}, fmt.Errorf("user %s not found", userID)
	}
	user.Plan = domain.PlanPro
	if err := s.records.SaveUser(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("save plan upgrade: %w", err)
	}
	return user, nil
}

// RestorePurchases re-reads the user's stored plan. The mock has no external
// receipt source, so the stored plan is authoritative.
func (s *MockService) RestorePurchases(ctx context.Context, userID string) (domain.User, error) {
	user, ok := s.records.GetUserByID(ctx, userID)
	if !ok {
		return domain.User{}, fmt.Errorf("user %s not found", userID)
	}
	return user, nil
}

// GetOfferings returns the current offering.
func (s *MockService) GetOfferings() Offering {
	return currentOffering
}

func knownProduct(productID string) bool {
	for _, pkg := range currentOffering.AvailablePackages {
		if pkg.Product.Identifier == productID {
			return true
		}
	}
	return false
}
