package app

import (
	"context"

	"auracoach/pkg/billing"
	"auracoach/pkg/domain"
	"auracoach/pkg/events"
)

// Offerings lists the purchasable packages.
func (a *App) Offerings() billing.Offering {
	return a.billing.GetOfferings()
}

// Purchase upgrades the user via the billing provider.
func (a *App) Purchase(ctx context.Context, userID, productID string) (domain.User, error) {
	user, err := a.billing.PurchasePackage(ctx, userID, productID)
	if err != nil {
		return domain.User{}, err
	}
	a.publish(ctx, events.Event{
		Type:   events.TypePlanUpgraded,
		UserID: userID,
		Data:   map[string]any{"product": productID},
	})
	return user, nil
}

// RestorePurchases re-syncs the user's plan from the billing provider.
func (a *App) RestorePurchases(ctx context.Context, userID string) (domain.User, error) {
	return a.billing.RestorePurchases(ctx, userID)
}

// IsPremium reports the user's subscription state.
func (a *App) IsPremium(ctx context.Context, userID string) (bool, error) {
	return a.billing.IsPremium(ctx, userID)
}
