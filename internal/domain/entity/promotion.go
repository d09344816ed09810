package entity

import "time"

// Promotion is a time-boxed percentage discount attached to a single game.
// Validity is derived from the clock at evaluation time, never stored.
type Promotion struct {
	// ID is the unique identifier for the promotion (UUID).
	ID string `gorm:"primaryKey;size:36"`

	// GameID references the discounted game.
	GameID string `gorm:"size:36;not null;index"`

	// DiscountPercentage is the percentage taken off the game's price.
	// Must be greater than 0 and at most 100.
	DiscountPercentage float64 `gorm:"not null"`

	// StartDate and EndDate bound the window in which the promotion applies.
	// StartDate must be strictly before EndDate.
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	// IsActive allows an admin to suspend a promotion without deleting it.
	IsActive bool `gorm:"not null"`
}

// IsValidAt reports whether the promotion applies at the given instant:
// it must be active and now must fall within [StartDate, EndDate].
func (p *Promotion) IsValidAt(now time.Time) bool {
	return p.IsActive && !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// DiscountedPrice applies the promotion to originalPrice.
// If the promotion is not valid at now, the price is returned unchanged.
func (p *Promotion) DiscountedPrice(originalPrice float64, now time.Time) float64 {
	if !p.IsValidAt(now) {
		return originalPrice
	}
	return originalPrice * (1 - p.DiscountPercentage/100)
}

// BestPromotion returns the promotion with the highest discount among those
// valid at now, or nil when none applies. Ties keep the first one encountered.
// Catalog listing, game detail and the purchase flow all price through this
// single selection so they agree on the current best discount.
func BestPromotion(promotions []Promotion, now time.Time) *Promotion {
	var best *Promotion
	for i := range promotions {
		p := &promotions[i]
		if !p.IsValidAt(now) {
			continue
		}
		if best == nil || p.DiscountPercentage > best.DiscountPercentage {
			best = p
		}
	}
	return best
}
