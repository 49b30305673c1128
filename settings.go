package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxProfileImageSize is the soft cap on the profile image data URI.
// Oversized images are rejected with an error, never silently truncated.
const MaxProfileImageSize = 2 * 1024 * 1024

// ErrImageTooLarge rejects profile images above MaxProfileImageSize.
var ErrImageTooLarge = errors.New("profile image exceeds 2MB")

// Settings holds the scalar account preferences.
type Settings struct {
	Name          string          `json:"name,omitempty"`
	Email         string          `json:"email,omitempty"`
	Currency      string          `json:"currency"` // display symbol or ISO code
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	ProfileImage  string          `json:"profileImage,omitempty"` // data URI
}

// DefaultSettings mirrors the defaults the original app seeds an empty
// storage with.
func DefaultSettings() Settings {
	return Settings{
		Currency:      "$",
		MonthlyBudget: decimal.NewFromInt(5000),
	}
}

func (s Settings) validate() error {
	if strings.TrimSpace(s.Currency) == "" {
		return fmt.Errorf("currency symbol is missing")
	}
	if !s.MonthlyBudget.IsPositive() {
		return fmt.Errorf("monthly budget must be positive, got %s", s.MonthlyBudget)
	}
	if len(s.ProfileImage) > MaxProfileImageSize {
		return ErrImageTooLarge
	}
	return nil
}
