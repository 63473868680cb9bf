package seeder

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubvest/clubledger-backend/internal/domain"
)

// Fixed UUIDs for the default club funds so that repeated startups
// and multiple instances seed the same rows
var (
	DefaultGeneralFund   = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	DefaultEmergencyFund = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	DefaultSocialFund    = uuid.MustParse("00000000-0000-0000-0000-000000000003")
)

// DefaultFund defines the structure for a fund to be seeded
type DefaultFund struct {
	ID          uuid.UUID
	Name        string
	FundType    domain.FundType
	Description string
}

// FundSeeder handles seeding of the default club funds
type FundSeeder struct {
	repo domain.FundRepository
}

// NewFundSeeder creates a new FundSeeder instance
func NewFundSeeder(repo domain.FundRepository) *FundSeeder {
	return &FundSeeder{
		repo: repo,
	}
}

// Seed ensures the default club funds exist in the database
// If a fund doesn't exist, it creates it with a zero balance
func (s *FundSeeder) Seed(ctx context.Context) error {
	defaults := []DefaultFund{
		{
			ID:          DefaultGeneralFund,
			Name:        "General Fund",
			FundType:    domain.FundTypeGeneral,
			Description: "Day-to-day club money",
		},
		{
			ID:          DefaultEmergencyFund,
			Name:        "Emergency Fund",
			FundType:    domain.FundTypeEmergency,
			Description: "Reserve for unplanned expenses",
		},
		{
			ID:          DefaultSocialFund,
			Name:        "Social Fund",
			FundType:    domain.FundTypeSocial,
			Description: "Events and member activities",
		},
	}

	for _, def := range defaults {
		// Try to get the fund by ID
		_, err := s.repo.GetByID(ctx, def.ID)
		if err == nil {
			// Fund exists, no action needed
			continue
		}

		fund := &domain.Fund{
			ID:             def.ID,
			Name:           def.Name,
			FundType:       def.FundType,
			CurrentBalance: decimal.Zero,
			IsActive:       true,
			Description:    def.Description,
		}

		// Validate before creating
		if err := fund.Validate(); err != nil {
			return err
		}

		if err := s.repo.Create(ctx, fund); err != nil {
			return err
		}
	}

	return nil
}
