package customer

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"customer-service/feature/customer/models"

	"go.uber.org/zap"
)

var (
	seedFirstNames = []string{"Alex", "Maria", "Jamal", "Yuki", "Elena", "Tomas", "Priya", "Noah", "Amara", "Lucas"}
	seedLastNames  = []string{"Stefanov", "Garcia", "Okafor", "Tanaka", "Novak", "Silva", "Rao", "Fischer", "Mensah", "Moreau"}
)

// RandomRegistration builds a plausible customer with an age between 16 and 99.
func RandomRegistration(r *rand.Rand) models.Registration {
	first := seedFirstNames[r.IntN(len(seedFirstNames))]
	last := seedLastNames[r.IntN(len(seedLastNames))]
	return models.Registration{
		Name:  first + " " + last,
		Email: strings.ToLower(first) + "." + strings.ToLower(last) + "@gmail.com",
		Age:   16 + r.IntN(99-16+1),
	}
}

// Seed adds n random customers and returns how many were added.
// Registrations whose email is already taken are skipped.
func (s *Service) Seed(ctx context.Context, n int, r *rand.Rand) (int, error) {
	added := 0
	for i := 0; i < n; i++ {
		reg := RandomRegistration(r)
		if err := s.AddCustomer(ctx, reg); err != nil {
			if errors.Is(err, ErrConflict) {
				s.logger.Warn("Seed customer skipped", zap.String("email", reg.Email), zap.Error(err))
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}
