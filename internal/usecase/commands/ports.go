package commands

//go:generate mockgen -source=ports.go -destination=../../testutil/mock/commands/ports_mock.go -package=commandsmock

import (
	"mall-space-booking/internal/domain/pricing"
)

// Pricer is satisfied by *pricing.Calculator.
type Pricer interface {
	Price(req pricing.Request) (pricing.Result, error)
}
