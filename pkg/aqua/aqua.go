package aqua

import (
	"fmt"
	"time"

	"liyu1981.xyz/aquarium-service/pkg/db"
	"liyu1981.xyz/aquarium-service/pkg/models"
)

//go:generate mockgen -source=aqua.go -destination=mocks/mock_aqua.go -package=mocks

type IAquarium interface {
	ListAquariums() ([]models.Aquarium, error)
	CreateAquarium(input *models.Aquarium) (*models.Aquarium, error)
	DeleteAquarium(id uint) error
}

type IMeasurement interface {
	AddMeasurement(aquariumID uint, input *models.Measurement) ([]models.Measurement, error)
	ListMeasurements(aquariumID uint) ([]models.Measurement, error)
}

type IFish interface {
	ListFish() ([]models.Fish, error)
	CreateFish(input *models.Fish) (*models.Fish, error)
	DeleteFish(id uint) error
}

type IAuth interface {
	Login(username, password string) (string, error)
	Logout(token string) error
	ResolveToken(token string) (string, error)
	Register(username, password string) error
	SeedUser(username, password string) error
	PurgeExpiredSessions() (int64, error)
}

// OrphanPolicy decides what happens to fish when their aquarium is deleted.
type OrphanPolicy string

const (
	OrphanPolicyKeep    OrphanPolicy = "keep"
	OrphanPolicyCascade OrphanPolicy = "cascade"
)

func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch OrphanPolicy(s) {
	case OrphanPolicyKeep, OrphanPolicyCascade:
		return OrphanPolicy(s), nil
	case "":
		return OrphanPolicyKeep, nil
	default:
		return "", fmt.Errorf("unknown orphan policy %q, want keep or cascade", s)
	}
}

type Aqua struct {
	Db          db.DB
	Aquarium    IAquarium
	Measurement IMeasurement
	Fish        IFish
	Auth        IAuth

	OrphanPolicy OrphanPolicy
	// SessionTTL of zero keeps sessions until logout.
	SessionTTL time.Duration

	now func() time.Time
}

type ServiceOpts struct {
	Aquarium    IAquarium
	Measurement IMeasurement
	Fish        IFish
	Auth        IAuth
}

func (a *Aqua) WithServices(opts ServiceOpts) *Aqua {
	if opts.Aquarium != nil {
		a.Aquarium = opts.Aquarium
	}
	if opts.Measurement != nil {
		a.Measurement = opts.Measurement
	}
	if opts.Fish != nil {
		a.Fish = opts.Fish
	}
	if opts.Auth != nil {
		a.Auth = opts.Auth
	}
	return a
}

// WithDefaultServices wires the gorm-backed implementation of every service.
func (a *Aqua) WithDefaultServices() *Aqua {
	return a.WithServices(ServiceOpts{
		Aquarium:    a.GetIAquarium(),
		Measurement: a.GetIMeasurement(),
		Fish:        a.GetIFish(),
		Auth:        a.GetIAuth(),
	})
}

func (a *Aqua) clock() time.Time {
	if a.now != nil {
		return a.now().UTC()
	}
	return time.Now().UTC()
}

// WithClock replaces the wall clock used for session timestamps.
func (a *Aqua) WithClock(now func() time.Time) *Aqua {
	a.now = now
	return a
}
