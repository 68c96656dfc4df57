package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton timezone service
// Uses singleton pattern because tzf.Finder loads timezone data into memory (~50MB)
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, fmt.Errorf("timezone service failed to initialize")
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("no timezone found for coordinates (%.6f, %.6f)", latitude, longitude)
	}
	return name, nil
}
