package catalog

import (
	"strings"

	"barbershop/internal/schedule"
)

// Lookup resolves a service from a loaded catalog by two explicit strategies
// tried in order: stable id first, then exact name match. Older booking rows
// reference services by name only, so both paths stay supported.
func Lookup(services []Service, id int, name string) (*Service, bool) {
	if id != 0 {
		for i := range services {
			if services[i].ID == id {
				return &services[i], true
			}
		}
	}

	if name != "" {
		for i := range services {
			if strings.EqualFold(services[i].Name, name) {
				return &services[i], true
			}
		}
	}

	return nil, false
}

// Resolver adapts a loaded catalog to the scheduling engine's duration
// lookup. Unresolved services report defaulted=true and the engine falls
// back to its standard 30-minute window.
func Resolver(services []Service) schedule.DurationResolver {
	return func(serviceID int, serviceName string) (int, bool) {
		if svc, ok := Lookup(services, serviceID, serviceName); ok {
			return svc.DurationMinutes, false
		}
		return schedule.DefaultDurationMinutes, true
	}
}
