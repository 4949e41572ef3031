package domain

import "time"

const DefaultCleanupBufferMinutes = 10

// TotalMinutes is the length of an appointment for the service plus add-ons,
// including the cleanup buffer that follows every appointment.
func TotalMinutes(svc Service, addons []Addon, cleanupBufferMinutes int) int {
	total := svc.DurationMinutes + cleanupBufferMinutes
	for _, a := range addons {
		total += a.ExtraDurationMinutes
	}
	return total
}

func TotalPriceCents(svc Service, addons []Addon) int64 {
	total := svc.PriceCents
	for _, a := range addons {
		total += a.ExtraPriceCents
	}
	return total
}

func Minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
