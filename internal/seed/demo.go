// Package seed holds the demo catalog used by local runs and the seed command.
package seed

import (
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

var namespace = uuid.MustParse("6f1c2b9e-3d4a-4c1e-9a51-2f0d8e7b5a10")

// ID derives a stable id so repeated seeding is idempotent.
func ID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(kind+"/"+name))
}

// Demo returns a small salon: two services, two add-ons and two staff members
// working weekdays from 09:00 to 17:00.
func Demo() store.CatalogSeed {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	gel := domain.Service{ID: ID("service", "gel-manicure"), Name: "Gel Manicure", DurationMinutes: 45, PriceCents: 4500, CreatedAt: created}
	pedi := domain.Service{ID: ID("service", "classic-pedicure"), Name: "Classic Pedicure", DurationMinutes: 60, PriceCents: 5500, CreatedAt: created.Add(time.Second)}

	art := domain.Addon{ID: ID("addon", "nail-art"), Name: "Nail Art", ExtraDurationMinutes: 15, ExtraPriceCents: 1000, CreatedAt: created}
	soak := domain.Addon{ID: ID("addon", "paraffin-soak"), Name: "Paraffin Soak", ExtraDurationMinutes: 10, ExtraPriceCents: 800, CreatedAt: created.Add(time.Second)}

	anna := domain.StaffMember{ID: ID("staff", "anna"), Name: "Anna", Active: true, CreatedAt: created}
	ben := domain.StaffMember{ID: ID("staff", "ben"), Name: "Ben", Active: true, CreatedAt: created.Add(time.Second)}

	out := store.CatalogSeed{
		Services: []domain.Service{gel, pedi},
		Addons:   []domain.Addon{art, soak},
		Staff:    []domain.StaffMember{anna, ben},
		StaffServices: []domain.StaffService{
			{StaffID: anna.ID, ServiceID: gel.ID},
			{StaffID: anna.ID, ServiceID: pedi.ID},
			{StaffID: ben.ID, ServiceID: gel.ID},
		},
	}
	for _, m := range out.Staff {
		for day := time.Monday; day <= time.Friday; day++ {
			out.Windows = append(out.Windows, domain.WeeklyWindow{
				ID:        ID("window", m.Name+"/"+day.String()),
				StaffID:   m.ID,
				DayOfWeek: day,
				Start:     domain.NewTimeOfDay(9, 0),
				End:       domain.NewTimeOfDay(17, 0),
			})
		}
	}
	return out
}
