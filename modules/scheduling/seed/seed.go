package seed

import (
	"context"
	"time"

	"github.com/10021987z/dzilo-sub003/modules/scheduling/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/scheduling/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/calendar"
)

// Events seeds a demo day of meetings around today.
func Events(ctx context.Context, app application.Application) error {
	svc := app.Service(services.EventService{}).(*services.EventService)
	today := time.Now().Format(calendar.DateLayout)
	for _, dto := range []dtos.EventDTO{
		{Title: "Team standup", Date: today, StartTime: "09:00", EndTime: "09:15"},
		{Title: "Candidate debrief", Date: today, StartTime: "14:00", EndTime: "15:00"},
		{Title: "1:1 with Ada", Date: today, StartTime: "16:30", EndTime: "17:00", Source: "google", SyncStatus: "synced"},
	} {
		dto := dto
		if _, err := svc.Create(ctx, &dto); err != nil {
			return err
		}
	}
	return nil
}
