package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/scheduling/domain/entities/event"
	"github.com/10021987z/dzilo-sub003/modules/scheduling/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/pkg/calendar"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
)

type EventService struct {
	repo      event.Repository
	publisher eventbus.EventBus
}

func NewEventService(repo event.Repository, publisher eventbus.EventBus) *EventService {
	return &EventService{repo: repo, publisher: publisher}
}

func (s *EventService) List(ctx context.Context, params *event.FindParams) ([]event.Event, error) {
	if params != nil {
		params.Query.Search = strings.TrimSpace(params.Query.Search)
	}
	return s.repo.List(ctx, params)
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (event.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, dto *dtos.EventDTO) (event.Event, error) {
	entity, err := dto.ToEntity()
	if err != nil {
		return event.Event{}, err
	}
	created, err := s.repo.Save(ctx, entity)
	if err != nil {
		return event.Event{}, err
	}
	s.publisher.Publish(event.CreatedEvent{Result: created})
	return created, nil
}

func (s *EventService) Reschedule(ctx context.Context, id uuid.UUID, date time.Time, startTime, endTime string) (event.Event, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return event.Event{}, err
	}
	moved, err := existing.Reschedule(date, startTime, endTime)
	if err != nil {
		return event.Event{}, err
	}
	saved, err := s.repo.Save(ctx, moved)
	if err != nil {
		return event.Event{}, err
	}
	s.publisher.Publish(event.UpdatedEvent{Result: saved})
	return saved, nil
}

func (s *EventService) Transition(ctx context.Context, id uuid.UUID, apply func(event.Event) event.Event) (event.Event, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return event.Event{}, err
	}
	saved, err := s.repo.Save(ctx, apply(existing))
	if err != nil {
		return event.Event{}, err
	}
	s.publisher.Publish(event.UpdatedEvent{Result: saved})
	return saved, nil
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(event.DeletedEvent{Result: existing})
	return nil
}

func (s *EventService) SortBy(key string, direction ...crud.SortDirection) error {
	return s.repo.SortBy(key, direction...)
}

// MonthCell is one slot of the month grid: nil Day for leading padding.
type MonthCell struct {
	Day    *time.Time
	Events []event.Event
}

// MonthGrid renders the Monday-first month view around the given day, each
// cell carrying the events falling on it.
func (s *EventService) MonthGrid(ctx context.Context, anchor time.Time) ([]MonthCell, error) {
	all, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	days := calendar.DaysInMonth(anchor)
	cells := make([]MonthCell, 0, len(days))
	for _, day := range days {
		cell := MonthCell{Day: day}
		if day != nil {
			cell.Events = calendar.EventsOn(*day, all)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// WeekAgenda returns the seven days around the anchor with their events.
func (s *EventService) WeekAgenda(ctx context.Context, anchor time.Time) (map[string][]event.Event, error) {
	all, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	agenda := make(map[string][]event.Event, 7)
	for _, day := range calendar.WeekOf(anchor) {
		agenda[day.Format(calendar.DateLayout)] = calendar.EventsOn(day, all)
	}
	return agenda, nil
}

// DaySlots buckets a day's events into hour slots between the given hours.
func (s *EventService) DaySlots(ctx context.Context, day time.Time, startHour, endHour int) (map[string][]event.Event, error) {
	all, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	slots := make(map[string][]event.Event)
	for _, slot := range calendar.HourSlots(startHour, endHour) {
		slots[slot] = nil
	}
	for _, e := range calendar.EventsOn(day, all) {
		slot, ok := calendar.SlotFor(e.StartTime())
		if !ok {
			continue
		}
		if _, known := slots[slot]; known {
			slots[slot] = append(slots[slot], e)
		}
	}
	return slots, nil
}

// NewEventFormSession assembles the event creation form lifecycle.
func (s *EventService) NewEventFormSession(opts ...func(*crud.SubmissionConfig[event.Event])) *crud.SubmissionController[event.Event] {
	cfg := crud.SubmissionConfig[event.Event]{
		Form:      crud.NewFormModel(dtos.EventFormDefaults()),
		Validator: dtos.EventFormValidator(),
		Persist: func(ctx context.Context, d crud.Draft) (event.Event, error) {
			dto, err := dtos.EventFromDraft(d)
			if err != nil {
				return event.Event{}, err
			}
			return s.Create(ctx, dto)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return crud.NewSubmissionController(cfg)
}
