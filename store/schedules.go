// Package store holds the pickup-schedule and issue lifecycles. Both stores
// persist their whole collection as one JSON array per key on every mutation;
// the injected storage.Backend is the only durable owner of the data.
package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ecotrack-be/models"
	"ecotrack-be/storage"

	"github.com/google/uuid"
)

const schedulesKey = "schedules"

//go:embed seed_schedules.json
var seedSchedules []byte

// ScheduleStore owns the collection-pickup lifecycle.
type ScheduleStore struct {
	backend storage.Backend
}

func NewScheduleStore(backend storage.Backend) *ScheduleStore {
	return &ScheduleStore{backend: backend}
}

// List returns all schedules in insertion order. The first call against an
// empty backend seeds the static fixture and persists it, so later calls see
// the same collection. Read failures degrade to an empty collection rather
// than surfacing an error; only writes propagate failures.
func (s *ScheduleStore) List(ctx context.Context) []models.PickupSchedule {
	blob, err := s.backend.Load(ctx, schedulesKey)
	if err != nil {
		log.Println("Failed to load schedules:", err)
		return []models.PickupSchedule{}
	}
	if blob == nil {
		return s.seed(ctx)
	}

	var schedules []models.PickupSchedule
	if err := json.Unmarshal(blob, &schedules); err != nil {
		log.Println("Failed to decode schedules:", err)
		return []models.PickupSchedule{}
	}
	return schedules
}

func (s *ScheduleStore) seed(ctx context.Context) []models.PickupSchedule {
	var schedules []models.PickupSchedule
	if err := json.Unmarshal(seedSchedules, &schedules); err != nil {
		log.Println("Failed to decode seed schedules:", err)
		return []models.PickupSchedule{}
	}
	if err := s.backend.Save(ctx, schedulesKey, seedSchedules); err != nil {
		// Seeding is a read-path convenience; serve the fixture anyway.
		log.Println("Failed to persist seed schedules:", err)
	}
	return schedules
}

func (s *ScheduleStore) save(ctx context.Context, schedules []models.PickupSchedule) error {
	blob, err := json.Marshal(schedules)
	if err != nil {
		return fmt.Errorf("encode schedules: %w", err)
	}
	if err := s.backend.Save(ctx, schedulesKey, blob); err != nil {
		return fmt.Errorf("save schedules: %w", err)
	}
	return nil
}

// Add appends a new schedule with a fresh id and status scheduled. Field
// contents are taken as given; presence and format checks belong to the
// transport layer.
func (s *ScheduleStore) Add(ctx context.Context, area, address, date, timeOfDay string, wasteType models.WasteType) (models.PickupSchedule, error) {
	schedules := s.List(ctx)

	schedule := models.PickupSchedule{
		ID:        uuid.NewString(),
		Area:      area,
		Address:   address,
		Date:      date,
		Time:      timeOfDay,
		WasteType: wasteType,
		Status:    models.Scheduled,
	}

	if err := s.save(ctx, append(schedules, schedule)); err != nil {
		return models.PickupSchedule{}, err
	}
	return schedule, nil
}

// SetStatus transitions the schedule with the given id and records who acted
// and when. Re-invoking on an already-terminal record overwrites the previous
// transition; that is how collectors correct a wrong marking. Returns
// ErrNotFound, with the collection unchanged, when the id does not exist.
func (s *ScheduleStore) SetStatus(ctx context.Context, id string, status models.PickupStatus, actorID string) (models.PickupSchedule, error) {
	schedules := s.List(ctx)

	for i := range schedules {
		if schedules[i].ID != id {
			continue
		}
		now := time.Now().UTC()
		schedules[i].Status = status
		schedules[i].CollectedBy = actorID
		schedules[i].CollectedAt = &now

		if err := s.save(ctx, schedules); err != nil {
			return models.PickupSchedule{}, err
		}
		return schedules[i], nil
	}
	return models.PickupSchedule{}, ErrNotFound
}

// Stats scans the current collection and aggregates counts by status, waste
// type and area. Pure function of the stored state; O(n) per call.
func (s *ScheduleStore) Stats(ctx context.Context) models.CollectionStats {
	schedules := s.List(ctx)

	totals := models.StatusTotals{Total: len(schedules)}
	wasteCounts := map[models.WasteType]int{}
	areaOrder := []string{}
	areaStats := map[string]*models.AreaStats{}

	for _, schedule := range schedules {
		switch schedule.Status {
		case models.Collected:
			totals.Collected++
		case models.Missed:
			totals.Missed++
		case models.Scheduled:
			totals.Scheduled++
		}

		wasteCounts[schedule.WasteType]++

		area, ok := areaStats[schedule.Area]
		if !ok {
			area = &models.AreaStats{Name: schedule.Area}
			areaStats[schedule.Area] = area
			areaOrder = append(areaOrder, schedule.Area)
		}
		area.Total++
		switch schedule.Status {
		case models.Collected:
			area.Collected++
		case models.Missed:
			area.Missed++
		case models.Scheduled:
			area.Scheduled++
		}
	}

	stats := models.CollectionStats{
		Collections: totals,
		WasteTypeData: []models.WasteTypeCount{
			{Name: "General", Value: wasteCounts[models.General]},
			{Name: "Recycling", Value: wasteCounts[models.Recycling]},
			{Name: "Compost", Value: wasteCounts[models.Compost]},
			{Name: "Hazardous", Value: wasteCounts[models.Hazardous]},
		},
		AreaData: make([]models.AreaStats, 0, len(areaOrder)),
	}
	for _, name := range areaOrder {
		stats.AreaData = append(stats.AreaData, *areaStats[name])
	}
	return stats
}
