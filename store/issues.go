package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ecotrack-be/models"
	"ecotrack-be/storage"

	"github.com/google/uuid"
)

const issuesKey = "issues"

// IssueStore owns the resident-reported issue lifecycle. Unlike schedules,
// the issue collection starts empty; there is no seed fixture.
type IssueStore struct {
	backend storage.Backend
}

func NewIssueStore(backend storage.Backend) *IssueStore {
	return &IssueStore{backend: backend}
}

// List returns all issues in insertion order. Read failures degrade to an
// empty collection.
func (s *IssueStore) List(ctx context.Context) []models.Issue {
	blob, err := s.backend.Load(ctx, issuesKey)
	if err != nil {
		log.Println("Failed to load issues:", err)
		return []models.Issue{}
	}
	if blob == nil {
		return []models.Issue{}
	}

	var issues []models.Issue
	if err := json.Unmarshal(blob, &issues); err != nil {
		log.Println("Failed to decode issues:", err)
		return []models.Issue{}
	}
	return issues
}

// ListForReporter returns the issues reported by the given user, used to
// scope a resident's view to their own reports.
func (s *IssueStore) ListForReporter(ctx context.Context, userID string) []models.Issue {
	own := []models.Issue{}
	for _, issue := range s.List(ctx) {
		if issue.ReportedBy == userID {
			own = append(own, issue)
		}
	}
	return own
}

func (s *IssueStore) save(ctx context.Context, issues []models.Issue) error {
	blob, err := json.Marshal(issues)
	if err != nil {
		return fmt.Errorf("encode issues: %w", err)
	}
	if err := s.backend.Save(ctx, issuesKey, blob); err != nil {
		return fmt.Errorf("save issues: %w", err)
	}
	return nil
}

// Add appends a new issue with a fresh id, status reported and the report
// timestamp.
func (s *IssueStore) Add(ctx context.Context, title, description, area, address, reportedBy string) (models.Issue, error) {
	issues := s.List(ctx)

	issue := models.Issue{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Area:        area,
		Address:     address,
		ReportedBy:  reportedBy,
		ReportedAt:  time.Now().UTC(),
		Status:      models.Reported,
	}

	if err := s.save(ctx, append(issues, issue)); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// SetStatus updates the issue's status. Moving to resolved records the
// resolver and timestamp; any other target status leaves previously set
// resolver fields in place (resolution history is not cleared on regression).
// Returns ErrNotFound, with the collection unchanged, when the id is unknown.
func (s *IssueStore) SetStatus(ctx context.Context, id string, status models.IssueStatus, actorID string) (models.Issue, error) {
	issues := s.List(ctx)

	for i := range issues {
		if issues[i].ID != id {
			continue
		}
		issues[i].Status = status
		if status == models.Resolved {
			now := time.Now().UTC()
			issues[i].ResolvedBy = actorID
			issues[i].ResolvedAt = &now
		}

		if err := s.save(ctx, issues); err != nil {
			return models.Issue{}, err
		}
		return issues[i], nil
	}
	return models.Issue{}, ErrNotFound
}

// Totals is the resolved/pending split over all issues.
func (s *IssueStore) Totals(ctx context.Context) models.IssueTotals {
	totals := models.IssueTotals{}
	for _, issue := range s.List(ctx) {
		totals.Total++
		if issue.Status == models.Resolved {
			totals.Resolved++
		} else {
			totals.Pending++
		}
	}
	return totals
}
