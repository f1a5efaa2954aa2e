package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexmarten/strive/internal/domain"
)

const dateLayout = "2006-01-02"

// goalRecord is the stored JSON shape of a goal. Deadlines are persisted
// as calendar dates, snapshot timestamps as RFC3339.
type goalRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Target      float64  `json:"target"`
	Current     float64  `json:"current"`
	Deadline    string   `json:"deadline"`
	Progress    float64  `json:"progress"`
	Category    string   `json:"category"`
	Notes       string   `json:"notes"`
	Comments    []string `json:"comments"`
}

type snapshotRecord struct {
	Date     string  `json:"date"`
	Progress float64 `json:"progress"`
}

// BlobCollectionRepo implements CollectionRepo by serializing the whole
// collection as one JSON blob per well-known key.
type BlobCollectionRepo struct {
	blobs BlobRepo
}

// NewBlobCollectionRepo creates a new BlobCollectionRepo.
func NewBlobCollectionRepo(blobs BlobRepo) *BlobCollectionRepo {
	return &BlobCollectionRepo{blobs: blobs}
}

func (r *BlobCollectionRepo) LoadGoals(ctx context.Context) ([]domain.Goal, error) {
	raw, err := r.blobs.Get(ctx, KeyGoals)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var records []goalRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decoding goal collection: %w", err)
	}

	goals := make([]domain.Goal, 0, len(records))
	for _, rec := range records {
		g, err := recordToGoal(rec)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func (r *BlobCollectionRepo) SaveGoals(ctx context.Context, goals []domain.Goal) error {
	records := make([]goalRecord, 0, len(goals))
	for _, g := range goals {
		records = append(records, goalToRecord(g))
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding goal collection: %w", err)
	}
	return r.blobs.Set(ctx, KeyGoals, string(raw))
}

func (r *BlobCollectionRepo) LoadHistory(ctx context.Context) (map[string][]domain.ProgressSnapshot, error) {
	raw, err := r.blobs.Get(ctx, KeyHistory)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return map[string][]domain.ProgressSnapshot{}, nil
		}
		return nil, err
	}

	var records map[string][]snapshotRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decoding progress history: %w", err)
	}

	history := make(map[string][]domain.ProgressSnapshot, len(records))
	for id, series := range records {
		snaps := make([]domain.ProgressSnapshot, 0, len(series))
		for _, s := range series {
			at, err := time.Parse(time.RFC3339, s.Date)
			if err != nil {
				return nil, fmt.Errorf("decoding snapshot timestamp %q: %w", s.Date, err)
			}
			snaps = append(snaps, domain.ProgressSnapshot{At: at, Progress: s.Progress})
		}
		history[id] = snaps
	}
	return history, nil
}

func (r *BlobCollectionRepo) SaveHistory(ctx context.Context, history map[string][]domain.ProgressSnapshot) error {
	records := make(map[string][]snapshotRecord, len(history))
	for id, series := range history {
		snaps := make([]snapshotRecord, 0, len(series))
		for _, s := range series {
			snaps = append(snaps, snapshotRecord{
				Date:     s.At.UTC().Format(time.RFC3339),
				Progress: s.Progress,
			})
		}
		records[id] = snaps
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding progress history: %w", err)
	}
	return r.blobs.Set(ctx, KeyHistory, string(raw))
}

func goalToRecord(g domain.Goal) goalRecord {
	comments := g.Comments
	if comments == nil {
		comments = []string{}
	}
	return goalRecord{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Target:      g.Target,
		Current:     g.Current,
		Deadline:    g.Deadline.Format(dateLayout),
		Progress:    g.Progress,
		Category:    string(g.Category),
		Notes:       g.Notes,
		Comments:    comments,
	}
}

func recordToGoal(rec goalRecord) (domain.Goal, error) {
	deadline, err := time.Parse(dateLayout, rec.Deadline)
	if err != nil {
		return domain.Goal{}, fmt.Errorf("decoding deadline %q for goal %s: %w", rec.Deadline, rec.ID, err)
	}
	return domain.Goal{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Target:      rec.Target,
		Current:     rec.Current,
		Deadline:    deadline,
		Progress:    rec.Progress,
		Category:    domain.Category(rec.Category),
		Notes:       rec.Notes,
		Comments:    rec.Comments,
	}, nil
}
