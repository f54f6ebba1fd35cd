package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"vaulting/metrics"
	"vaulting/repository"
	"vaulting/scoring"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	Round1First  = "R1F"
	Round1Second = "R1S"
	Round2First  = "R2F"
	Round1       = "R1"
	Round2       = "R2"
)

type ResultStore interface {
	GetSelectedEvent(ctx context.Context) (*repository.Event, error)
	GetConfirmedEntries(ctx context.Context, eventId int, categoryId int) ([]*repository.Entry, error)
	GetScoresForPart(ctx context.Context, partId int, eventId int, entryIds []int) ([]*repository.Score, error)
}

type ResultList struct {
	Title              string            `json:"title"`
	Results            []*scoring.Result `json:"results"`
	SizeOfPointDetails int               `json:"sizeOfPointDetails,omitempty"`
	// entries left out because they have no result on one side of a blend
	DroppedEntryIds []int `json:"droppedEntryIds,omitempty"`
}

type ResultService struct {
	store ResultStore
}

func NewResultService(db *gorm.DB) *ResultService {
	return NewResultServiceWithStore(newResultStore(db))
}

func NewResultServiceWithStore(store ResultStore) *ResultService {
	return &ResultService{store: store}
}

// FirstLevel lists the scores of the confirmed entries of the group's
// category in one timetable part of the selected event. The list is in entry
// order; entries without a score are not listed.
func (s *ResultService) FirstLevel(ctx context.Context, group *repository.ResultGroup, part string) (*ResultList, error) {
	defer observeLevel("first", time.Now())
	partId, title, err := firstLevelPart(group, part)
	if err != nil {
		return nil, err
	}
	event, err := s.store.GetSelectedEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSelectedEvent, err)
	}
	entries, err := s.store.GetConfirmedEntries(ctx, event.Id, group.CategoryId)
	if err != nil {
		return nil, err
	}
	entryIds := make([]int, 0, len(entries))
	entriesById := make(map[int]*repository.Entry, len(entries))
	for _, entry := range entries {
		entryIds = append(entryIds, entry.Id)
		entriesById[entry.Id] = entry
	}
	scores, err := s.store.GetScoresForPart(ctx, partId, event.Id, entryIds)
	if err != nil {
		return nil, err
	}
	scoresByEntry := make(map[int]*repository.Score, len(scores))
	for _, score := range scores {
		scoresByEntry[score.EntryId] = score
	}
	results := make([]*scoring.Result, 0, len(scores))
	for _, entryId := range entryIds {
		score, ok := scoresByEntry[entryId]
		if !ok {
			continue
		}
		entry := score.Entry
		if entry == nil {
			entry = entriesById[entryId]
		}
		results = append(results, &scoring.Result{EntryId: entryId, Entry: entry, TotalScore: score.TotalScore})
	}
	return &ResultList{Title: title, Results: results}, nil
}

// SecondLevel combines the parts of a round. Round 1 blends its two parts with
// weights scaled to sum to 1, round 2 has a single part.
func (s *ResultService) SecondLevel(ctx context.Context, group *repository.ResultGroup, part string) (*ResultList, error) {
	defer observeLevel("second", time.Now())
	switch part {
	case Round1:
		template, err := calcTemplate(group)
		if err != nil {
			return nil, err
		}
		firstWeight, secondWeight := template.Round1FirstP/100, template.Round1SecondP/100
		first, second, err := s.fetchPair(ctx, firstWeight, secondWeight,
			func(ctx context.Context) (*ResultList, error) { return s.FirstLevel(ctx, group, Round1First) },
			func(ctx context.Context) (*ResultList, error) { return s.FirstLevel(ctx, group, Round1Second) },
		)
		if err != nil {
			return nil, err
		}
		combined, dropped := scoring.CombineNormalized(first, second, firstWeight, secondWeight)
		reportDropped("second", group, dropped)
		return &ResultList{Title: "Round 1", Results: scoring.Rank(combined), DroppedEntryIds: dropped}, nil
	case Round2:
		first, err := s.FirstLevel(ctx, group, Round2First)
		if err != nil {
			return nil, err
		}
		return &ResultList{
			Title:              "Round 2",
			Results:            scoring.Rank(scoring.Relabel(first.Results, scoring.FirstSide)),
			SizeOfPointDetails: 2,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q is not a round", ErrInvalidPart, part)
}

// TotalLevel combines both rounds. The weights are the template percentages
// as they are, which only adds up to a 0..10 total because templates sum to
// 100.
func (s *ResultService) TotalLevel(ctx context.Context, group *repository.ResultGroup) (*ResultList, error) {
	defer observeLevel("total", time.Now())
	template, err := calcTemplate(group)
	if err != nil {
		return nil, err
	}
	round1Weight := (template.Round1FirstP + template.Round1SecondP) / 100
	round2Weight := template.Round2FirstP / 100
	round1, round2, err := s.fetchPair(ctx, round1Weight, round2Weight,
		func(ctx context.Context) (*ResultList, error) { return s.SecondLevel(ctx, group, Round1) },
		func(ctx context.Context) (*ResultList, error) { return s.SecondLevel(ctx, group, Round2) },
	)
	if err != nil {
		return nil, err
	}
	combined, dropped := scoring.Combine(round1, round2, round1Weight, round2Weight)
	reportDropped("total", group, dropped)
	return &ResultList{Title: "Total", Results: scoring.Rank(combined), DroppedEntryIds: dropped}, nil
}

// fetchPair loads both sides of a blend concurrently. A side that a zero
// weight short-circuits away is not loaded, so it may be left undefined on
// the group.
func (s *ResultService) fetchPair(ctx context.Context, firstWeight, secondWeight float64, fetchFirst, fetchSecond func(context.Context) (*ResultList, error)) ([]*scoring.Result, []*scoring.Result, error) {
	var first, second []*scoring.Result
	g, gctx := errgroup.WithContext(ctx)
	if firstWeight != 0 {
		g.Go(func() error {
			list, err := fetchFirst(gctx)
			if err != nil {
				return err
			}
			first = list.Results
			return nil
		})
	}
	if firstWeight == 0 || secondWeight != 0 {
		g.Go(func() error {
			list, err := fetchSecond(gctx)
			if err != nil {
				return err
			}
			second = list.Results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

func firstLevelPart(group *repository.ResultGroup, part string) (int, string, error) {
	var id *int
	var timetablePart *repository.TimetablePart
	switch part {
	case Round1First:
		id, timetablePart = group.Round1FirstId, group.Round1First
	case Round1Second:
		id, timetablePart = group.Round1SecondId, group.Round1Second
	case Round2First:
		id, timetablePart = group.Round2FirstId, group.Round2First
	default:
		return 0, "", fmt.Errorf("%w: %q is not a round part", ErrInvalidPart, part)
	}
	if id == nil {
		return 0, "", fmt.Errorf("%w: %s of result group %d", ErrPartNotDefined, part, group.Id)
	}
	title := part
	if timetablePart != nil && timetablePart.Name != "" {
		title = timetablePart.Name
	}
	return *id, title, nil
}

func calcTemplate(group *repository.ResultGroup) (*repository.CalcTemplate, error) {
	if group.CalcTemplate == nil {
		return nil, fmt.Errorf("%w: result group %d has no calc template", ErrValidation, group.Id)
	}
	return group.CalcTemplate, nil
}

func reportDropped(level string, group *repository.ResultGroup, dropped []int) {
	if len(dropped) == 0 {
		return
	}
	metrics.DroppedResults.WithLabelValues(level).Add(float64(len(dropped)))
	log.Printf("result group %d: entries %v have no result on both sides at the %s level", group.Id, dropped, level)
}

func observeLevel(level string, start time.Time) {
	metrics.AggregationDuration.WithLabelValues(level).Observe(time.Since(start).Seconds())
}

type resultStore struct {
	events  *repository.EventRepository
	entries *repository.EntryRepository
	scores  *repository.ScoreRepository
}

func newResultStore(db *gorm.DB) *resultStore {
	return &resultStore{
		events:  repository.NewEventRepository(db),
		entries: repository.NewEntryRepository(db),
		scores:  repository.NewScoreRepository(db),
	}
}

func (s *resultStore) GetSelectedEvent(ctx context.Context) (*repository.Event, error) {
	return s.events.GetSelectedEvent()
}

func (s *resultStore) GetConfirmedEntries(ctx context.Context, eventId int, categoryId int) ([]*repository.Entry, error) {
	return s.entries.GetConfirmedEntries(ctx, eventId, categoryId)
}

func (s *resultStore) GetScoresForPart(ctx context.Context, partId int, eventId int, entryIds []int) ([]*repository.Score, error) {
	return s.scores.GetScoresForPart(ctx, partId, eventId, entryIds)
}
