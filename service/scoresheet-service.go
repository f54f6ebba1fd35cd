package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"vaulting/metrics"
	"vaulting/repository"
	"vaulting/scoring"

	"gorm.io/gorm"
)

type ScoreSheetStore interface {
	GetTimetablePart(ctx context.Context, partId int) (*repository.TimetablePart, error)
	GetEntry(ctx context.Context, entryId int) (*repository.Entry, error)
	GetScoreSheet(ctx context.Context, id int) (*repository.ScoreSheet, error)
	FindScoreSheetForTable(ctx context.Context, key repository.TripleKey, table string) (*repository.ScoreSheet, error)
	GetScoreSheetsForPart(ctx context.Context, partId int) ([]*repository.ScoreSheet, error)
	CreateScoreSheet(ctx context.Context, sheet *repository.ScoreSheet) error
	SaveScoreSheet(ctx context.Context, sheet *repository.ScoreSheet) error
	MarkTableSubmitted(ctx context.Context, partId int, entryId int, table string) error
}

type ScoreSyncer interface {
	SyncScoreTable(ctx context.Context, timetablePartId int, entryId int, eventId int) (*repository.Score, error)
}

type ScoreSheetService struct {
	store  ScoreSheetStore
	syncer ScoreSyncer
}

func NewScoreSheetService(db *gorm.DB) *ScoreSheetService {
	return NewScoreSheetServiceWithStore(newScoreSheetStore(db), NewScoreService(db))
}

func NewScoreSheetServiceWithStore(store ScoreSheetStore, syncer ScoreSyncer) *ScoreSheetService {
	return &ScoreSheetService{store: store, syncer: syncer}
}

type ScoreSheetSubmission struct {
	TimetablePartId int
	EntryId         int
	// Table may be left empty by judges, their assigned table is used.
	Table        string
	InputDatas   repository.InputDatas
	TotalScoreFE float64
}

// Submit stores a judge's score sheet once its back end total matches the
// total the judge saw, then synchronizes the entry's score.
func (s *ScoreSheetService) Submit(ctx context.Context, judge *repository.User, submission ScoreSheetSubmission) (*repository.ScoreSheet, *repository.Score, error) {
	part, err := s.store.GetTimetablePart(ctx, submission.TimetablePartId)
	if err != nil {
		return nil, nil, err
	}
	table, err := resolveTable(part, judge, submission.Table)
	if err != nil {
		return nil, nil, err
	}
	if part.StartingOrderFor(submission.EntryId) == nil {
		return nil, nil, fmt.Errorf("%w: entry %d is not in the starting order of %s", ErrValidation, submission.EntryId, part.Name)
	}
	entry, err := s.store.GetEntry(ctx, submission.EntryId)
	if err != nil {
		return nil, nil, err
	}
	if entry.Status != repository.EntryStatusConfirmed {
		return nil, nil, fmt.Errorf("%w: entry %d is %s", ErrValidation, entry.Id, entry.Status)
	}

	key := repository.TripleKey{TimetablePartId: part.Id, EntryId: entry.Id, EventId: part.EventId}
	_, err = s.store.FindScoreSheetForTable(ctx, key, table)
	if err == nil {
		return nil, nil, fmt.Errorf("%w: table %s of %s", ErrAlreadySubmitted, table, key)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	total, err := checkTotals(submission.InputDatas, entry.Category, submission.TotalScoreFE)
	if err != nil {
		return nil, nil, err
	}
	sheet := &repository.ScoreSheet{
		EventId:         part.EventId,
		TimetablePartId: part.Id,
		EntryId:         entry.Id,
		Table:           table,
		JudgeUserId:     judge.Id,
		InputDatas:      submission.InputDatas,
		TotalScoreFE:    submission.TotalScoreFE,
		TotalScoreBE:    total,
	}
	if err := s.store.CreateScoreSheet(ctx, sheet); err != nil {
		return nil, nil, err
	}
	metrics.ScoreSheetsSubmitted.WithLabelValues("judge").Inc()
	if err := s.store.MarkTableSubmitted(ctx, part.Id, entry.Id, table); err != nil {
		return nil, nil, err
	}
	score, err := s.syncer.SyncScoreTable(ctx, part.Id, entry.Id, part.EventId)
	if err != nil {
		return sheet, nil, err
	}
	return sheet, score, nil
}

// Correct lets the office replace the inputs of a stored sheet. The totals are
// checked like on submission and the score is synchronized again.
func (s *ScoreSheetService) Correct(ctx context.Context, office *repository.User, sheetId int, inputs repository.InputDatas, totalScoreFE float64) (*repository.ScoreSheet, *repository.Score, error) {
	if !office.HasPermission(repository.PermissionOffice, repository.PermissionAdmin) {
		return nil, nil, fmt.Errorf("%w: corrections need the office permission", ErrPermission)
	}
	sheet, err := s.store.GetScoreSheet(ctx, sheetId)
	if err != nil {
		return nil, nil, err
	}
	entry, err := s.store.GetEntry(ctx, sheet.EntryId)
	if err != nil {
		return nil, nil, err
	}
	total, err := checkTotals(inputs, entry.Category, totalScoreFE)
	if err != nil {
		return nil, nil, err
	}
	sheet.InputDatas = inputs
	sheet.TotalScoreFE = totalScoreFE
	sheet.TotalScoreBE = total
	if err := s.store.SaveScoreSheet(ctx, sheet); err != nil {
		return nil, nil, err
	}
	metrics.ScoreSheetsSubmitted.WithLabelValues("correction").Inc()
	log.Printf("user %d corrected score sheet %d of %s", office.Id, sheet.Id, sheet.Key())
	score, err := s.syncer.SyncScoreTable(ctx, sheet.TimetablePartId, sheet.EntryId, sheet.EventId)
	if err != nil {
		return sheet, nil, err
	}
	return sheet, score, nil
}

// RecalculatePart recomputes the back end total of every sheet of a part,
// for example after a category's coefficients changed, and synchronizes
// every entry that has sheets. It returns the synchronized scores.
func (s *ScoreSheetService) RecalculatePart(ctx context.Context, partId int) ([]*repository.Score, error) {
	sheets, err := s.store.GetScoreSheetsForPart(ctx, partId)
	if err != nil {
		return nil, err
	}
	categories := make(map[int]*repository.Category)
	keys := make([]repository.TripleKey, 0)
	for _, sheet := range sheets {
		category, ok := categories[sheet.EntryId]
		if !ok {
			entry, err := s.store.GetEntry(ctx, sheet.EntryId)
			if err != nil {
				return nil, err
			}
			category = entry.Category
			categories[sheet.EntryId] = category
		}
		total := scoring.Evaluate(sheet.InputDatas, category).Total
		if total != sheet.TotalScoreBE {
			sheet.TotalScoreBE = total
			if err := s.store.SaveScoreSheet(ctx, sheet); err != nil {
				return nil, err
			}
		}
		if !slices.Contains(keys, sheet.Key()) {
			keys = append(keys, sheet.Key())
		}
	}
	scores := make([]*repository.Score, 0, len(keys))
	for _, key := range keys {
		score, err := s.syncer.SyncScoreTable(ctx, key.TimetablePartId, key.EntryId, key.EventId)
		if err != nil {
			return nil, err
		}
		if score != nil {
			scores = append(scores, score)
		}
	}
	log.Printf("recalculated %d score sheets of timetable part %d", len(sheets), partId)
	return scores, nil
}

// SyncEntry synchronizes the score of one entry in a part of the part's event.
func (s *ScoreSheetService) SyncEntry(ctx context.Context, partId int, entryId int) (*repository.Score, error) {
	part, err := s.store.GetTimetablePart(ctx, partId)
	if err != nil {
		return nil, err
	}
	return s.syncer.SyncScoreTable(ctx, part.Id, entryId, part.EventId)
}

func (s *ScoreSheetService) GetScoreSheetsForPart(ctx context.Context, partId int) ([]*repository.ScoreSheet, error) {
	return s.store.GetScoreSheetsForPart(ctx, partId)
}

// resolveTable returns the table a submission is stored under. Judges may
// only submit for their own table; office and admin users may submit for
// any of the part's tables.
func resolveTable(part *repository.TimetablePart, user *repository.User, requested string) (string, error) {
	if user.HasPermission(repository.PermissionOffice, repository.PermissionAdmin) {
		if !slices.Contains(part.Tables(), requested) {
			return "", fmt.Errorf("%w: table %q is not judged in %s", ErrValidation, requested, part.Name)
		}
		return requested, nil
	}
	table, ok := part.TableOf(user.Id)
	if !ok || (requested != "" && requested != table) {
		return "", fmt.Errorf("%w: user %d does not judge table %q of %s", ErrPermission, user.Id, requested, part.Name)
	}
	return table, nil
}

func checkTotals(inputs repository.InputDatas, category *repository.Category, totalScoreFE float64) (float64, error) {
	evaluation := scoring.Evaluate(inputs, category)
	if evaluation.Formula != "" {
		metrics.FormulaUsage.WithLabelValues(evaluation.Formula).Inc()
	}
	if scoring.ExcelRound(totalScoreFE) != evaluation.Total {
		metrics.ScoreMismatches.Inc()
		return 0, fmt.Errorf("%w: front end %s, back end %s", ErrScoreMismatch,
			scoring.FormatScore(totalScoreFE), scoring.FormatScore(evaluation.Total))
	}
	return evaluation.Total, nil
}

type scoreSheetStore struct {
	parts   *repository.TimetablePartRepository
	entries *repository.EntryRepository
	sheets  *repository.ScoreSheetRepository
}

func newScoreSheetStore(db *gorm.DB) *scoreSheetStore {
	return &scoreSheetStore{
		parts:   repository.NewTimetablePartRepository(db),
		entries: repository.NewEntryRepository(db),
		sheets:  repository.NewScoreSheetRepository(db),
	}
}

func (s *scoreSheetStore) GetTimetablePart(ctx context.Context, partId int) (*repository.TimetablePart, error) {
	return s.parts.GetTimetablePartById(ctx, partId, "Judges", "StartingOrder")
}

func (s *scoreSheetStore) GetEntry(ctx context.Context, entryId int) (*repository.Entry, error) {
	return s.entries.GetEntryById(entryId, "Category")
}

func (s *scoreSheetStore) GetScoreSheet(ctx context.Context, id int) (*repository.ScoreSheet, error) {
	return s.sheets.GetScoreSheetById(ctx, id)
}

func (s *scoreSheetStore) FindScoreSheetForTable(ctx context.Context, key repository.TripleKey, table string) (*repository.ScoreSheet, error) {
	return s.sheets.GetScoreSheetForJudge(ctx, key, table)
}

func (s *scoreSheetStore) GetScoreSheetsForPart(ctx context.Context, partId int) ([]*repository.ScoreSheet, error) {
	return s.sheets.GetScoreSheetsForPart(ctx, partId)
}

func (s *scoreSheetStore) CreateScoreSheet(ctx context.Context, sheet *repository.ScoreSheet) error {
	_, err := s.sheets.CreateScoreSheet(ctx, sheet)
	return err
}

func (s *scoreSheetStore) SaveScoreSheet(ctx context.Context, sheet *repository.ScoreSheet) error {
	_, err := s.sheets.SaveScoreSheet(ctx, sheet)
	return err
}

func (s *scoreSheetStore) MarkTableSubmitted(ctx context.Context, partId int, entryId int, table string) error {
	return s.parts.MarkTableSubmitted(ctx, partId, entryId, table)
}
