package scoring

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"vaulting/repository"
)

var ErrDataInconsistency = errors.New("data inconsistency")

type SyncAction string

const (
	SyncPending   SyncAction = "pending"
	SyncCreate    SyncAction = "create"
	SyncUpdate    SyncAction = "update"
	SyncUnchanged SyncAction = "unchanged"
)

type SyncPlan struct {
	Action SyncAction
	// Score is the document to write, nil while judges are still missing.
	Score *repository.Score
}

// PlanSync decides what happens to the score of one triple given the scores
// and score sheets stored for it. A score is only created once every judge
// table has submitted; an existing score always follows its sheets.
func PlanSync(key repository.TripleKey, existing []*repository.Score, sheets []*repository.ScoreSheet, numberOfJudges int) (*SyncPlan, error) {
	if len(existing) > 1 {
		return nil, fmt.Errorf("%w: %d scores for %s", ErrDataInconsistency, len(existing), key)
	}
	refs, total := aggregateSheets(sheets)

	if len(existing) == 0 {
		if distinctTables(sheets) < numberOfJudges {
			return &SyncPlan{Action: SyncPending}, nil
		}
		return &SyncPlan{Action: SyncCreate, Score: &repository.Score{
			TimetablePartId: key.TimetablePartId,
			EntryId:         key.EntryId,
			EventId:         key.EventId,
			ScoreSheets:     refs,
			TotalScore:      total,
		}}, nil
	}

	current := existing[0]
	score := *current
	score.ScoreSheets = refs
	score.TotalScore = total
	if score.TotalScore == current.TotalScore && slices.Equal(score.ScoreSheets, current.ScoreSheets) {
		return &SyncPlan{Action: SyncUnchanged, Score: &score}, nil
	}
	return &SyncPlan{Action: SyncUpdate, Score: &score}, nil
}

// aggregateSheets returns the references of the sheets ordered by table then
// id and the mean of their back end totals.
func aggregateSheets(sheets []*repository.ScoreSheet) (repository.ScoreSheetRefs, float64) {
	ordered := slices.Clone(sheets)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Table != ordered[j].Table {
			return ordered[i].Table < ordered[j].Table
		}
		return ordered[i].Id < ordered[j].Id
	})
	refs := make(repository.ScoreSheetRefs, 0, len(ordered))
	totals := make([]float64, 0, len(ordered))
	for _, sheet := range ordered {
		refs = append(refs, repository.ScoreSheetRef{ScoreSheetId: sheet.Id, Table: sheet.Table})
		totals = append(totals, sheet.TotalScoreBE)
	}
	return refs, mean(totals)
}

func distinctTables(sheets []*repository.ScoreSheet) int {
	tables := make(map[string]bool)
	for _, sheet := range sheets {
		tables[sheet.Table] = true
	}
	return len(tables)
}
