package scoring

import (
	"sort"

	"vaulting/repository"
)

// Result is one entry's line in a result list. FirstTotalScore and
// SecondTotalScore hold the two components a blended total was built from.
type Result struct {
	EntryId          int               `json:"entryId"`
	Entry            *repository.Entry `json:"entry,omitempty"`
	Rank             int               `json:"rank,omitempty"`
	FirstTotalScore  *float64          `json:"firstTotalScore,omitempty"`
	SecondTotalScore *float64          `json:"secondTotalScore,omitempty"`
	TotalScore       float64           `json:"totalScore"`
}

type Side int

const (
	FirstSide Side = iota
	SecondSide
)

// Relabel copies the results and stores each total as the component of the
// given side. The totals themselves are left as they are.
func Relabel(results []*Result, side Side) []*Result {
	out := make([]*Result, 0, len(results))
	for _, result := range results {
		total := result.TotalScore
		relabeled := &Result{EntryId: result.EntryId, Entry: result.Entry, TotalScore: total}
		if side == FirstSide {
			relabeled.FirstTotalScore = &total
		} else {
			relabeled.SecondTotalScore = &total
		}
		out = append(out, relabeled)
	}
	return out
}

// Blend combines two result lists entry by entry. Only entries with a result
// on both sides are blended; the ids of the others are returned as dropped.
func Blend(first, second []*Result, firstWeight, secondWeight float64) (blended []*Result, dropped []int) {
	secondByEntry := make(map[int]*Result, len(second))
	for _, result := range second {
		secondByEntry[result.EntryId] = result
	}
	matched := make(map[int]bool, len(first))
	blended = make([]*Result, 0, len(first))
	for _, f := range first {
		s, ok := secondByEntry[f.EntryId]
		if !ok {
			dropped = append(dropped, f.EntryId)
			continue
		}
		matched[f.EntryId] = true
		firstTotal, secondTotal := f.TotalScore, s.TotalScore
		entry := f.Entry
		if entry == nil {
			entry = s.Entry
		}
		blended = append(blended, &Result{
			EntryId:          f.EntryId,
			Entry:            entry,
			FirstTotalScore:  &firstTotal,
			SecondTotalScore: &secondTotal,
			TotalScore:       firstTotal*firstWeight + secondTotal*secondWeight,
		})
	}
	for _, s := range second {
		if !matched[s.EntryId] {
			dropped = append(dropped, s.EntryId)
		}
	}
	return blended, dropped
}

// Combine blends two lists with the weights as given. A zero weight on one
// side returns the other side relabeled without any weighting.
func Combine(first, second []*Result, firstWeight, secondWeight float64) (combined []*Result, dropped []int) {
	if firstWeight == 0 {
		return Relabel(second, SecondSide), nil
	}
	if secondWeight == 0 {
		return Relabel(first, FirstSide), nil
	}
	return Blend(first, second, firstWeight, secondWeight)
}

// CombineNormalized is Combine with the weights scaled to sum to 1.
func CombineNormalized(first, second []*Result, firstWeight, secondWeight float64) ([]*Result, []int) {
	if firstWeight == 0 || secondWeight == 0 {
		return Combine(first, second, firstWeight, secondWeight)
	}
	sum := firstWeight + secondWeight
	return Blend(first, second, firstWeight/sum, secondWeight/sum)
}

// Rank sorts the results by total, best first, and gives equal totals (at
// three decimals) the same rank. Equal totals keep their order.
func Rank(results []*Result) []*Result {
	sort.SliceStable(results, func(i, j int) bool {
		return ExcelRound(results[i].TotalScore) > ExcelRound(results[j].TotalScore)
	})
	for i, result := range results {
		if i > 0 && ExcelRound(result.TotalScore) == ExcelRound(results[i-1].TotalScore) {
			result.Rank = results[i-1].Rank
			continue
		}
		result.Rank = i + 1
	}
	return results
}
