package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("Could not construct pool, skipping database tests: %s", err)
		os.Exit(m.Run())
	}
	if err := pool.Client.Ping(); err != nil {
		log.Printf("Could not connect to Docker, skipping database tests: %s", err)
		os.Exit(m.Run())
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600)
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=vaulting",
		resource.GetPort("5432/tcp"))

	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "vaulting.",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS vaulting`).Error; err != nil {
			return err
		}
		return db.AutoMigrate(
			&User{}, &Event{}, &Category{}, &Person{}, &Horse{}, &Entry{},
			&TimetablePart{}, &JudgeAssignment{}, &StartingOrderItem{},
			&ScoreSheet{}, &Score{}, &CalcTemplate{}, &ResultGroup{},
		)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	code := m.Run()
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if db == nil {
		t.Skip("no database")
	}
}

func tearDown() {
	for _, table := range []string{"scores", "score_sheets", "starting_order_items", "judge_assignments",
		"result_groups", "calc_templates", "timetable_part_categories", "timetable_parts",
		"entry_vaulters", "entries", "people", "horses", "categories", "events", "users"} {
		db.Exec("DELETE FROM vaulting." + table)
	}
}

// setUp stores one confirmed entry starting in a part judged at two tables.
func setUp(t *testing.T) (*TimetablePart, *Entry) {
	t.Helper()
	event := &Event{Name: "CVI", IsSelected: true}
	require.NoError(t, db.Create(event).Error)
	category := &Category{Name: "Senior Individual", Type: Individual, Star: 3}
	require.NoError(t, db.Create(category).Error)
	vaulter := &Person{Name: "Anna", Role: RoleVaulter}
	require.NoError(t, db.Create(vaulter).Error)
	entry := &Entry{EventId: event.Id, CategoryId: category.Id, Status: EntryStatusConfirmed, Vaulters: []*Person{vaulter}}
	require.NoError(t, db.Create(entry).Error)
	part := &TimetablePart{EventId: event.Id, Name: "Compulsory", Round: 1, Part: FirstPart, NumberOfJudges: 2, Categories: []*Category{category}}
	require.NoError(t, db.Create(part).Error)
	require.NoError(t, NewTimetablePartRepository(db).ReplaceStartingOrder(part.Id, []*StartingOrderItem{{EntryId: entry.Id, Order: 1}}))
	return part, entry
}

func TestWithinTripleSerializesCreates(t *testing.T) {
	requireDB(t)
	defer tearDown()
	part, entry := setUp(t)
	repo := NewScoreRepository(db)
	key := TripleKey{TimetablePartId: part.Id, EntryId: entry.Id, EventId: part.EventId}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.WithinTriple(context.Background(), key, func(tx ScoreTx) error {
				existing, err := tx.FindScores(key)
				if err != nil || len(existing) > 0 {
					return err
				}
				return tx.CreateScore(&Score{TimetablePartId: key.TimetablePartId, EntryId: key.EntryId, EventId: key.EventId, TotalScore: 7})
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var count int64
	require.NoError(t, db.Model(&Score{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUniqueTripleIndex(t *testing.T) {
	requireDB(t)
	defer tearDown()
	part, entry := setUp(t)
	score := &Score{TimetablePartId: part.Id, EntryId: entry.Id, EventId: part.EventId, ScoreSheets: ScoreSheetRefs{}}
	require.NoError(t, db.Omit("Entry").Create(score).Error)
	duplicate := &Score{TimetablePartId: part.Id, EntryId: entry.Id, EventId: part.EventId, ScoreSheets: ScoreSheetRefs{}}
	assert.Error(t, db.Omit("Entry").Create(duplicate).Error)
}

func TestScoreSheetRoundTrip(t *testing.T) {
	requireDB(t)
	defer tearDown()
	part, entry := setUp(t)
	repo := NewScoreSheetRepository(db)
	sheet := &ScoreSheet{
		EventId: part.EventId, TimetablePartId: part.Id, EntryId: entry.Id, Table: "A",
		InputDatas: InputDatas{{Id: "vaulton", Value: "7,5"}}, TotalScoreFE: 7.5, TotalScoreBE: 7.5,
	}
	_, err := repo.CreateScoreSheet(context.Background(), sheet)
	require.NoError(t, err)

	found, err := repo.GetScoreSheetForJudge(context.Background(), sheet.Key(), "A")
	require.NoError(t, err)
	assert.Equal(t, InputDatas{{Id: "vaulton", Value: "7,5"}}, found.InputDatas)

	_, err = repo.CreateScoreSheet(context.Background(), &ScoreSheet{
		EventId: part.EventId, TimetablePartId: part.Id, EntryId: entry.Id, Table: "A", InputDatas: InputDatas{},
	})
	assert.Error(t, err, "one sheet per table")
}

func TestMarkTableSubmittedAppendsOnce(t *testing.T) {
	requireDB(t)
	defer tearDown()
	part, entry := setUp(t)
	repo := NewTimetablePartRepository(db)
	require.NoError(t, repo.MarkTableSubmitted(context.Background(), part.Id, entry.Id, "A"))
	require.NoError(t, repo.MarkTableSubmitted(context.Background(), part.Id, entry.Id, "A"))
	require.NoError(t, repo.MarkTableSubmitted(context.Background(), part.Id, entry.Id, "B"))

	stored, err := repo.GetTimetablePartById(context.Background(), part.Id, "StartingOrder")
	require.NoError(t, err)
	require.Len(t, stored.StartingOrder, 1)
	assert.Equal(t, pq.StringArray{"A", "B"}, stored.StartingOrder[0].SubmittedTables)

	// reordering keeps what was submitted
	require.NoError(t, repo.ReplaceStartingOrder(part.Id, []*StartingOrderItem{{EntryId: entry.Id, Order: 3}}))
	stored, err = repo.GetTimetablePartById(context.Background(), part.Id, "StartingOrder")
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"A", "B"}, stored.StartingOrder[0].SubmittedTables)
}

func TestSelectingAnEventDeselectsTheOthers(t *testing.T) {
	requireDB(t)
	defer tearDown()
	repo := NewEventRepository(db)
	first, err := repo.Save(&Event{Name: "first", IsSelected: true})
	require.NoError(t, err)
	_, err = repo.Save(&Event{Name: "second", IsSelected: true})
	require.NoError(t, err)

	selected, err := repo.GetSelectedEvent()
	require.NoError(t, err)
	assert.Equal(t, "second", selected.Name)
	reloaded, err := repo.GetEventById(first.Id)
	require.NoError(t, err)
	assert.False(t, reloaded.IsSelected)
}

func TestConfirmedEntriesAndScoresForPart(t *testing.T) {
	requireDB(t)
	defer tearDown()
	part, entry := setUp(t)
	withdrawn := &Entry{EventId: entry.EventId, CategoryId: entry.CategoryId, Status: EntryStatusWithdrawn}
	require.NoError(t, db.Create(withdrawn).Error)

	entries, err := NewEntryRepository(db).GetConfirmedEntries(context.Background(), entry.EventId, entry.CategoryId)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Anna", entries[0].DisplayName())

	require.NoError(t, db.Omit("Entry").Create(&Score{TimetablePartId: part.Id, EntryId: entry.Id, EventId: part.EventId, ScoreSheets: ScoreSheetRefs{}, TotalScore: 6.5}).Error)
	scores, err := NewScoreRepository(db).GetScoresForPart(context.Background(), part.Id, part.EventId, []int{entry.Id, withdrawn.Id})
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 6.5, scores[0].TotalScore)
	assert.Equal(t, "Anna", scores[0].Entry.DisplayName())
}
