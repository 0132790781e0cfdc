package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shubh-37/calmmind/internal/models"
)

func newTestRepo(t *testing.T) (*InteractionRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "stress_logs.csv")
	return NewInteractionRepository(NewDB(path)), path
}

func TestGetAll_NoData(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo(t)
	records, err := repo.GetAll(context.Background())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if records != nil {
		t.Fatalf("records=%v", records)
	}

	n, err := repo.Count(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("Count=%d err=%v", n, err)
	}
}

func TestGetAll_HeaderOnlyIsEmptyNotMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stress_logs.csv")
	if err := os.WriteFile(path, []byte("date,mood,stress_level,text,journal\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	repo := NewInteractionRepository(NewDB(path))

	records, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("records=%v", records)
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, path := newTestRepo(t)

	first := &models.InteractionRecord{Date: "2024-05-01", Mood: models.MoodCalm, StressLevel: models.StressLow, Text: "fine"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	last := &models.InteractionRecord{
		Date:        "2024-05-02",
		Mood:        models.MoodOverwhelmed,
		StressLevel: models.StressHigh,
		Text:        "I feel lost, alone and \"mentally\" drained,\nreally",
		Journal:     "long day, again",
	}
	if err := repo.Create(ctx, last); err != nil {
		t.Fatalf("Create last: %v", err)
	}

	records, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len=%d", len(records))
	}
	if *records[1] != *last {
		t.Fatalf("last=%+v want %+v", *records[1], *last)
	}
	if *records[0] != *first {
		t.Fatalf("first=%+v want %+v", *records[0], *first)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if c := strings.Count(string(b), "date,mood,stress_level,text,journal"); c != 1 {
		t.Fatalf("header count=%d", c)
	}
	if !strings.HasPrefix(string(b), "date,mood,stress_level,text,journal\n") {
		t.Fatalf("file does not start with header: %q", string(b))
	}
}

func TestCreate_AssignsDateAndRejectsInvalidLevel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestRepo(t)

	rec := models.NewInteractionRecord(time.Now(), models.MoodMeh, models.StressMedium, "meh", "")
	rec.Date = ""
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Date == "" {
		t.Fatalf("expected date to be assigned")
	}

	bad := &models.InteractionRecord{Mood: models.MoodMeh, StressLevel: "extreme", Text: "x"}
	if err := repo.Create(ctx, bad); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestGetRecent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestRepo(t)
	for _, text := range []string{"a", "b", "c"} {
		rec := &models.InteractionRecord{Date: "2024-05-01", Mood: models.MoodMeh, StressLevel: models.StressLow, Text: text}
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	recent, err := repo.GetRecent(ctx, 2)
	if err != nil {
		t.Fatalf("GetRecent: %v", err)
	}
	if len(recent) != 2 || recent[0].Text != "c" || recent[1].Text != "b" {
		t.Fatalf("recent=%v", recent)
	}

	all, err := repo.GetRecent(ctx, 0)
	if err != nil {
		t.Fatalf("GetRecent all: %v", err)
	}
	if len(all) != 3 || all[2].Text != "a" {
		t.Fatalf("all=%v", all)
	}
}

func TestGetAll_SkipsMalformedRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stress_logs.csv")
	data := "date,mood,stress_level,text,journal\n2024-05-01,😐 Meh,low\n2024-05-01,😐 Meh,high,ok,\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	records, err := NewInteractionRepository(NewDB(path)).GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 1 || records[0].StressLevel != models.StressHigh {
		t.Fatalf("records=%v", records)
	}
}

func TestCreate_ConcurrentWritersSingleHeader(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, path := newTestRepo(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := &models.InteractionRecord{Date: "2024-05-01", Mood: models.MoodMeh, StressLevel: models.StressMedium, Text: "x"}
			if err := repo.Create(ctx, rec); err != nil {
				t.Errorf("Create: %v", err)
			}
		}()
	}
	wg.Wait()

	b, _ := os.ReadFile(path)
	if c := strings.Count(string(b), "stress_level"); c != 1 {
		t.Fatalf("header count=%d", c)
	}
	n, err := repo.Count(ctx)
	if err != nil || n != 20 {
		t.Fatalf("Count=%d err=%v", n, err)
	}
}

func TestCreate_NormalizesCRLF(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestRepo(t)

	rec := &models.InteractionRecord{
		Date:        "2024-05-01",
		Mood:        models.MoodStressed,
		StressLevel: models.StressMedium,
		Text:        "line one\r\nline two\rline three",
		Journal:     "a\r\nb",
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Text != "line one\nline two\nline three" || rec.Journal != "a\nb" {
		t.Fatalf("stored text=%q journal=%q", rec.Text, rec.Journal)
	}

	records, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 1 || *records[0] != *rec {
		t.Fatalf("read=%+v want %+v", records, *rec)
	}
}

func TestCreate_EmptyExistingFileGetsHeader(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, path := newTestRepo(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("touch: %v", err)
	}

	rec := &models.InteractionRecord{Date: "2024-05-01", Mood: models.MoodMeh, StressLevel: models.StressHigh, Text: "x"}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "date,mood,stress_level,text,journal\n2024-05-01,😐 Meh,high,x,\n" {
		t.Fatalf("file=%q", string(b))
	}

	records, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 1 || *records[0] != *rec {
		t.Fatalf("records=%+v", records)
	}
}

func TestGetAll_HeaderlessFileKeepsFirstRow(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stress_logs.csv")
	data := "2024-05-01,😐 Meh,high,first,\n2024-05-02,😌 Calm,low,second,\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	records, err := NewInteractionRepository(NewDB(path)).GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 2 || records[0].Text != "first" || records[1].Text != "second" {
		t.Fatalf("records=%+v", records)
	}
}
