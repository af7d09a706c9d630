package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/exceltools/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "exceltools.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestLoadMissingSections(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, ok, err := st.LoadKeyWord(ctx); err != nil || ok {
		t.Fatalf("expected no keyword section, ok=%v err=%v", ok, err)
	}
	if _, ok, err := st.LoadWordFreq(ctx); err != nil || ok {
		t.Fatalf("expected no word-frequency section, ok=%v err=%v", ok, err)
	}
}

func TestSaveAndLoadSections(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	kw := model.KeyWordStatConfig{
		KwInputDir:    "/in",
		KwOutputDir:   "/out",
		StatMode:      model.ColumnMode,
		TargetNumber:  10,
		ForwardNumber: 2,
		SelectedColor: model.ColorBlue,
	}
	if err := st.SaveKeyWord(ctx, kw); err != nil {
		t.Fatalf("save keyword: %v", err)
	}
	kw.TargetNumber = 11
	if err := st.SaveKeyWord(ctx, kw); err != nil {
		t.Fatalf("overwrite keyword: %v", err)
	}
	wf := model.WordFreqStatConfig{WfInputDir: "/wf", SplitChar: ";"}
	if err := st.SaveWordFreq(ctx, wf); err != nil {
		t.Fatalf("save word-frequency: %v", err)
	}

	gotKw, ok, err := st.LoadKeyWord(ctx)
	if err != nil || !ok {
		t.Fatalf("load keyword: ok=%v err=%v", ok, err)
	}
	if gotKw != kw {
		t.Fatalf("expected %+v, got %+v", kw, gotKw)
	}
	gotWf, ok, err := st.LoadWordFreq(ctx)
	if err != nil || !ok {
		t.Fatalf("load word-frequency: ok=%v err=%v", ok, err)
	}
	if gotWf != wf {
		t.Fatalf("expected %+v, got %+v", wf, gotWf)
	}
}

func TestCorruptPayloadReturnsParseError(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, err := st.db.ExecContext(ctx,
		`INSERT INTO settings (section, payload, updated_at) VALUES (?, ?, ?)`,
		SectionKeyWord, "{broken", "2024-01-01T00:00:00Z"); err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}
	_, _, err := st.LoadKeyWord(ctx)
	var perr *model.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestDeleteAll(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.SaveWordFreq(ctx, model.WordFreqStatConfig{IntervalNumber: 4}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.DeleteAll(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, err := st.LoadWordFreq(ctx); err != nil || ok {
		t.Fatalf("expected section to be gone, ok=%v err=%v", ok, err)
	}
}
