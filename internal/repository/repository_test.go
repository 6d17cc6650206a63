package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tasklist/internal/backend/kv"
	"tasklist/internal/store"
	"tasklist/internal/task"
)

// failingStorage returns err from every call.
type failingStorage struct{ err error }

func (f failingStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	return "", false, f.err
}
func (f failingStorage) SetItem(ctx context.Context, key, value string) error { return f.err }
func (f failingStorage) RemoveItem(ctx context.Context, key string) error     { return f.err }
func (f failingStorage) Close() error                                         { return nil }

func TestEncode_ExactFormat(t *testing.T) {
	tasks := []task.Task{
		{ID: "ignored", Title: "Write report", Summary: "Q3 <summary> & notes", State: task.NotDone, Deadline: "2024-01-15"},
		{Title: "Review PR", State: task.Done},
	}

	got, err := Encode(tasks)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `[{"title":"Write report","summary":"Q3 <summary> & notes","state":"Not done","deadline":"2024-01-15"},` +
		`{"title":"Review PR","summary":"","state":"Done","deadline":""}]`
	if string(got) != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestEncode_Empty(t *testing.T) {
	for _, in := range [][]task.Task{nil, {}} {
		got, err := Encode(in)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if string(got) != "[]" {
			t.Errorf("expected [], got %s", got)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      []task.Task
		malformed bool
	}{
		{
			name: "array",
			in:   `[{"title":"a","summary":"s","state":"Done","deadline":"2024-02-01"}]`,
			want: []task.Task{{Title: "a", Summary: "s", State: task.Done, Deadline: "2024-02-01"}},
		},
		{
			name: "missing fields",
			in:   `[{"title":"a"}]`,
			want: []task.Task{{Title: "a"}},
		},
		{name: "empty array", in: `[]`, want: []task.Task{}},
		{name: "null", in: `null`, want: nil},
		{name: "empty string", in: ``, malformed: true},
		{name: "object", in: `{"title":"a"}`, malformed: true},
		{name: "numbers", in: `[1,2]`, malformed: true},
		{name: "truncated", in: `[{"title":"a"`, malformed: true},
		{name: "null element", in: `[null]`, malformed: true},
		{name: "null among tasks", in: `[null,{"title":"a"}]`, malformed: true},
		{name: "unknown state", in: `[{"title":"x","state":"Blocked"}]`, malformed: true},
		{name: "lowercase state", in: `[{"title":"x","state":"done"}]`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in))
			if tt.malformed {
				if !errors.Is(err, store.ErrMalformedData) {
					t.Fatalf("expected ErrMalformedData, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestTasks_LoadSaveRoundTrip(t *testing.T) {
	storage := kv.NewMemory()
	repo := NewTasks(storage, "")
	ctx := context.Background()

	if repo.Key() != DefaultTasksKey {
		t.Errorf("expected default key, got %q", repo.Key())
	}

	_, found, err := repo.Load(ctx)
	if err != nil || found {
		t.Fatalf("expected nothing saved, got found=%v err=%v", found, err)
	}

	in := []task.Task{{Title: "a", State: task.DoingRightNow}, {Title: "b", State: task.NotDone}}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, _, _ := storage.GetItem(ctx, "tasks")
	if raw != `[{"title":"a","summary":"","state":"Doing right now","deadline":""},{"title":"b","summary":"","state":"Not done","deadline":""}]` {
		t.Errorf("unexpected stored value %s", raw)
	}

	out, found, err := repo.Load(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("expected %v, got %v", in, out)
	}
}

func TestTasks_LoadNullIsNothingSaved(t *testing.T) {
	storage := kv.NewMemory()
	_ = storage.SetItem(context.Background(), "tasks", "null")

	_, found, err := NewTasks(storage, "tasks").Load(context.Background())
	if err != nil || found {
		t.Errorf("expected nothing saved, got found=%v err=%v", found, err)
	}
}

func TestTasks_CustomKey(t *testing.T) {
	storage := kv.NewMemory()
	repo := NewTasks(storage, "work-tasks")
	if err := repo.Save(context.Background(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok, _ := storage.GetItem(context.Background(), "work-tasks"); !ok {
		t.Error("expected value under custom key")
	}
}

func TestTasks_StorageErrors(t *testing.T) {
	repo := NewTasks(failingStorage{err: errors.New("quota exceeded")}, "")
	ctx := context.Background()

	if _, _, err := repo.Load(ctx); !errors.Is(err, store.ErrStorageUnavailable) {
		t.Errorf("load: expected ErrStorageUnavailable, got %v", err)
	}
	if err := repo.Save(ctx, nil); !errors.Is(err, store.ErrStorageUnavailable) {
		t.Errorf("save: expected ErrStorageUnavailable, got %v", err)
	}
}

func TestPreferences_ColorScheme(t *testing.T) {
	storage := kv.NewMemory()
	prefs := NewPreferences(storage)
	ctx := context.Background()

	scheme, err := prefs.ColorScheme(ctx)
	if err != nil || scheme != Light {
		t.Fatalf("expected default light, got %q (%v)", scheme, err)
	}

	next, err := prefs.ToggleColorScheme(ctx)
	if err != nil || next != Dark {
		t.Fatalf("expected dark after toggle, got %q (%v)", next, err)
	}
	raw, _, _ := storage.GetItem(ctx, ColorSchemeKey)
	if raw != `"dark"` {
		t.Errorf("expected JSON string, got %s", raw)
	}

	if err := prefs.ResetColorScheme(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if scheme, _ := prefs.ColorScheme(ctx); scheme != Light {
		t.Errorf("expected light after reset, got %q", scheme)
	}
}

func TestPreferences_TolerantRead(t *testing.T) {
	storage := kv.NewMemory()
	prefs := NewPreferences(storage)
	ctx := context.Background()

	_ = storage.SetItem(ctx, ColorSchemeKey, "dark")
	if scheme, _ := prefs.ColorScheme(ctx); scheme != Dark {
		t.Errorf("expected bare word accepted, got %q", scheme)
	}

	_ = storage.SetItem(ctx, ColorSchemeKey, `"purple"`)
	if scheme, _ := prefs.ColorScheme(ctx); scheme != Light {
		t.Errorf("expected unknown value to fall back to light, got %q", scheme)
	}
}

func TestTasks_LoadRejectsInvalidRecords(t *testing.T) {
	storage := kv.NewMemory()
	ctx := context.Background()
	_ = storage.SetItem(ctx, "tasks", `[null,{"title":"a"}]`)

	s := store.New(NewTasks(storage, "tasks"))
	if _, err := s.Load(ctx); !errors.Is(err, store.ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected nothing loaded, got %d tasks", s.Len())
	}
}
