package usecase_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	flowerdto "botanist/internal/modules/flower/dto"
	gardendto "botanist/internal/modules/garden/dto"
	sessionout "botanist/internal/modules/session/adapter/out"
	sessiondto "botanist/internal/modules/session/dto"
	sessionin "botanist/internal/modules/session/port/in"
	"botanist/internal/modules/session/service"
	"botanist/internal/modules/session/usecase"
	apperrors "botanist/internal/platform/errors"
	"botanist/internal/platform/lock"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeID struct{}

func (fakeID) New() string { return "sess-1" }

type fakeGarden struct {
	appended []gardendto.SessionInput
	err      error
}

func (f *fakeGarden) Append(_ context.Context, input gardendto.SessionInput) (gardendto.AppendOutput, error) {
	if f.err != nil {
		return gardendto.AppendOutput{}, f.err
	}
	f.appended = append(f.appended, input)
	return gardendto.AppendOutput{TotalSessions: len(f.appended)}, nil
}
func (f *fakeGarden) Garden(context.Context) (gardendto.GardenOutput, error) {
	return gardendto.GardenOutput{}, nil
}
func (f *fakeGarden) Export(context.Context, io.Writer) (gardendto.ExportOutput, error) {
	return gardendto.ExportOutput{}, nil
}
func (f *fakeGarden) Backups(context.Context) ([]gardendto.BackupOutput, error) { return nil, nil }
func (f *fakeGarden) Verify(context.Context) (gardendto.VerifyOutput, error) {
	return gardendto.VerifyOutput{}, nil
}

type fakeFlowers struct{}

func (fakeFlowers) Assign(_ context.Context, input flowerdto.AssignInput) (flowerdto.FlowerOutput, error) {
	if input.NetSeconds >= 3600 {
		return flowerdto.FlowerOutput{Name: "Lotus", Art: "(*)"}, nil
	}
	return flowerdto.FlowerOutput{Name: "Bud", Art: "(@)"}, nil
}
func (fakeFlowers) Samples(context.Context) ([]flowerdto.SampleOutput, error) { return nil, nil }

type fakeNotes struct {
	lines []string
	err   error
}

func (f *fakeNotes) AppendEntry(_ context.Context, line string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lines = append(f.lines, line)
	return "/notes/today.md", nil
}

func at(hour, minute, second int) time.Time {
	return time.Date(2025, 6, 20, hour, minute, second, 0, time.Local)
}

type harness struct {
	uc     sessionin.Usecase
	garden *fakeGarden
	dir    string
}

func newHarness(t *testing.T, times []time.Time, minSeconds int, opts ...usecase.Option) harness {
	t.Helper()
	dir := t.TempDir()
	garden := &fakeGarden{}
	svc := service.NewSessionService(&fakeClock{values: times}, fakeID{})
	store := sessionout.NewFileActiveSessionStore(filepath.Join(dir, ".hiddenBotanist"))
	uc := usecase.NewInteractor(svc, store, garden, fakeFlowers{}, usecase.Settings{MinSessionSeconds: minSeconds, DefaultBreakMinutes: 5}, opts...)
	return harness{uc: uc, garden: garden, dir: dir}
}

func TestSessionLifecycleSavesNetDuration(t *testing.T) {
	t.Parallel()
	h := newHarness(t, []time.Time{at(9, 0, 0), at(9, 50, 0), at(10, 5, 0), at(10, 50, 0)}, 30)
	ctx := context.Background()

	start, err := h.uc.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if start.SessionID != "sess-1" || !start.StartedAt.Equal(at(9, 0, 0)) {
		t.Fatalf("unexpected start %+v", start)
	}
	paused, err := h.uc.Pause(ctx)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if paused.WorkedSoFar != 50*time.Minute || paused.BreakMinutes != 5 {
		t.Fatalf("unexpected pause %+v", paused)
	}
	resumed, err := h.uc.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.PausedFor != 15*time.Minute {
		t.Fatalf("unexpected resume %+v", resumed)
	}
	done, err := h.uc.Finish(ctx, sessiondto.FinishInput{Description: "  write   the parser  "})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !done.Saved || done.Net != 95*time.Minute || done.Paused != 15*time.Minute || done.Formatted != "1h 35m" {
		t.Fatalf("unexpected finish %+v", done)
	}
	if done.FlowerName != "Lotus" || done.TotalSessions != 1 {
		t.Fatalf("unexpected flower or total %+v", done)
	}
	if len(h.garden.appended) != 1 {
		t.Fatalf("expected one appended session, got %d", len(h.garden.appended))
	}
	saved := h.garden.appended[0]
	if saved.DurationSeconds != 5700 || saved.Description != "write the parser" || saved.Flower != "(*)" {
		t.Fatalf("unexpected appended session %+v", saved)
	}
	if !saved.StartTime.Equal(at(9, 0, 0)) || !saved.EndTime.Equal(at(10, 50, 0)) {
		t.Fatalf("unexpected bounds %+v", saved)
	}
	if _, err := h.uc.Status(ctx); !errors.Is(err, apperrors.ErrNotStarted) {
		t.Fatalf("marker must be cleared after finish, got %v", err)
	}
}

func TestFinishBelowThresholdDiscardsSession(t *testing.T) {
	t.Parallel()
	h := newHarness(t, []time.Time{at(9, 0, 0), at(9, 0, 29)}, 30)
	ctx := context.Background()
	if _, err := h.uc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	done, err := h.uc.Finish(ctx, sessiondto.FinishInput{Description: "blip"})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if done.Saved || done.MinSessionSeconds != 30 || done.Net != 29*time.Second {
		t.Fatalf("unexpected finish %+v", done)
	}
	if len(h.garden.appended) != 0 {
		t.Fatalf("short session must not be appended")
	}
	if _, err := h.uc.Status(ctx); !errors.Is(err, apperrors.ErrNotStarted) {
		t.Fatalf("marker must be cleared for a discarded session, got %v", err)
	}
}

func TestFinishKeepsMarkerWhenAppendFails(t *testing.T) {
	t.Parallel()
	h := newHarness(t, []time.Time{at(9, 0, 0), at(10, 0, 0), at(10, 0, 5)}, 30)
	h.garden.err = apperrors.ErrInvalidData
	ctx := context.Background()
	if _, err := h.uc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := h.uc.Finish(ctx, sessiondto.FinishInput{}); !errors.Is(err, apperrors.ErrInvalidData) {
		t.Fatalf("expected append error, got %v", err)
	}
	status, err := h.uc.Status(ctx)
	if err != nil {
		t.Fatalf("marker must survive a failed append: %v", err)
	}
	if status.SessionID != "sess-1" {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestStateErrors(t *testing.T) {
	t.Parallel()
	h := newHarness(t, []time.Time{at(9, 0, 0), at(9, 10, 0), at(9, 20, 0)}, 30)
	ctx := context.Background()

	if _, err := h.uc.Pause(ctx); !errors.Is(err, apperrors.ErrNotStarted) {
		t.Fatalf("pause without session: %v", err)
	}
	if _, err := h.uc.Resume(ctx); !errors.Is(err, apperrors.ErrNotStarted) {
		t.Fatalf("resume without session: %v", err)
	}
	if _, err := h.uc.Finish(ctx, sessiondto.FinishInput{}); !errors.Is(err, apperrors.ErrNotStarted) {
		t.Fatalf("finish without session: %v", err)
	}
	if _, err := h.uc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := h.uc.Start(ctx); !errors.Is(err, apperrors.ErrAlreadyActive) {
		t.Fatalf("second start: %v", err)
	}
	if _, err := h.uc.Resume(ctx); !errors.Is(err, apperrors.ErrNotPaused) {
		t.Fatalf("resume while running: %v", err)
	}
	if _, err := h.uc.Pause(ctx); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if _, err := h.uc.Pause(ctx); !errors.Is(err, apperrors.ErrAlreadyPaused) {
		t.Fatalf("second pause: %v", err)
	}
	if _, err := h.uc.Finish(ctx, sessiondto.FinishInput{}); !errors.Is(err, apperrors.ErrStillPaused) {
		t.Fatalf("finish while paused: %v", err)
	}
	status, err := h.uc.Status(ctx)
	if err != nil || !status.IsPaused {
		t.Fatalf("session should still be paused: %+v %v", status, err)
	}
}

func TestFinishWritesNoteEntry(t *testing.T) {
	t.Parallel()
	notes := &fakeNotes{}
	h := newHarness(t, []time.Time{at(9, 0, 0), at(10, 30, 0)}, 30, usecase.WithNoteSink(notes))
	ctx := context.Background()
	if _, err := h.uc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	done, err := h.uc.Finish(ctx, sessiondto.FinishInput{Description: "review"})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	want := "- Friday 06/20 -- 09:00-10:30 -- 1h 30m -- review"
	if len(notes.lines) != 1 || notes.lines[0] != want {
		t.Fatalf("unexpected note lines %q", notes.lines)
	}
	if done.NotePath != "/notes/today.md" || done.NoteError != "" {
		t.Fatalf("unexpected note result %+v", done)
	}
}

func TestFinishSurvivesNoteFailure(t *testing.T) {
	t.Parallel()
	notes := &fakeNotes{err: errors.New("vault offline")}
	h := newHarness(t, []time.Time{at(9, 0, 0), at(10, 30, 0)}, 30, usecase.WithNoteSink(notes))
	ctx := context.Background()
	if _, err := h.uc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	done, err := h.uc.Finish(ctx, sessiondto.FinishInput{Description: "review"})
	if err != nil {
		t.Fatalf("note failure must not fail finish: %v", err)
	}
	if !done.Saved || done.NoteError != "vault offline" || len(h.garden.appended) != 1 {
		t.Fatalf("unexpected finish %+v", done)
	}
}

func TestMutationsFailFastWhileLocked(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	manager := lock.NewFileManager(filepath.Join(dir, ".botanist.lock"))
	h := newHarness(t, []time.Time{at(9, 0, 0)}, 30, usecase.WithTx(manager))
	ctx := context.Background()

	err := manager.Within(ctx, func(ctx context.Context) error {
		_, err := h.uc.Start(ctx)
		return err
	})
	if !errors.Is(err, apperrors.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if _, err := h.uc.Start(ctx); err != nil {
		t.Fatalf("start after release: %v", err)
	}
}

func TestCorruptMarkerNamesFileAndBlocksStart(t *testing.T) {
	t.Parallel()
	h := newHarness(t, []time.Time{at(9, 0, 0)}, 30)
	ctx := context.Background()
	marker := filepath.Join(h.dir, ".hiddenBotanist")
	if err := os.WriteFile(marker, []byte("{truncated"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	_, err := h.uc.Start(ctx)
	if !errors.Is(err, apperrors.ErrAlreadyActive) || !errors.Is(err, apperrors.ErrCorruptMarker) {
		t.Fatalf("start over corrupt marker: %v", err)
	}
	if !strings.Contains(err.Error(), marker) {
		t.Fatalf("error should name the marker file: %v", err)
	}
	if _, err := h.uc.Pause(ctx); !errors.Is(err, apperrors.ErrCorruptMarker) || !strings.Contains(err.Error(), marker) {
		t.Fatalf("pause over corrupt marker: %v", err)
	}
	payload, err := os.ReadFile(marker)
	if err != nil || string(payload) != "{truncated" {
		t.Fatalf("corrupt marker must be left in place, got %q %v", payload, err)
	}
}
