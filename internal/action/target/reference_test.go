package target_test

import (
	"testing"

	"github.com/dshills/actionbind/internal/action/target"
)

func TestReferenceForwardsPrimaryChanges(t *testing.T) {
	primary := target.NewValue()

	var got []any
	ref := target.NewReference(primary, nil, func(_, new any) {
		got = append(got, new)
	})
	ref.Observe()

	primary.Set("a")
	primary.Set("b")

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got = %v, want [a b]", got)
	}
}

func TestReferenceFiltersSentinel(t *testing.T) {
	primary := target.NewValue()

	calls := 0
	ref := target.NewReference(primary, nil, func(_, _ any) { calls++ })
	ref.Observe()

	// Re-delivering the sentinel must never reach the handler,
	// regardless of prior state.
	primary.Set(target.Uninitialized)
	if calls != 0 {
		t.Fatalf("calls = %d, want 0 after sentinel", calls)
	}

	primary.Set("real")
	primary.Set(target.Uninitialized)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestReferenceDeliversInitialValue(t *testing.T) {
	primary := target.NewValue()
	primary.Set("already here")

	var got any
	ref := target.NewReference(primary, nil, func(_, new any) { got = new })
	ref.Observe()

	if got != "already here" {
		t.Errorf("got = %v, want the pre-existing value", got)
	}
}

func TestReferenceBackupPrecedence(t *testing.T) {
	primary := target.NewValue()
	backup := target.NewValue()

	var got any
	ref := target.NewReference(primary, backup, func(_, new any) { got = new })
	ref.Observe()

	// Only the primary is concrete: it wins.
	primary.Set("primary")
	if got != "primary" {
		t.Fatalf("got = %v, want primary", got)
	}
	if ref.Current() != "primary" {
		t.Fatalf("Current = %v, want primary", ref.Current())
	}

	// A concrete backup takes precedence.
	backup.Set("backup")
	if got != "backup" {
		t.Errorf("got = %v, want backup", got)
	}
	if ref.Current() != "backup" {
		t.Errorf("Current = %v, want backup", ref.Current())
	}
}

func TestReferenceBackupNilIsConcrete(t *testing.T) {
	primary := target.NewValue()
	backup := target.NewValue()

	primary.Set("primary")
	backup.Set(nil)

	ref := target.NewReference(primary, backup, nil)

	// An explicit nil backup is a real value, not the sentinel.
	if ref.Current() != nil {
		t.Errorf("Current = %v, want nil", ref.Current())
	}
}

func TestReferenceClose(t *testing.T) {
	primary := target.NewValue()

	calls := 0
	ref := target.NewReference(primary, nil, func(_, _ any) { calls++ })
	ref.Observe()

	primary.Set("a")
	ref.Close()
	primary.Set("b")

	if calls != 1 {
		t.Errorf("calls = %d, want 1 after Close", calls)
	}
}
