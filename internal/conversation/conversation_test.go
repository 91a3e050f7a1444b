package conversation

import "testing"

func TestAppendAndRecentWindowing(t *testing.T) {
	l := NewLog()
	l.AppendUser("q1")
	l.AppendAssistant("a1")
	l.AppendUser("q2")
	l.AppendAssistant("a2")
	l.AppendUser("q3")

	if l.Len() != 5 {
		t.Fatalf("unexpected length: %d", l.Len())
	}

	recent := l.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("unexpected recent length: %d", len(recent))
	}
	// Oldest of the three first.
	if recent[0].Text != "q2" || !recent[0].IsUser {
		t.Fatalf("unexpected recent[0]: %+v", recent[0])
	}
	if recent[1].Text != "a2" || recent[1].IsUser {
		t.Fatalf("unexpected recent[1]: %+v", recent[1])
	}
	if recent[2].Text != "q3" || !recent[2].IsUser {
		t.Fatalf("unexpected recent[2]: %+v", recent[2])
	}
}

func TestRecentShorterThanWindow(t *testing.T) {
	l := NewLog()
	l.AppendUser("only")

	recent := l.Recent(3)
	if len(recent) != 1 || recent[0].Text != "only" {
		t.Fatalf("unexpected recent: %+v", recent)
	}
}

func TestRecentEmptyLog(t *testing.T) {
	l := NewLog()
	if got := l.Recent(3); len(got) != 0 {
		t.Fatalf("expected empty recent, got: %+v", got)
	}
	if got := l.Recent(0); len(got) != 0 {
		t.Fatalf("expected empty recent for n=0, got: %+v", got)
	}
}

func TestRecentReturnsCopy(t *testing.T) {
	l := NewLog()
	l.AppendUser("hello")

	recent := l.Recent(1)
	recent[0].Text = "mutated"

	if l.Recent(1)[0].Text != "hello" {
		t.Fatalf("log mutated via returned slice")
	}
}

func TestLastProductPointer(t *testing.T) {
	l := NewLog()
	if l.LastProduct() != NoProduct {
		t.Fatalf("expected NoProduct on fresh log, got %d", l.LastProduct())
	}

	l.SetLastProduct(3)
	if l.LastProduct() != 3 {
		t.Fatalf("unexpected last product: %d", l.LastProduct())
	}

	// Appending turns never touches the pointer.
	l.AppendUser("q")
	l.AppendAssistant("a")
	if l.LastProduct() != 3 {
		t.Fatalf("pointer changed by appends: %d", l.LastProduct())
	}
}
