package world

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRoom(t *testing.T) {
	r, err := NewRoom("cellar", "A damp cellar.", "", false)
	if err != nil {
		t.Fatalf("NewRoom failed: %v", err)
	}
	if r.Name != "cellar" {
		t.Errorf("expected name 'cellar', got %q", r.Name)
	}
	if r.Entered {
		t.Error("new room should not be marked entered")
	}

	if _, err := NewRoom("", "desc", "", false); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewRoom("cellar", "", "", false); err == nil {
		t.Error("expected error for empty description")
	}
	if _, err := NewRoom("", "", "", false); !errors.Is(err, ErrMissingParameters) {
		t.Errorf("expected ErrMissingParameters, got %v", err)
	}
}

func TestRoomEnterFirstVisit(t *testing.T) {
	r, err := NewRoom("hall", "A long hall.", "You step into the hall for the first time.", false)
	if err != nil {
		t.Fatalf("NewRoom failed: %v", err)
	}

	first := r.Enter()
	if !strings.Contains(first, "You step into the hall for the first time.") {
		t.Errorf("first entry should include the first-visit text, got %q", first)
	}
	if !strings.Contains(first, "A long hall.") {
		t.Errorf("first entry should include the description, got %q", first)
	}
	if !r.Entered {
		t.Error("room should be marked entered after Enter")
	}

	second := r.Enter()
	if strings.Contains(second, "You step into the hall") {
		t.Errorf("later entries must not repeat the first-visit text, got %q", second)
	}
	if second != "A long hall." {
		t.Errorf("expected bare description on re-entry, got %q", second)
	}
}

func TestRoomEnterComposition(t *testing.T) {
	r, err := NewRoom("study", "Bookshelves line the walls.", "You push the door open.", false)
	if err != nil {
		t.Fatalf("NewRoom failed: %v", err)
	}
	r.PutObject("desk", "A heavy oak desk stands in the corner.")
	r.PutItem("key", "A small key lies on the desk.")

	got := r.Enter()
	want := "You push the door open. A heavy oak desk stands in the corner.\nBookshelves line the walls.\nA small key lies on the desk."
	if got != want {
		t.Errorf("first entry composition wrong:\ngot  %q\nwant %q", got, want)
	}

	got = r.Enter()
	want = "Bookshelves line the walls. A heavy oak desk stands in the corner.\nA small key lies on the desk."
	if got != want {
		t.Errorf("re-entry composition wrong:\ngot  %q\nwant %q", got, want)
	}
}

func TestRoomEnterWithoutFirstVisitText(t *testing.T) {
	r, err := NewRoom("yard", "An empty yard.", "", false)
	if err != nil {
		t.Fatalf("NewRoom failed: %v", err)
	}
	if got := r.Enter(); got != "An empty yard." {
		t.Errorf("expected bare description, got %q", got)
	}
	if !r.Entered {
		t.Error("room should be marked entered")
	}
}

func TestRoomItemPlacement(t *testing.T) {
	r, _ := NewRoom("attic", "Dust everywhere.", "", false)

	r.PutItem("lamp", "An old lamp sits by the window.")
	if !r.HasItem("lamp") {
		t.Error("lamp should be in the room")
	}

	// Re-placing replaces the text, not duplicates the entry.
	r.PutItem("lamp", "The lamp has been moved to the floor.")
	if len(r.Items) != 1 {
		t.Errorf("expected 1 item after re-placement, got %d", len(r.Items))
	}
	if r.Items[0].Text != "The lamp has been moved to the floor." {
		t.Errorf("placement text not replaced: %q", r.Items[0].Text)
	}

	if !r.RemoveItem("lamp") {
		t.Error("RemoveItem should report the lamp was there")
	}
	if r.HasItem("lamp") {
		t.Error("lamp should be gone")
	}
	if r.RemoveItem("lamp") {
		t.Error("removing a missing item should report false")
	}
}

func TestRoomCheckVisitRequirements(t *testing.T) {
	r, _ := NewRoom("vault", "The vault.", "", false)
	r.AddVisitRequirement("archive", "I should check the archive first.")
	r.AddVisitRequirement("office", "The office might have the code.")

	deny, ok := r.CheckVisitRequirements([]string{"archive"})
	if ok {
		t.Fatal("requirements should not be satisfied")
	}
	// Any unmet requirement surfaces every deny message at once.
	want := "I should check the archive first.\nThe office might have the code."
	if deny != want {
		t.Errorf("deny message wrong:\ngot  %q\nwant %q", deny, want)
	}

	deny, ok = r.CheckVisitRequirements([]string{"archive", "office"})
	if !ok {
		t.Errorf("requirements should be satisfied, got deny %q", deny)
	}
	if deny != "" {
		t.Errorf("expected empty deny when satisfied, got %q", deny)
	}
}

func TestRoomCheckItemRequirements(t *testing.T) {
	r, _ := NewRoom("gate", "The iron gate.", "", false)
	r.AddItemRequirement("gate key", "The gate is locked.")

	if deny, ok := r.CheckItemRequirements(nil); ok || deny != "The gate is locked." {
		t.Errorf("expected deny with empty inventory, got ok=%v deny=%q", ok, deny)
	}
	if deny, ok := r.CheckItemRequirements([]string{"gate key"}); !ok || deny != "" {
		t.Errorf("expected pass with key carried, got ok=%v deny=%q", ok, deny)
	}
}

func TestRoomHasRequirements(t *testing.T) {
	r, _ := NewRoom("open field", "A field.", "", false)
	if r.HasRequirements() {
		t.Error("ungated room should report no requirements")
	}
	r.AddItemRequirement("boots", "Too muddy without boots.")
	if !r.HasRequirements() {
		t.Error("gated room should report requirements")
	}
}
