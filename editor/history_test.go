package editor

import "testing"

func TestHistory_AddSkipsEmptyAndDuplicates(t *testing.T) {
	h := NewHistory(10)
	h.Add("a")
	h.Add("a")
	h.Add("")
	h.Add("b")

	if got := h.Entries(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("entries=%v, want [a b]", got)
	}
}

func TestHistory_LimitDropsOldest(t *testing.T) {
	h := NewHistory(2)
	h.Add("one")
	h.Add("two")
	h.Add("three")

	if got := h.Entries(); len(got) != 2 || got[0] != "two" || got[1] != "three" {
		t.Fatalf("entries=%v, want [two three]", got)
	}
}

func TestHistory_SearchAnchorsOnPrefix(t *testing.T) {
	h := NewHistory(10)
	h.Add("git status")
	h.Add("ls")
	h.Add("git push")

	entry, ok := h.SearchNext("git")
	if !ok || entry != "git push" {
		t.Fatalf("next=(%q,%v), want (git push,true)", entry, ok)
	}
	entry, ok = h.SearchNext("ignored after anchor")
	if !ok || entry != "git status" {
		t.Fatalf("next=(%q,%v), want (git status,true)", entry, ok)
	}
	if _, ok := h.SearchNext(""); ok {
		t.Fatalf("next past oldest match=true, want false")
	}
}

func TestHistory_SearchPreviousRestoresAnchor(t *testing.T) {
	h := NewHistory(10)
	h.Add("alpha")
	h.Add("beta")

	if _, ok := h.SearchPrevious("x"); ok {
		t.Fatalf("previous without navigation=true, want false")
	}

	h.SearchNext("") // beta
	h.SearchNext("") // alpha

	entry, ok := h.SearchPrevious("")
	if !ok || entry != "beta" {
		t.Fatalf("previous=(%q,%v), want (beta,true)", entry, ok)
	}
	// Past the newest match: the anchored text comes back once.
	entry, ok = h.SearchPrevious("")
	if !ok || entry != "" {
		t.Fatalf("previous=(%q,%v), want anchor restore", entry, ok)
	}
	if _, ok := h.SearchPrevious(""); ok {
		t.Fatalf("previous after restore=true, want false")
	}
}

func TestHistory_UpdateDrainsQueue(t *testing.T) {
	h := NewHistory(10)
	h.Queue("one")
	h.Queue("two")

	if got := h.Entries(); len(got) != 0 {
		t.Fatalf("entries before update=%v, want none", got)
	}
	h.Update()
	if got := h.Entries(); len(got) != 2 {
		t.Fatalf("entries=%v, want 2", got)
	}
}

func TestHistory_ResetNavigationReanchors(t *testing.T) {
	h := NewHistory(10)
	h.Add("aa")
	h.Add("bb")

	h.SearchNext("") // bb
	h.ResetNavigation()

	entry, ok := h.SearchNext("a")
	if !ok || entry != "aa" {
		t.Fatalf("next=(%q,%v), want (aa,true)", entry, ok)
	}
}
