package clipshape

import (
	"errors"
	"testing"
)

func TestKindNextCycles(t *testing.T) {
	kinds := Kinds()
	for _, start := range kinds {
		k := start
		for range kinds {
			next := k.Next()
			if next == k {
				t.Errorf("%s.Next() returned itself", k)
			}
			k = next
		}
		if k != start {
			t.Errorf("cycling from %s ended at %s", start, k)
		}
	}
	if got := kinds[len(kinds)-1].Next(); got != kinds[0] {
		t.Errorf("last kind wrapped to %s, want %s", got, kinds[0])
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%q): %s", k, err)
			continue
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %s", k, got)
		}
	}

	tests := map[string]Kind{
		"Hexagon":   KindPolygon,
		" CIRCLE ":  KindCircle,
		"svg":       KindExternal,
		"ngon":      KindPolygon,
		"Rectangle": KindRectangle,
	}
	for name, want := range tests {
		got, err := ParseKind(name)
		if err != nil {
			t.Errorf("ParseKind(%q): %s", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseKind(%q) = %s, want %s", name, got, want)
		}
	}

	if _, err := ParseKind("triangle"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got error %v, want %v", err, ErrUnknownKind)
	}
}

func TestKindShortcuts(t *testing.T) {
	seen := map[rune]Kind{}
	for _, k := range Kinds() {
		r := k.Shortcut()
		if other, ok := seen[r]; ok {
			t.Errorf("%s and %s share shortcut %q", k, other, r)
		}
		seen[r] = k

		got, ok := KindForShortcut(r)
		if !ok || got != k {
			t.Errorf("KindForShortcut(%q) = %s, %t; want %s", r, got, ok, k)
		}
	}
	if _, ok := KindForShortcut('z'); ok {
		t.Error("'z' should not select a kind")
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("got %q for an invalid kind", got)
	}
}
