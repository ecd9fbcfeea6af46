package clipshape

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects one of the shape algorithms. Kinds are ordered; [Kind.Next]
// cycles through them.
type Kind int

const (
	KindCircle Kind = iota
	KindRectangle
	KindCapsule
	KindEllipse
	KindPolygon
	KindHeart
	KindCloud
	KindBlob
	KindExternal

	numKinds
)

var kindInfo = [numKinds]struct {
	name     string
	shortcut rune
}{
	KindCircle:    {"circle", 'c'},
	KindRectangle: {"rectangle", 'r'},
	KindCapsule:   {"capsule", 's'},
	KindEllipse:   {"ellipse", 'e'},
	KindPolygon:   {"polygon", 'h'},
	KindHeart:     {"heart", 't'},
	KindCloud:     {"cloud", 'd'},
	KindBlob:      {"blob", 'b'},
	KindExternal:  {"external", 'x'},
}

// Other names accepted by ParseKind.
var kindAliases = map[string]Kind{
	"hexagon": KindPolygon,
	"ngon":    KindPolygon,
	"svg":     KindExternal,
}

var ErrUnknownKind = errors.New("unknown shape kind")

// Kinds returns all kinds in order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindInfo[k].name
}

// Shortcut returns the key that selects k in the host's shape menu.
func (k Kind) Shortcut() rune {
	if !k.valid() {
		return 0
	}
	return kindInfo[k].shortcut
}

// Next returns the kind following k, wrapping from the last kind to the
// first.
func (k Kind) Next() Kind {
	return Kind(((int(k)+1)%int(numKinds) + int(numKinds)) % int(numKinds))
}

// ParseKind returns the kind with the given name, ignoring case.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range kindInfo {
		if info.name == name {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// KindForShortcut returns the kind selected by the key r.
func KindForShortcut(r rune) (Kind, bool) {
	for i, info := range kindInfo {
		if info.shortcut == r {
			return Kind(i), true
		}
	}
	return 0, false
}
