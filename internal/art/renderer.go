package art

import (
	"math"
	"strings"

	"github.com/sethgrid/whiskers/internal/conditions"
)

// Sprites maps a condition key to its art.
var Sprites = map[string]string{
	"default": ` /\_/\
( o.o )
 > ^ < `,
	"hungry": ` /\_/\
( ;.; )
 > ~ < `,
	"starving": ` /\_/\
( x.x )
 > _ < `,
	"stuffed": ` /\_/\
( -.- )
 >(@)< `,
	"chubby": ` /\_/\
( o.o )
(  ^  )`,
	"floating": `  ~~~
 /\_/\
( ^o^ )
 (   ) `,
}

// ChooseSpriteKey picks the most specific sprite for the ordered
// conditions, dropping the least important ones until a key exists.
func ChooseSpriteKey(ordered []conditions.Condition, sprites map[string]string) string {
	var parts []string
	for _, c := range ordered {
		parts = append(parts, string(c))
	}

	key := strings.Join(parts, "+")
	if key == "" {
		return "default"
	}
	if _, exists := sprites[key]; exists {
		return key
	}

	// Progressive fallback
	for i := len(parts) - 1; i > 0; i-- {
		fallbackKey := strings.Join(parts[:i], "+")
		if _, exists := sprites[fallbackKey]; exists {
			return fallbackKey
		}
	}

	return "default"
}

// FeedingArt is the feeding pane's cat, stretched to the given scale.
func FeedingArt(status conditions.DerivedStatus, scale float64) string {
	key := ChooseSpriteKey(status.AllOrdered, Sprites)
	return Stretch(Sprites[key], scale)
}

// Stretch enlarges art: every column is repeated round(scale) times and
// every row half as often, since terminal cells are tall.
func Stretch(art string, scale float64) string {
	cols := int(math.Round(scale))
	if cols <= 1 {
		return art
	}
	rows := (cols + 1) / 2

	var out []string
	for _, line := range strings.Split(art, "\n") {
		var b strings.Builder
		for _, r := range line {
			b.WriteString(strings.Repeat(string(r), cols))
		}
		for i := 0; i < rows; i++ {
			out = append(out, b.String())
		}
	}
	return strings.Join(out, "\n")
}

// Direction is one of eight compass points, clockwise from north.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var faces = [8]string{
	"( ^.^ )",
	"(  ^.^)",
	"(  o.o)",
	"(  v.v)",
	"( v.v )",
	"(v.v  )",
	"(o.o  )",
	"(^.^  )",
}

// DirectionOf buckets a sprite angle in degrees, 0 meaning up and 90
// meaning right.
func DirectionOf(angle float64) Direction {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return Direction(int(math.Round(a/45)) % 8)
}

// ChaseSprite is the cat facing the given angle.
func ChaseSprite(angle float64) string {
	return " /\\_/\\ \n" + faces[DirectionOf(angle)] + "\n > ^ < "
}

// Size returns the width and height of multi-line art.
func Size(art string) (int, int) {
	lines := strings.Split(art, "\n")
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	return w, len(lines)
}
