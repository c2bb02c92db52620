package colorspace

// Named color constants. The base set is the HTML4 palette; Olive and
// Orange extend it. Transparent is a sentinel outside the 24-bit range and
// has no meaningful channel decomposition.
const (
	Aqua        Color = 0x00FFFF
	Black       Color = 0x000000
	Blue        Color = 0x0000FF
	Fuchsia     Color = 0xFF00FF
	Gray        Color = 0x808080
	Green       Color = 0x008000
	Lime        Color = 0x00FF00
	Maroon      Color = 0x800000
	Navy        Color = 0x000080
	Olive       Color = 0x808000
	Orange      Color = 0xFFA500
	Purple      Color = 0x800080
	Red         Color = 0xFF0000
	Silver      Color = 0xC0C0C0
	Teal        Color = 0x008080
	White       Color = 0xFFFFFF
	Yellow      Color = 0xFFFF00
	Transparent Color = 0x7FFFFFFF
)

// NamedColor pairs a color constant with its conventional name.
type NamedColor struct {
	Name  string `json:"name"`
	Color Color  `json:"value"`
}

// namedTable is the fixed enumerable table of named colors, ordered
// alphabetically with the Transparent sentinel last.
var namedTable = []NamedColor{
	{"aqua", Aqua},
	{"black", Black},
	{"blue", Blue},
	{"fuchsia", Fuchsia},
	{"gray", Gray},
	{"green", Green},
	{"lime", Lime},
	{"maroon", Maroon},
	{"navy", Navy},
	{"olive", Olive},
	{"orange", Orange},
	{"purple", Purple},
	{"red", Red},
	{"silver", Silver},
	{"teal", Teal},
	{"white", White},
	{"yellow", Yellow},
	{"transparent", Transparent},
}

// Named returns a copy of the named color table.
func Named() []NamedColor {
	table := make([]NamedColor, len(namedTable))
	copy(table, namedTable)
	return table
}

// NamedMatch returns the named color nearest to c by DistanceLab.
//
// The Transparent sentinel is excluded from the search: its masked channels
// would collide with white. ok is always true since the table is non-empty.
func NamedMatch(c Color) (match NamedColor, ok bool) {
	candidates := make([]NamedColor, 0, len(namedTable)-1)
	palette := make([]Color, 0, len(namedTable)-1)
	for _, n := range namedTable {
		if n.Color == Transparent {
			continue
		}
		candidates = append(candidates, n)
		palette = append(palette, n.Color)
	}
	i, ok := c.ClosestMatch(palette)
	if !ok {
		return NamedColor{}, false
	}
	return candidates[i], true
}
