package colorspace

import "testing"

func TestNamedConstants(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want int
	}{
		{"aqua", Aqua, 0x00FFFF},
		{"black", Black, 0x000000},
		{"blue", Blue, 0x0000FF},
		{"fuchsia", Fuchsia, 0xFF00FF},
		{"gray", Gray, 0x808080},
		{"green", Green, 0x008000},
		{"lime", Lime, 0x00FF00},
		{"maroon", Maroon, 0x800000},
		{"navy", Navy, 0x000080},
		{"olive", Olive, 0x808000},
		{"orange", Orange, 0xFFA500},
		{"purple", Purple, 0x800080},
		{"red", Red, 0xFF0000},
		{"silver", Silver, 0xC0C0C0},
		{"teal", Teal, 0x008080},
		{"white", White, 0xFFFFFF},
		{"yellow", Yellow, 0xFFFF00},
		{"transparent", Transparent, 0x7FFFFFFF},
	}

	for _, tt := range tests {
		if tt.c.Int() != tt.want {
			t.Errorf("%s: got %#x, want %#x", tt.name, tt.c.Int(), tt.want)
		}
	}
}

func TestNamed(t *testing.T) {
	table := Named()
	if len(table) != 18 {
		t.Fatalf("table length: got %d, want 18", len(table))
	}
	if last := table[len(table)-1]; last.Name != "transparent" {
		t.Errorf("last entry: got %s, want transparent", last.Name)
	}

	// Callers get a copy, not the shared table.
	table[0] = NamedColor{"mutated", 0}
	if Named()[0].Name != "aqua" {
		t.Error("Named() exposed the internal table")
	}
}

func TestNamedMatch(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"exact red", Red, "red"},
		{"near white", FromRGB(254, 254, 254), "white"},
		{"near navy", FromRGB(5, 3, 120), "navy"},
		{"white never matches the sentinel", White, "white"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := NamedMatch(tt.c)
			if !ok {
				t.Fatal("no match returned")
			}
			if match.Name != tt.want {
				t.Errorf("got %s, want %s", match.Name, tt.want)
			}
		})
	}
}
