package imaging

import (
	"errors"
	"testing"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// solidBuffer returns a width x height buffer filled with one color.
func solidBuffer(t *testing.T, width, height, r, g, b int) *raster.Buffer {
	t.Helper()
	buf, err := raster.New(width, height)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	buf.Fill(0, 0, height, width, r, g, b)
	return buf
}

// quadrantBuffer paints red top-left, green top-right, blue bottom-left and
// white bottom-right.
func quadrantBuffer(t *testing.T, width, height int) *raster.Buffer {
	t.Helper()
	buf := solidBuffer(t, width, height, 255, 255, 255)
	buf.Fill(0, 0, height/2, width/2, 255, 0, 0)
	buf.Fill(0, width/2, height/2, width-width/2, 0, 255, 0)
	buf.Fill(height/2, 0, height-height/2, width/2, 0, 0, 255)
	return buf
}

func TestSampleColor(t *testing.T) {
	buf := solidBuffer(t, 100, 100, 255, 128, 64)

	result, err := SampleColor(buf, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
}

func TestSampleColor_XIsColumn(t *testing.T) {
	buf := solidBuffer(t, 4, 2, 0, 0, 0)
	buf.Set(1, 3, 9, 9, 9)

	result, err := SampleColor(buf, 3, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#090909" {
		t.Errorf("Hex: got %s, want #090909", result.Hex)
	}
}

func TestSampleColor_ClampsOutOfRange(t *testing.T) {
	buf := solidBuffer(t, 2, 2, 0, 0, 0)
	buf.Set(0, 0, 300, -20, 128)

	result, err := SampleColor(buf, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#FF0080" {
		t.Errorf("Hex: got %s, want #FF0080", result.Hex)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	buf := solidBuffer(t, 100, 100, 255, 0, 0)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(buf, tt.x, tt.y)
			if !errors.Is(err, raster.ErrOutOfBounds) {
				t.Errorf("got %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestSampleColor_EdgeCoordinates(t *testing.T) {
	buf := solidBuffer(t, 100, 100, 255, 0, 0)

	tests := []struct {
		name string
		x, y int
	}{
		{"top-left", 0, 0},
		{"top-right", 99, 0},
		{"bottom-left", 0, 99},
		{"bottom-right", 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(buf, tt.x, tt.y)
			if err != nil {
				t.Errorf("SampleColor failed for valid edge coordinate (%d,%d): %v", tt.x, tt.y, err)
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	buf := quadrantBuffer(t, 100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "red"},
		{X: 75, Y: 25, Label: "green"},
		{X: 25, Y: 75, Label: "blue"},
		{X: 75, Y: 75, Label: "white"},
	}

	result, err := SampleColorsMulti(buf, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(result.Samples))
	}

	expectedHex := []string{"#FF0000", "#00FF00", "#0000FF", "#FFFFFF"}
	for i, sample := range result.Samples {
		if sample.Label != points[i].Label {
			t.Errorf("sample %d label: got %s, want %s", i, sample.Label, points[i].Label)
		}
		if sample.Color.Hex != expectedHex[i] {
			t.Errorf("sample %d (%s) hex: got %s, want %s",
				i, sample.Label, sample.Color.Hex, expectedHex[i])
		}
	}
}

func TestSampleColorsMulti_OutOfBounds(t *testing.T) {
	buf := solidBuffer(t, 100, 100, 255, 0, 0)

	points := []LabeledPoint{
		{X: 50, Y: 50, Label: "valid"},
		{X: 200, Y: 50, Label: "invalid"},
	}

	_, err := SampleColorsMulti(buf, points)
	if err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestDominantColors(t *testing.T) {
	buf := solidBuffer(t, 100, 100, 0, 255, 0)
	buf.Fill(0, 0, 100, 80, 255, 0, 0)

	result, err := DominantColors(buf, 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(result.Colors))
	}
	// 255 quantizes to 240.
	if result.Colors[0].Hex != "#F00000" || result.Colors[0].Percentage != 80 {
		t.Errorf("first color: got %s at %.1f%%, want #F00000 at 80%%",
			result.Colors[0].Hex, result.Colors[0].Percentage)
	}
	if result.Colors[1].Hex != "#00F000" || result.Colors[1].Percentage != 20 {
		t.Errorf("second color: got %s at %.1f%%, want #00F000 at 20%%",
			result.Colors[1].Hex, result.Colors[1].Percentage)
	}
}

func TestDominantColors_WithRegion(t *testing.T) {
	buf := quadrantBuffer(t, 100, 100)

	result, err := DominantColors(buf, 5, &Region{X1: 0, Y1: 0, X2: 50, Y2: 50})
	if err != nil {
		t.Fatalf("DominantColors with region failed: %v", err)
	}

	if len(result.Colors) != 1 || result.Colors[0].Percentage != 100 {
		t.Errorf("expected red to fill the top-left region, got %+v", result.Colors)
	}
}

func TestDominantColors_RegionClipped(t *testing.T) {
	buf := quadrantBuffer(t, 100, 100)

	result, err := DominantColors(buf, 5, &Region{X1: 50, Y1: 50, X2: 500, Y2: 500})
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].Hex != "#F0F0F0" {
		t.Errorf("expected only white in the clipped region, got %+v", result.Colors)
	}
}

func TestDominantColors_EmptyRegion(t *testing.T) {
	buf := solidBuffer(t, 10, 10, 1, 2, 3)

	tests := []struct {
		name   string
		region Region
	}{
		{"inverted", Region{X1: 5, Y1: 5, X2: 2, Y2: 8}},
		{"outside", Region{X1: 20, Y1: 20, X2: 30, Y2: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DominantColors(buf, 3, &tt.region)
			if !errors.Is(err, raster.ErrOutOfBounds) {
				t.Errorf("got %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestDominantColors_CountLimit(t *testing.T) {
	buf := quadrantBuffer(t, 10, 10)

	result, err := DominantColors(buf, 2, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(result.Colors))
	}
	// Four equal quadrants tie, so hex order decides.
	if result.Colors[0].Hex != "#0000F0" || result.Colors[1].Hex != "#00F000" {
		t.Errorf("tie order: got %s, %s", result.Colors[0].Hex, result.Colors[1].Hex)
	}
}

func TestToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantH   int
		wantS   int
		wantL   int
	}{
		{"red", 255, 0, 0, 0, 100, 50},
		{"green", 0, 255, 0, 120, 100, 50},
		{"blue", 0, 0, 255, 240, 100, 50},
		{"white", 255, 255, 255, 0, 0, 100},
		{"black", 0, 0, 0, 0, 0, 0},
		{"gray", 128, 128, 128, 0, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsl := toHSL(RGBColor{R: tt.r, G: tt.g, B: tt.b})

			// Allow some tolerance for rounding
			if abs(hsl.H-tt.wantH) > 1 {
				t.Errorf("H: got %d, want %d", hsl.H, tt.wantH)
			}
			if abs(hsl.S-tt.wantS) > 1 {
				t.Errorf("S: got %d, want %d", hsl.S, tt.wantS)
			}
			if abs(hsl.L-tt.wantL) > 1 {
				t.Errorf("L: got %d, want %d", hsl.L, tt.wantL)
			}
		})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestRGBColor_Hex(t *testing.T) {
	tests := []struct {
		c    RGBColor
		want string
	}{
		{RGBColor{0, 0, 0}, "#000000"},
		{RGBColor{255, 255, 255}, "#FFFFFF"},
		{RGBColor{148, 0, 211}, "#9400D3"},
		{RGBColor{13, 94, 175}, "#0D5EAF"},
		{RGBColor{1, 128, 254}, "#0180FE"},
	}

	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%+v): got %s, want %s", tt.c, got, tt.want)
		}
	}
}
