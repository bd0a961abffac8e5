package plot

import (
	"fmt"
	"strconv"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return currentColour
	}
	return p[i%len(p)]
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// lerpColor blends two #rrggbb colours; f is clamped to [0, 1].
func lerpColor(low, high string, f float64) string {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	lr, lg, lb := splitRGB(low)
	hr, hg, hb := splitRGB(high)
	mix := func(a, b int) int {
		return a + int(f*float64(b-a))
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(lr, hr), mix(lg, hg), mix(lb, hb))
}

func splitRGB(str string) (int, int, int) {
	if len(str) == 7 && str[0] == '#' {
		str = str[1:]
	}
	if len(str) != 6 {
		return 0, 0, 0
	}
	hex := func(s string) int {
		v, _ := strconv.ParseInt(s, 16, 32)
		return int(v)
	}
	return hex(str[0:2]), hex(str[2:4]), hex(str[4:6])
}
