package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false, true}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.White, color.Black)

	for i, alive := range cells {
		base := i * 4
		want := byte(0x00)
		if alive {
			want = 0xff
		}
		for c := 0; c < 3; c++ {
			if buf[base+c] != want {
				t.Fatalf("pixel %d channel %d = %#x, want %#x", i, c, buf[base+c], want)
			}
		}
		if buf[base+3] != 0xff {
			t.Fatalf("pixel %d alpha = %#x, want 0xff", i, buf[base+3])
		}
	}
}
