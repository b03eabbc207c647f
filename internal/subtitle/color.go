package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// parses a SubStation color value
//
// Accepts the ASS &HAABBGGRR hex form as well as a bare decimal or 0x-hex
// integer, which some nonconforming producers emit. Channels are masked to
// 8 bits after unpacking.
func DecodeColor(s string) (Color, error) {
	var x uint64
	var err error

	if strings.HasPrefix(s, "&") {
		if len(s) < 3 {
			return Color{}, fmt.Errorf("invalid color %q", s)
		}
		x, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		x, err = strconv.ParseUint(s, 0, 64)
	}
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return Color{
		R: uint8(x & 0xff),
		G: uint8((x >> 8) & 0xff),
		B: uint8((x >> 16) & 0xff),
		A: uint8((x >> 24) & 0xff),
	}, nil
}

// renders a color in the given variant's text encoding
//
// ASS packs alpha<<24 | blue<<16 | green<<8 | red as &H-prefixed uppercase
// hex. Legacy SSA packs blue<<16 | green<<8 | red as a decimal integer; the
// alpha channel is not representable and is dropped.
func EncodeColor(c Color, f Format) string {
	if f == FormatASS {
		packed := uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
		return fmt.Sprintf("&H%08X", packed)
	}
	packed := uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
	return strconv.FormatUint(uint64(packed), 10)
}
