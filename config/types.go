package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-theft-auto/datalist"
)

// Color is a datalist color written as "#rrggbb", "#rrggbbaa" or one of
// the names in namedColors.
type Color datalist.Color

var namedColors = map[string]datalist.Color{
	"none":      datalist.ColorNone,
	"white":     datalist.ColorWhite,
	"black":     datalist.ColorBlack,
	"red":       datalist.ColorRed,
	"green":     datalist.ColorGreen,
	"blue":      datalist.ColorBlue,
	"yellow":    datalist.ColorYellow,
	"gray":      datalist.ColorGray,
	"darkgray":  datalist.ColorDarkGray,
	"lightgray": datalist.ColorLightGray,
}

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if named, ok := namedColors[s]; ok {
		*c = Color(named)
		return nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return fmt.Errorf("color %q: want #rrggbb, #rrggbbaa or a name", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		n = n<<8 | 0xFF
	}
	*c = Color(datalist.RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)))
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	r, g, b, a := datalist.Color(c).RGBA()
	if a == 0xFF {
		return fmt.Appendf(nil, "#%02x%02x%02x", r, g, b), nil
	}
	return fmt.Appendf(nil, "#%02x%02x%02x%02x", r, g, b, a), nil
}

// Duration is a time.Duration written as a string ("500ms") or as an
// integer number of milliseconds.
type Duration time.Duration

func (d *Duration) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64:
		*d = Duration(time.Duration(v) * time.Millisecond)
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("duration %q: %w", v, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("duration: unsupported value %v (%T)", data, data)
	}
	return nil
}

// Keys is one key chord or a list of them.
type Keys []string

func (k *Keys) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*k = Keys{v}
	case []any:
		out := make(Keys, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("keys: %v is not a string", item)
			}
			out = append(out, s)
		}
		*k = out
	default:
		return fmt.Errorf("keys: unsupported value %v (%T)", data, data)
	}
	return nil
}
