package command

import (
	"strings"

	"navcode-go/errcode"
	"navcode-go/types"
	"navcode-go/x/mathx"
	"navcode-go/x/strconvx"
)

// parseRGB expects exactly three comma-separated integers. Each value is
// clamped to [0,255] after parsing; anything that is not three integers is
// a BAD_RGB.
func parseRGB(rest string) ([3]uint8, error) {
	fields := strings.Split(rest, ",")
	if len(fields) != 3 {
		return [3]uint8{}, errcode.BadRGB
	}
	var out [3]uint8
	for i, f := range fields {
		v, err := strconvx.Atoi(strings.TrimSpace(f))
		if err != nil {
			return [3]uint8{}, errcode.BadRGB
		}
		out[i] = uint8(mathx.Clamp(v, 0, 255))
	}
	return out, nil
}

// parseGoto splits on the first and last comma. The comma positions are
// validated strictly before any numeric conversion: the first comma must
// come after at least one coordinate character, the last strictly after
// the first. The numeric parse itself is permissive: a field that does not
// parse reads as zero.
func parseGoto(rest string) (types.Vec3, error) {
	first := strings.IndexByte(rest, ',')
	last := strings.LastIndexByte(rest, ',')
	if first <= 0 || last <= first {
		return types.Vec3{}, errcode.BadGoto
	}
	return types.Vec3{
		X: parseCoord(rest[:first]),
		Y: parseCoord(rest[first+1 : last]),
		Z: parseCoord(rest[last+1:]),
	}, nil
}

func parseCoord(s string) float32 {
	v, err := strconvx.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0
	}
	return float32(v)
}

func formatRGB(rgb [3]uint8) string {
	return strconvx.Itoa(int(rgb[0])) + "," +
		strconvx.Itoa(int(rgb[1])) + "," +
		strconvx.Itoa(int(rgb[2]))
}

func formatVec3(v types.Vec3) string {
	return formatCoord(v.X) + "," + formatCoord(v.Y) + "," + formatCoord(v.Z)
}

func formatCoord(f float32) string {
	return strconvx.FormatFloat(float64(f), 'f', -1, 32)
}
