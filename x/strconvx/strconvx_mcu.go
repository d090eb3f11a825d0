//go:build tinygo

package strconvx

// Minimal, allocation-aware replacements with identical signatures.
// Parse* accept base 10 (or 0, treated as 10). FormatFloat supports the
// 'f' verb; prec < 0 prints up to six decimals and trims trailing zeros.
// Not IEEE-shortest; good enough for wire lines and telemetry.

import "errors"

var errSyntax = errors.New("strconvx: invalid syntax")

func Itoa(i int) string { return FormatInt(int64(i), 10) }

func Atoi(s string) (int, error) {
	v, err := ParseInt(s, 10, 0)
	return int(v), err
}

func FormatInt(i int64, base int) string {
	if i < 0 {
		return "-" + formatUint(uint64(-i), base)
	}
	return formatUint(uint64(i), base)
}

func FormatUint(u uint64, base int) string { return formatUint(u, base) }

func formatUint(u uint64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	if u == 0 {
		return "0"
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for u > 0 {
		i--
		buf[i] = digits[u%b]
		u /= b
	}
	return string(buf[i:])
}

func ParseUint(s string, base, bitSize int) (uint64, error) {
	if base == 0 {
		base = 10
	}
	if base != 10 || s == "" {
		return 0, errSyntax
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errSyntax
		}
		v = v*10 + uint64(c-'0')
	}
	if bitSize > 0 && bitSize < 64 && v >= uint64(1)<<uint(bitSize) {
		return 0, errSyntax
	}
	return v, nil
}

func ParseInt(s string, base, bitSize int) (int64, error) {
	if s == "" {
		return 0, errSyntax
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	u, err := ParseUint(s, base, 0)
	if err != nil {
		return 0, err
	}
	if neg {
		return -int64(u), nil
	}
	return int64(u), nil
}

func FormatFloat(f float64, fmt byte, prec, bitSize int) string {
	_ = fmt // 'f' only
	trim := false
	if prec < 0 {
		prec = 6
		trim = true
	}
	neg := f < 0
	if neg {
		f = -f
	}
	// Round at the requested precision.
	scale := 1.0
	for i := 0; i < prec; i++ {
		scale *= 10
	}
	n := uint64(f*scale + 0.5)
	ip := n
	var fp uint64
	if prec > 0 {
		ip = n / uint64(scale)
		fp = n % uint64(scale)
	}
	out := formatUint(ip, 10)
	if prec > 0 {
		frac := formatUint(fp, 10)
		for len(frac) < prec {
			frac = "0" + frac
		}
		if trim {
			end := len(frac)
			for end > 0 && frac[end-1] == '0' {
				end--
			}
			frac = frac[:end]
		}
		if frac != "" {
			out += "." + frac
		}
	}
	if neg && out != "0" {
		out = "-" + out
	}
	return out
}

func ParseFloat(s string, bitSize int) (float64, error) {
	if s == "" {
		return 0, errSyntax
	}
	neg := false
	i := 0
	switch s[0] {
	case '-':
		neg = true
		i = 1
	case '+':
		i = 1
	}
	var v float64
	seen := false
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + float64(s[i]-'0')
		seen = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		div := 1.0
		for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
			div *= 10
			v += float64(s[i]-'0') / div
			seen = true
		}
	}
	if !seen || i != len(s) {
		return 0, errSyntax
	}
	if neg {
		v = -v
	}
	return v, nil
}
