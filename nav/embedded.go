package nav

// Per-board parameter overrides, embedded at build time. Keys match
// Params.ApplyJSON. An empty entry means the board runs pure defaults.
var embeddedParams = map[string][]byte{
	"nano33": []byte(`{}`),
	// Bench rig reports faster so serial traces line up with the logic
	// analyser captures.
	"picobench": []byte(`{"report_interval_ms": 500}`),
}

// ParamsFor returns the defaults overlaid with the board's embedded
// overrides. Unknown boards run pure defaults.
func ParamsFor(board string) Params {
	p := DefaultParams()
	if raw, ok := embeddedParams[board]; ok {
		_ = p.ApplyJSON(raw)
	}
	return p
}
