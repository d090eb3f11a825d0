package nav

import "testing"

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.SpeedMPS != 1.0 || p.ReportIntervalMs != 1000 || p.GyroDeadbandRad != 0.05 ||
		p.TargetThresholdM != 1.0 || p.LEDOnDurationMs != 10000 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestApplyJSON_PartialOverlay(t *testing.T) {
	p := DefaultParams()
	err := p.ApplyJSON([]byte(`{"speed_mps": 2.5, "led_on_duration_ms": 250}`))
	if err != nil {
		t.Fatalf("ApplyJSON: %v", err)
	}
	if p.SpeedMPS != 2.5 || p.LEDOnDurationMs != 250 {
		t.Fatalf("overrides not applied: %+v", p)
	}
	// Absent keys keep their defaults.
	if p.ReportIntervalMs != 1000 || p.GyroDeadbandRad != 0.05 {
		t.Fatalf("defaults clobbered: %+v", p)
	}
}

func TestApplyJSON_RejectsNonObject(t *testing.T) {
	p := DefaultParams()
	if err := p.ApplyJSON([]byte(`[1,2,3]`)); err == nil {
		t.Fatal("expected error for non-object params")
	}
}

func TestParamsFor(t *testing.T) {
	if got := ParamsFor("nano33"); got != DefaultParams() {
		t.Fatalf("nano33 should run defaults, got %+v", got)
	}
	if got := ParamsFor("picobench"); got.ReportIntervalMs != 500 {
		t.Fatalf("picobench override missing: %+v", got)
	}
	if got := ParamsFor("unknown-board"); got != DefaultParams() {
		t.Fatalf("unknown board should run defaults, got %+v", got)
	}
}
