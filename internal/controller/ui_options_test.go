package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithEstimateMode()(cfg)
	if cfg.mode != ModeEstimate {
		t.Fatalf("WithEstimateMode() mode = %v, want %v", cfg.mode, ModeEstimate)
	}

	WithRestoreMode()(cfg)
	if cfg.mode != ModeRestore {
		t.Fatalf("WithRestoreMode() mode = %v, want %v", cfg.mode, ModeRestore)
	}

	WithApplyMode()(cfg)
	if cfg.mode != ModeApply {
		t.Fatalf("WithApplyMode() mode = %v, want %v", cfg.mode, ModeApply)
	}
}
