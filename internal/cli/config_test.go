package cli

import (
	"os"
	"path/filepath"
	"testing"

	snaperrors "github.com/matzehuels/snapdock/pkg/errors"
	"github.com/matzehuels/snapdock/pkg/geom"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Tolerance != geom.DefaultTolerance {
		t.Errorf("Tolerance = %v, want default %v", cfg.Tolerance, geom.DefaultTolerance)
	}
	if len(cfg.Blocks) != 0 {
		t.Errorf("Blocks = %v, want none", cfg.Blocks)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
tolerance = 12.5

[[block]]
id = "alpha"
x = 10.0
y = 20.0
width = 200.0
height = 50.0
color = "steelblue"
next = "beta"

[[block]]
id = "beta"
x = 10.0
y = 70.0
width = 200.0
height = 50.0
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Tolerance != 12.5 {
		t.Errorf("Tolerance = %v, want 12.5", cfg.Tolerance)
	}
	if len(cfg.Blocks) != 2 {
		t.Fatalf("Blocks = %d, want 2", len(cfg.Blocks))
	}
	if cfg.Blocks[0].ID != "alpha" || cfg.Blocks[0].Next != "beta" {
		t.Errorf("first block = %+v", cfg.Blocks[0])
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "tolerance = [not valid")
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := snaperrors.GetCode(err); got != snaperrors.ErrCodeInvalidConfig {
		t.Errorf("code = %v, want %v", got, snaperrors.ErrCodeInvalidConfig)
	}
}

func TestLoadConfigNegativeTolerance(t *testing.T) {
	path := writeConfig(t, "tolerance = -3.0")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for negative tolerance")
	}
}

func TestConfigNewBoardSeeded(t *testing.T) {
	cfg := DefaultConfig()
	b, err := cfg.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if b.Len() != 5 {
		t.Errorf("seed board Len = %d, want 5", b.Len())
	}
	if b.Tolerance() != geom.DefaultTolerance {
		t.Errorf("Tolerance = %v, want %v", b.Tolerance(), geom.DefaultTolerance)
	}
}

func TestConfigNewBoardFromBlocks(t *testing.T) {
	cfg := Config{
		Tolerance: 20,
		Blocks: []BlockConfig{
			// Forward reference: the link target appears later.
			{ID: "alpha", X: 0, Y: 0, Width: 200, Height: 50, Next: "beta"},
			{ID: "beta", X: 0, Y: 50, Width: 200, Height: 50},
		},
	}
	b, err := cfg.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	blk, ok := b.Block("alpha")
	if !ok {
		t.Fatal("alpha not found")
	}
	if blk.NextID != "beta" {
		t.Errorf("alpha.NextID = %q, want beta", blk.NextID)
	}
}

func TestConfigNewBoardInvalidBlock(t *testing.T) {
	cfg := Config{
		Tolerance: 20,
		Blocks: []BlockConfig{
			{ID: "bad", Width: 0, Height: 50},
		},
	}
	_, err := cfg.NewBoard()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := snaperrors.GetCode(err); got != snaperrors.ErrCodeInvalidBlock {
		t.Errorf("code = %v, want %v", got, snaperrors.ErrCodeInvalidBlock)
	}
}
