package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/snapdock/pkg/board"
	"github.com/matzehuels/snapdock/pkg/boardfile"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	b := board.New(20)
	for _, blk := range []board.Block{
		{ID: "head", X: 0, Y: 0, W: 200, H: 50, Color: "steelblue"},
		{ID: "tail", X: 0, Y: 50, W: 200, H: 50},
	} {
		if _, err := b.AddBlock(blk); err != nil {
			t.Fatalf("AddBlock: %v", err)
		}
	}
	b.Connect("head", "tail")

	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := httptest.NewServer(newRouter(board.NewController(b), logger))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)

	var body map[string]string
	if status := getJSON(t, srv.URL+"/healthz", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestGetBoard(t *testing.T) {
	srv := testServer(t)

	var doc boardfile.Document
	if status := getJSON(t, srv.URL+"/api/board", &doc); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("Blocks = %d, want 2", len(doc.Blocks))
	}
	if doc.Blocks[0].ID != "head" || doc.Blocks[0].Next != "tail" {
		t.Errorf("first block = %+v", doc.Blocks[0])
	}
	if doc.Tolerance != 20 {
		t.Errorf("Tolerance = %v, want 20", doc.Tolerance)
	}
}

func TestGetBlock(t *testing.T) {
	srv := testServer(t)

	var rec boardfile.BlockRecord
	if status := getJSON(t, srv.URL+"/api/blocks/head", &rec); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if rec.ID != "head" || rec.Width != 200 || rec.Next != "tail" {
		t.Errorf("block = %+v", rec)
	}
}

func TestGetBlockNotFound(t *testing.T) {
	srv := testServer(t)

	var body map[string]string
	if status := getJSON(t, srv.URL+"/api/blocks/ghost", &body); status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if body["code"] != "BLOCK_NOT_FOUND" {
		t.Errorf("code = %q, want BLOCK_NOT_FOUND", body["code"])
	}
}

func TestGetCollisions(t *testing.T) {
	srv := testServer(t)

	var body struct {
		Collisions []struct {
			BlockID string `json:"block_id"`
			OtherID string `json:"other_id"`
			Side    string `json:"side"`
		} `json:"collisions"`
	}
	if status := getJSON(t, srv.URL+"/api/collisions", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	// head and tail are flush, so both directions report.
	if len(body.Collisions) != 2 {
		t.Fatalf("collisions = %+v, want 2", body.Collisions)
	}
	if body.Collisions[0].Side != "top" {
		t.Errorf("side = %q, want top", body.Collisions[0].Side)
	}
}

func TestGetSession(t *testing.T) {
	srv := testServer(t)

	var body map[string]any
	if status := getJSON(t, srv.URL+"/api/session", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["session"] != nil {
		t.Errorf("session = %v, want null", body["session"])
	}
}
