package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/hint"
	"svw.info/crossword/internal/infrastructure/storage"
	"svw.info/crossword/internal/solver"
	"svw.info/crossword/internal/usecase"
	"svw.info/crossword/internal/validator"
)

var (
	sampleGrid  = []string{"#####", "#..##", "#..##", "##..#", "#####"}
	sampleWords = []string{"AT", "NO", "ON", "AN", "TOO"}
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := usecase.NewService(solver.NewRecursiveSolver(), validator.New(), hint.NewForced(), storage.NewFS(t.TempDir()))
	e := gin.New()
	New(uc).Register(e)
	return e
}

func postJSON(t *testing.T, e *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	e := newTestRouter(t)
	w := postJSON(t, e, "/api/v1/solve", solveReq{Grid: sampleGrid, Words: sampleWords})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp solveResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected a solution: %+v", resp)
	}
	if resp.Grid[1] != "#AT##" {
		t.Fatalf("row 1 = %q", resp.Grid[1])
	}
	if len(resp.Slots) != 5 || resp.Nodes == 0 {
		t.Fatalf("slots=%d nodes=%d", len(resp.Slots), resp.Nodes)
	}
}

func TestSolveEndpointRejectsBadGrid(t *testing.T) {
	e := newTestRouter(t)
	w := postJSON(t, e, "/api/v1/solve", solveReq{Grid: []string{"##", "###"}, Words: []string{"AT"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body.String())
	}
}

func TestUniqueEndpoint(t *testing.T) {
	e := newTestRouter(t)
	w := postJSON(t, e, "/api/v1/unique", uniqueReq{Grid: []string{"..", "##"}, Words: []string{"AT", "NO"}})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Unique bool `json:"unique"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Unique {
		t.Fatalf("two fitting words should not be unique")
	}
}

func TestParseEndpointNumbersCells(t *testing.T) {
	e := newTestRouter(t)
	w := postJSON(t, e, "/api/v1/parse", parseReq{Grid: sampleGrid})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Slots   []domain.Slot `json:"slots"`
		Numbers []clueNumber  `json:"numbers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Slots) != 5 {
		t.Fatalf("slots = %d, want 5", len(resp.Slots))
	}
	if len(resp.Numbers) != 4 {
		t.Fatalf("numbers = %+v, want 4 entries", resp.Numbers)
	}
	first := resp.Numbers[0]
	if first.Num != 1 || first.Row != 1 || first.Col != 1 {
		t.Fatalf("first number = %+v", first)
	}
	if len(first.Slots) != 2 {
		t.Fatalf("cell (1,1) starts an across and a down slot: %+v", first)
	}
}

func TestValidateEndpoint(t *testing.T) {
	e := newTestRouter(t)
	w := postJSON(t, e, "/api/v1/validate", validateReq{
		Grid:  []string{"#####", "#AT##", "#NO##", "##ON#", "#####"},
		Words: sampleWords,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		OK bool `json:"ok"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.OK {
		t.Fatalf("solved grid should validate: %s", w.Body.String())
	}
}

func TestHintEndpoint(t *testing.T) {
	e := newTestRouter(t)
	w := postJSON(t, e, "/api/v1/hint", hintReq{
		Grid:  []string{"#####", "#.T##", "#.O##", "##O.#", "#####"},
		Words: sampleWords,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Found bool        `json:"found"`
		Hint  domain.Hint `json:"hint"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Found || resp.Hint.Word != "AT" {
		t.Fatalf("hint = %+v", resp)
	}
}

func TestPuzzleLifecycle(t *testing.T) {
	e := newTestRouter(t)
	w := postJSON(t, e, "/api/v1/puzzles", domain.Puzzle{Grid: sampleGrid, Words: sampleWords, Name: "demo"})
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d, body = %s", w.Code, w.Body.String())
	}
	var saved struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("save should mint an ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/puzzles/"+saved.ID, nil)
	w2 := httptest.NewRecorder()
	e.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("load status = %d, body = %s", w2.Code, w2.Body.String())
	}
	var loaded struct {
		Puzzle domain.Puzzle `json:"puzzle"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &loaded); err != nil {
		t.Fatalf("decode load response: %v", err)
	}
	if loaded.Puzzle.Name != "demo" || len(loaded.Puzzle.Grid) != 5 {
		t.Fatalf("loaded = %+v", loaded.Puzzle)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/puzzles", nil)
	w3 := httptest.NewRecorder()
	e.ServeHTTP(w3, req)
	var list struct {
		Puzzles []domain.PuzzleMeta `json:"puzzles"`
	}
	if err := json.Unmarshal(w3.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(list.Puzzles) != 1 || list.Puzzles[0].ID != saved.ID {
		t.Fatalf("list = %+v", list.Puzzles)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/puzzles/missing", nil)
	w4 := httptest.NewRecorder()
	e.ServeHTTP(w4, req)
	if w4.Code != http.StatusNotFound {
		t.Fatalf("missing puzzle status = %d", w4.Code)
	}
}

func TestSolveStream(t *testing.T) {
	e := newTestRouter(t)
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := strings.Replace(srv.URL, "http", "ws", 1) + "/api/v1/solve/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(solveReq{Grid: sampleGrid, Words: sampleWords, ProgressEvery: 1}); err != nil {
		t.Fatalf("send request: %v", err)
	}
	for i := 0; i < 100; i++ {
		var ev streamEvent
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("read frame: %v", err)
		}
		switch ev.Type {
		case "progress":
			if ev.Progress == nil || ev.Progress.Slots != 5 {
				t.Fatalf("bad progress frame: %+v", ev)
			}
		case "result":
			if ev.Result == nil || !ev.Result.Success {
				t.Fatalf("bad result frame: %+v", ev)
			}
			if ev.Result.Grid[1] != "#AT##" {
				t.Fatalf("result row 1 = %q", ev.Result.Grid[1])
			}
			return
		case "error":
			t.Fatalf("stream error: %s", ev.Error)
		default:
			t.Fatalf("unknown frame type %q", ev.Type)
		}
	}
	t.Fatalf("no result frame after 100 messages")
}
