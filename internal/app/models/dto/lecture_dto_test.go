package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ekaraca/blackboard/internal/app/models"
)

func TestLectureResponseUsesEpochMillis(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 30, 0, 500_000_000, time.UTC)
	lecture := &models.Lecture{
		LectureID:   "lec-1",
		CourseID:    "cs101",
		ProfessorID: "turing",
		Content:     "halting problem",
		CreatedAt:   created,
	}

	resp := NewLectureResponse(lecture)
	if resp.CreatedAt != created.UnixMilli() {
		t.Fatalf("CreatedAt = %d, want %d", resp.CreatedAt, created.UnixMilli())
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := decoded["created_at"].(float64); !ok {
		t.Fatalf("created_at must serialize as a number, got %T", decoded["created_at"])
	}
}

func TestNewLectureResponsesPreservesOrder(t *testing.T) {
	base := time.Now()
	lectures := []*models.Lecture{
		{LectureID: "l3", CreatedAt: base.Add(3 * time.Second)},
		{LectureID: "l2", CreatedAt: base.Add(2 * time.Second)},
		{LectureID: "l1", CreatedAt: base.Add(1 * time.Second)},
	}

	out := NewLectureResponses(lectures)
	if len(out) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(out))
	}
	for i, want := range []string{"l3", "l2", "l1"} {
		if out[i].LectureID != want {
			t.Fatalf("position %d = %q, want %q", i, out[i].LectureID, want)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	success, err := json.Marshal(NewSuccessResponse("alice"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(success) != `{"error":null,"payload":"alice"}` {
		t.Fatalf("unexpected success envelope: %s", success)
	}

	failure, err := json.Marshal(NewErrorResponse(ErrorCodeResourceAlreadyExists, "course already exists", "cs101"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"error":{"code":"RES_002","message":"course already exists","note":"cs101"},"payload":null}`
	if string(failure) != want {
		t.Fatalf("unexpected error envelope: %s", failure)
	}
}
