package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func completionServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCoachReplyMissingKey(t *testing.T) {
	for _, key := range []string{"", "sk-YOUR_OPENAI_KEY_HERE"} {
		b := NewBridge("http://unused/v1", key, "gpt-4o-mini")
		reply := b.CoachReply(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
		if !reply.Degraded || reply.Reason != ReasonMissingKey {
			t.Fatalf("key %q: expected missing-key degradation, got %+v", key, reply)
		}
		if !strings.Contains(reply.Text, "API key is missing") {
			t.Fatalf("key %q: unexpected text %q", key, reply.Text)
		}
	}
}

func TestCoachReplySuccess(t *testing.T) {
	srv := completionServer(t, http.StatusOK,
		`{"choices":[{"message":{"role":"assistant","content":"  Focus on one thing at a time.  "}}]}`)
	b := NewBridge(srv.URL+"/v1", "sk-test", "gpt-4o-mini")

	reply := b.CoachReply(context.Background(), []ChatMessage{{Role: "user", Content: "I feel scattered"}})
	if reply.Degraded {
		t.Fatalf("unexpected degradation: %+v", reply)
	}
	if reply.Text != "Focus on one thing at a time." {
		t.Fatalf("expected trimmed model text, got %q", reply.Text)
	}
}

func TestCoachReplyInvalidKey(t *testing.T) {
	srv := completionServer(t, http.StatusUnauthorized,
		`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	b := NewBridge(srv.URL+"/v1", "sk-bad", "gpt-4o-mini")

	reply := b.CoachReply(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	if !reply.Degraded || reply.Reason != ReasonInvalidKey {
		t.Fatalf("expected invalid-key degradation, got %+v", reply)
	}
	if !strings.Contains(reply.Text, "Invalid OpenAI API key") {
		t.Fatalf("unexpected text %q", reply.Text)
	}
}

func TestCoachReplyServerErrorFallsBack(t *testing.T) {
	srv := completionServer(t, http.StatusTooManyRequests, `{"error":{"message":"rate limited"}}`)
	b := NewBridge(srv.URL+"/v1", "sk-test", "gpt-4o-mini")

	reply := b.CoachReply(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	if !reply.Degraded || reply.Reason != ReasonFallback {
		t.Fatalf("expected fallback degradation, got %+v", reply)
	}
	found := false
	for _, canned := range fallbackReplies {
		if reply.Text == canned {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a canned reply, got %q", reply.Text)
	}
}

func TestCoachReplyNetworkErrorFallsBack(t *testing.T) {
	b := NewBridge("http://127.0.0.1:1/v1", "sk-test", "gpt-4o-mini")
	reply := b.CoachReply(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	if !reply.Degraded || reply.Reason != ReasonFallback {
		t.Fatalf("expected fallback on network failure, got %+v", reply)
	}
}

func TestCoachReplyNonJSONBody(t *testing.T) {
	srv := completionServer(t, http.StatusBadGateway, "<html>upstream error</html>")
	b := NewBridge(srv.URL+"/v1", "sk-test", "gpt-4o-mini")

	reply := b.CoachReply(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	if !reply.Degraded || reply.Reason != ReasonBadPayload {
		t.Fatalf("expected bad-payload degradation, got %+v", reply)
	}
	if !strings.Contains(reply.Text, "Status: 502") {
		t.Fatalf("expected status in diagnostic, got %q", reply.Text)
	}
}

func TestCoachReplyEmptyChoices(t *testing.T) {
	srv := completionServer(t, http.StatusOK, `{"choices":[]}`)
	b := NewBridge(srv.URL+"/v1", "sk-test", "gpt-4o-mini")

	reply := b.CoachReply(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	if !reply.Degraded || reply.Reason != ReasonBadPayload {
		t.Fatalf("expected bad-payload degradation, got %+v", reply)
	}
	if !strings.Contains(reply.Text, "unexpected format") {
		t.Fatalf("unexpected text %q", reply.Text)
	}
}

func TestGenerateDayPlanStripsFences(t *testing.T) {
	content := "```json\n[{\"time\":\"09:00 AM - 10:00 AM\",\"activity\":\"Deep work\",\"description\":\"One focused block.\"}]\n```"
	srv := completionServer(t, http.StatusOK,
		`{"choices":[{"message":{"role":"assistant","content":`+mustQuote(content)+`}}]}`)
	b := NewBridge(srv.URL+"/v1", "sk-test", "gpt-4o-mini")

	blocks, err := b.GenerateDayPlan(context.Background(), "ship the release", "2026-08-31")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Activity != "Deep work" {
		t.Fatalf("unexpected plan: %+v", blocks)
	}
}

func TestGenerateWeekPlan(t *testing.T) {
	content := `[{"dayOffset":0,"blocks":[{"time":"09:00 AM - 10:00 AM","activity":"Kickoff","description":"Set the week's priorities."}]},{"dayOffset":1,"blocks":[]}]`
	srv := completionServer(t, http.StatusOK,
		`{"choices":[{"message":{"role":"assistant","content":`+mustQuote(content)+`}}]}`)
	b := NewBridge(srv.URL+"/v1", "sk-test", "gpt-4o-mini")

	days, err := b.GenerateWeekPlan(context.Background(), "train for a marathon", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(days) != 2 || days[0].DayOffset != 0 || days[1].DayOffset != 1 {
		t.Fatalf("unexpected plan: %+v", days)
	}
}

func TestGenerateDayPlanErrors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		b := NewBridge("http://unused/v1", "", "gpt-4o-mini")
		if _, err := b.GenerateDayPlan(context.Background(), "goal", ""); err == nil {
			t.Fatalf("expected error without api key")
		}
	})
	t.Run("api error", func(t *testing.T) {
		srv := completionServer(t, http.StatusInternalServerError, `{"error":{"message":"boom"}}`)
		b := NewBridge(srv.URL+"/v1", "sk-test", "gpt-4o-mini")
		if _, err := b.GenerateDayPlan(context.Background(), "goal", ""); err == nil {
			t.Fatalf("expected error on api failure")
		}
	})
	t.Run("unparseable content", func(t *testing.T) {
		srv := completionServer(t, http.StatusOK,
			`{"choices":[{"message":{"role":"assistant","content":"sorry, I cannot do that"}}]}`)
		b := NewBridge(srv.URL+"/v1", "sk-test", "gpt-4o-mini")
		if _, err := b.GenerateDayPlan(context.Background(), "goal", ""); err == nil {
			t.Fatalf("expected error on non-JSON model output")
		}
	})
}

func mustQuote(s string) string {
	out := strings.ReplaceAll(s, `\`, `\\`)
	out = strings.ReplaceAll(out, `"`, `\"`)
	out = strings.ReplaceAll(out, "\n", `\n`)
	return `"` + out + `"`
}
