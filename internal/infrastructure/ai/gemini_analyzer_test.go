package ai

import (
	"testing"

	"google.golang.org/genai"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"concerns":[]}`, `{"concerns":[]}`},
		{"json fence", "```json\n{\"concerns\":[\"risco elétrico\"]}\n```", `{"concerns":["risco elétrico"]}`},
		{"bare fence", "```\n{\"concerns\":[]}\n```", `{"concerns":[]}`},
		{"leading prose", "Aqui está o resultado: {\"concerns\":[]}", `{"concerns":[]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResponseText(t *testing.T) {
	t.Run("empty response", func(t *testing.T) {
		if got := responseText(nil); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
		if got := responseText(&genai.GenerateContentResponse{}); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})

	t.Run("concatenates text parts only", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "```json\n{\"concerns\":"},
						{Text: "[\"risco elétrico\"]}\n```"},
					},
				},
			}},
		}
		got := extractJSON(responseText(resp))
		if got != `{"concerns":["risco elétrico"]}` {
			t.Fatalf("unexpected payload: %q", got)
		}
	})
}
