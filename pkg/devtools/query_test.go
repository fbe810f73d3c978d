package devtools

import "testing"

func sampleEntries() []Entry {
	return []Entry{
		{ID: "a", Type: TypeChatCompletions, Timestamp: 100, DurationMs: 200, Metadata: Metadata{Model: "gpt-4o", Usage: &UsageInfo{TotalTokens: 30}, Cost: &CostInfo{TotalCost: 0.01}}},
		{ID: "b", Type: TypeChatCompletions, Timestamp: 300, DurationMs: 400, Error: &ErrorInfo{Message: "boom", Status: 500}, Metadata: Metadata{Model: "gpt-4o"}},
		{ID: "c", Type: TypeEmbeddings, Timestamp: 200, DurationMs: 50, Metadata: Metadata{Model: "text-embedding-3-small", Usage: &UsageInfo{TotalTokens: 8}}},
		{ID: "d", Type: TypeModelsList, Timestamp: 400, DurationMs: 10},
	}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestApplyOrdersMostRecentFirst(t *testing.T) {
	page := Apply(sampleEntries(), Filter{})
	got := ids(page.Generations)
	want := []string{"d", "b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if page.Total != 4 || page.Limit != DefaultLimit || page.Offset != 0 {
		t.Fatalf("page meta = %+v", page)
	}
}

func TestApplyFilters(t *testing.T) {
	entries := sampleEntries()
	if p := Apply(entries, Filter{Type: TypeChatCompletions}); p.Total != 2 {
		t.Fatalf("type filter total = %d", p.Total)
	}
	if p := Apply(entries, Filter{Model: "gpt-4o", HasError: ParseHasError("true")}); p.Total != 1 || p.Generations[0].ID != "b" {
		t.Fatalf("error filter = %v", ids(p.Generations))
	}
	if p := Apply(entries, Filter{HasError: ParseHasError("false")}); p.Total != 3 {
		t.Fatalf("no-error filter total = %d", p.Total)
	}
	if ParseHasError("maybe") != nil {
		t.Fatalf("invalid hasError should disable the filter")
	}
}

func TestApplyPaging(t *testing.T) {
	entries := sampleEntries()
	p := Apply(entries, Filter{Offset: 1, Limit: 2})
	if got := ids(p.Generations); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("page = %v", got)
	}
	if p.Total != 4 {
		t.Fatalf("total = %d", p.Total)
	}
	if p := Apply(entries, Filter{Offset: 10}); len(p.Generations) != 0 || p.Generations == nil {
		t.Fatalf("offset past end = %v", p.Generations)
	}
	if entries[0].ID != "a" {
		t.Fatalf("Apply reordered its input")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleEntries())
	if s.TotalRequests != 4 || s.TotalErrors != 1 {
		t.Fatalf("totals = %+v", s)
	}
	if s.TotalTokens != 38 || s.TotalDurationMs != 660 || s.TotalCost != 0.01 {
		t.Fatalf("sums = %d %d %v", s.TotalTokens, s.TotalDurationMs, s.TotalCost)
	}
	chat := s.ByEndpoint[TypeChatCompletions]
	if chat.Count != 2 || chat.Errors != 1 || chat.AvgDurationMs != 300 {
		t.Fatalf("chat stats = %+v", chat)
	}
	if _, ok := s.ByModel[""]; ok {
		t.Fatalf("entries without model counted per model")
	}
	if m := s.ByModel["gpt-4o"]; m.Count != 2 || m.Tokens != 30 {
		t.Fatalf("model stats = %+v", m)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalRequests != 0 || s.ByEndpoint == nil || s.ByModel == nil {
		t.Fatalf("empty stats = %+v", s)
	}
}
