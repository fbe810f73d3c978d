package devtools

type EndpointStats struct {
	Count         int     `json:"count"`
	Errors        int     `json:"errors"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
	TotalCost     float64 `json:"total_cost"`
}

type ModelStats struct {
	Count  int     `json:"count"`
	Tokens int64   `json:"tokens"`
	Cost   float64 `json:"cost"`
}

// Stats aggregates a set of entries for the viewer dashboard.
type Stats struct {
	TotalRequests   int                            `json:"total_requests"`
	TotalErrors     int                            `json:"total_errors"`
	TotalCost       float64                        `json:"total_cost"`
	TotalTokens     int64                          `json:"total_tokens"`
	TotalDurationMs int64                          `json:"total_duration_ms"`
	ByEndpoint      map[EndpointType]EndpointStats `json:"by_endpoint"`
	ByModel         map[string]ModelStats          `json:"by_model"`
}

// Summarize computes Stats over entries. Entries without a model are counted
// in the totals and per endpoint but not per model.
func Summarize(entries []Entry) Stats {
	s := Stats{
		ByEndpoint: make(map[EndpointType]EndpointStats),
		ByModel:    make(map[string]ModelStats),
	}
	durations := make(map[EndpointType]int64)

	for _, e := range entries {
		s.TotalRequests++
		s.TotalCost += e.Cost()
		s.TotalTokens += e.Tokens()
		s.TotalDurationMs += e.DurationMs

		es := s.ByEndpoint[e.Type]
		es.Count++
		es.TotalCost += e.Cost()
		if e.HasError() {
			s.TotalErrors++
			es.Errors++
		}
		s.ByEndpoint[e.Type] = es
		durations[e.Type] += e.DurationMs

		if e.Metadata.Model == "" {
			continue
		}
		ms := s.ByModel[e.Metadata.Model]
		ms.Count++
		ms.Tokens += e.Tokens()
		ms.Cost += e.Cost()
		s.ByModel[e.Metadata.Model] = ms
	}

	for typ, es := range s.ByEndpoint {
		es.AvgDurationMs = float64(durations[typ]) / float64(es.Count)
		s.ByEndpoint[typ] = es
	}
	return s
}
