package model

// QueryRequest identifies a single (k,g)-core lookup against a built index.
type QueryRequest struct {
	K int `json:"k"`
	G int `json:"g"`
}

// QueryResult is the outcome of resolving a QueryRequest: the core's
// member vertices plus timing, produced by the benchmark command's query
// workers and by the scheduler's query processor.
type QueryResult struct {
	K              int      `json:"k"`
	G              int      `json:"g"`
	Vertices       []uint32 `json:"vertices"`
	Size           int      `json:"size"`
	DurationMicros int64    `json:"duration_micros"`
}

// Empty reports whether the query resolved to no vertices — distinct from
// an out-of-range query error, which never happens here since Query always
// returns an empty set for out-of-range (k,g).
func (r *QueryResult) Empty() bool {
	return r.Size == 0
}
