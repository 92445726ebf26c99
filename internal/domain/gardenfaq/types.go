package gardenfaq

// QA is one question/answer pair attached to a record.
type QA struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// Record is one FAQ entry. Keys[0] is the canonical display label.
type Record struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Keys     []string `json:"keys"`
	QA       []QA     `json:"qa"`
}

// Label returns the canonical label of the record, falling back to its ID.
func (r Record) Label() string {
	for _, key := range r.Keys {
		if key != "" {
			return key
		}
	}
	return r.ID
}

// Database is the loaded FAQ document. It is read-only once loaded.
type Database struct {
	Items []Record       `json:"items"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// Match is a scored search hit.
type Match struct {
	Record Record `json:"record"`
	Score  int    `json:"score"`
}

// Request encapsulates a lookup issued by a presentation layer.
type Request struct {
	Query    string `json:"query" form:"q"`
	Category string `json:"category" form:"category"`
}

// Answer is the best answer shown for the top match.
type Answer struct {
	RecordID string `json:"recordId"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// Candidate is one ranked entry in the candidate list.
type Candidate struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// Response is returned to the HTTP transport and the CLI.
type Response struct {
	Query      string      `json:"query"`
	Category   string      `json:"category"`
	Best       *Answer     `json:"best,omitempty"`
	Candidates []Candidate `json:"candidates"`
}
