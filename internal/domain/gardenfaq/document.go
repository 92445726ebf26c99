package gardenfaq

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// faqEntry is the alternate "faqs" schema: one question per entry with tags as search terms.
type faqEntry struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
}

// DecodeDatabase parses a FAQ document. Invalid JSON is a load error; valid
// JSON without an "items" (or "faqs") array is a format error.
func DecodeDatabase(data []byte) (*Database, error) {
	if !json.Valid(data) {
		return nil, loadError("faq document is not valid JSON", nil)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, formatError("faq document must be a JSON object", err)
	}

	db := &Database{}
	if raw, ok := top["meta"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &db.Meta); err != nil {
			return nil, formatError("faq document meta must be an object", err)
		}
	}

	if raw, ok := top["items"]; ok {
		if !isArray(raw) {
			return nil, formatError("faq document items must be an array", nil)
		}
		if err := json.Unmarshal(raw, &db.Items); err != nil {
			return nil, formatError("faq document items are malformed", err)
		}
		return db, nil
	}

	if raw, ok := top["faqs"]; ok {
		if !isArray(raw) {
			return nil, formatError("faq document faqs must be an array", nil)
		}
		var entries []faqEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, formatError("faq document faqs are malformed", err)
		}
		db.Items = make([]Record, 0, len(entries))
		for _, entry := range entries {
			db.Items = append(db.Items, entry.toRecord())
		}
		return db, nil
	}

	return nil, formatError("faq document has no items array", errors.New("missing items"))
}

func (e faqEntry) toRecord() Record {
	keys := make([]string, 0, len(e.Tags)+1)
	for _, tag := range e.Tags {
		if strings.TrimSpace(tag) != "" {
			keys = append(keys, tag)
		}
	}
	if len(keys) == 0 && strings.TrimSpace(e.Question) != "" {
		keys = append(keys, e.Question)
	}
	return Record{
		ID:       e.ID,
		Category: e.Category,
		Keys:     keys,
		QA:       []QA{{Q: e.Question, A: e.Answer}},
	}
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
