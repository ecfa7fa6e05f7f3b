package dash

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row maps column names to values. Row shape may vary per query but is fixed
// within one result set.
type Row map[string]any

// Result status values reported by the Logfire API.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// QueryResult is the tagged union returned by RawQuery. Status is either
// StatusSuccess, in which case Rows and Columns are populated, or
// StatusError, in which case ErrorDetails carries the server's message.
//
// Columns preserves the column order of the response for display fidelity;
// it is recovered from the first row of the wire payload, since Go maps do
// not keep key order.
type QueryResult struct {
	Status       string
	Rows         []Row
	Columns      []string
	ErrorDetails string
}

// wireResult matches the API response body.
type wireResult struct {
	Status       string            `json:"status"`
	Data         []json.RawMessage `json:"clickhouse_data"`
	ErrorDetails string            `json:"error_details"`
}

func (r *QueryResult) UnmarshalJSON(b []byte) error {
	var w wireResult
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	r.Status = w.Status
	r.ErrorDetails = w.ErrorDetails
	r.Rows = make([]Row, 0, len(w.Data))
	for _, raw := range w.Data {
		var row Row
		if err := json.Unmarshal(raw, &row); err != nil {
			return err
		}
		r.Rows = append(r.Rows, row)
	}
	if len(w.Data) > 0 {
		cols, err := columnOrder(w.Data[0])
		if err != nil {
			return err
		}
		r.Columns = cols
	}
	return nil
}

// columnOrder extracts the top-level key order of a JSON object.
func columnOrder(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("row is not a JSON object")
	}
	var cols []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in row object", keyTok)
		}
		cols = append(cols, key)
		// Skip the member value, nested or not.
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return cols, nil
}
