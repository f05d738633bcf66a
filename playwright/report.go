package playwright

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/hashicorp/go-version"
)

// Attempt statuses the aggregation cares about. Playwright reports others too
// (timedOut, interrupted); those are kept as-is.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Report is the root of the Playwright JSON reporter output.
type Report struct {
	Config Config      `json:"config"`
	Suites List[Suite] `json:"suites"`
}

// Config ...
type Config struct {
	Version Text `json:"version"`
}

// Suite is a grouping node, it may nest further suites and specs.
type Suite struct {
	Title  Text        `json:"title"`
	File   Text        `json:"file"`
	Suites List[Suite] `json:"suites"`
	Specs  List[Spec]  `json:"specs"`
}

// Spec groups the tests declared in a single source file.
type Spec struct {
	Title Text       `json:"title"`
	File  Text       `json:"file"`
	Tests List[Test] `json:"tests"`
}

// Test is one test case, with one Result per attempt (retries included).
type Test struct {
	Title       Text         `json:"title"`
	ProjectName Text         `json:"projectName"`
	Project     Text         `json:"project"`
	Results     List[Result] `json:"results"`
}

// Result is a single attempt of a Test.
type Result struct {
	Status   Text   `json:"status"`
	Duration Number `json:"duration"`
	Error    *Error `json:"error"`
}

// Error ...
type Error struct {
	Message Text `json:"message"`
	Snippet Text `json:"snippet"`
	Value   Text `json:"value"`
}

// UnmarshalJSON ...
func (c *Config) UnmarshalJSON(data []byte) error {
	type config Config
	var v config
	decodeObject(data, &v)
	*c = Config(v)
	return nil
}

// UnmarshalJSON ...
func (e *Error) UnmarshalJSON(data []byte) error {
	type errorDetail Error
	var v errorDetail
	decodeObject(data, &v)
	*e = Error(v)
	return nil
}

// UnmarshalJSON ...
func (s *Suite) UnmarshalJSON(data []byte) error {
	type suite Suite
	var v suite
	decodeObject(data, &v)
	*s = Suite(v)
	return nil
}

// UnmarshalJSON ...
func (s *Spec) UnmarshalJSON(data []byte) error {
	type spec Spec
	var v spec
	decodeObject(data, &v)
	*s = Spec(v)
	return nil
}

// UnmarshalJSON ...
func (t *Test) UnmarshalJSON(data []byte) error {
	type test Test
	var v test
	decodeObject(data, &v)
	*t = Test(v)
	return nil
}

// UnmarshalJSON ...
func (r *Result) UnmarshalJSON(data []byte) error {
	type result Result
	var v result
	decodeObject(data, &v)
	*r = Result(v)
	return nil
}

// decodeObject fills v from a JSON object. Any other JSON value, or an object
// that does not fit v, leaves v zeroed.
func decodeObject(data []byte, v any) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return
	}
	_ = json.Unmarshal(data, v)
}

// PlaywrightVersion returns the version of the Playwright runner which produced the report.
func (r Report) PlaywrightVersion() (*version.Version, error) {
	if r.Config.Version == "" {
		return nil, errors.New("report does not contain the Playwright version")
	}
	return version.NewVersion(string(r.Config.Version))
}

// List decodes a JSON array, any other JSON value decodes to an empty list.
// Elements are decoded one by one, an element that does not decode keeps its zero value.
type List[T any] []T

// UnmarshalJSON ...
func (l *List[T]) UnmarshalJSON(data []byte) error {
	*l = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	items := make([]T, 0, len(raw))
	for _, element := range raw {
		var item T
		if err := json.Unmarshal(element, &item); err != nil {
			var zero T
			item = zero
		}
		items = append(items, item)
	}
	*l = items
	return nil
}

// Text decodes a JSON string, any other JSON value decodes to an empty string.
type Text string

// UnmarshalJSON ...
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Text(s)
	return nil
}

// Number is an optional JSON number.
type Number struct {
	Value float64
	Valid bool
}

// UnmarshalJSON ...
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*n = Number{Value: v, Valid: true}
	return nil
}
