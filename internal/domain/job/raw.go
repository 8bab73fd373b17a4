package job

import (
	"strings"

	"github.com/tidwall/gjson"
)

// RawJob is an unvalidated upstream record. Any JSON value is accepted; shapes
// that are not objects normalise to an all-default Job.
type RawJob struct {
	res gjson.Result
}

// ParseRawJob wraps a single JSON record
func ParseRawJob(data []byte) RawJob {
	return RawJob{res: gjson.ParseBytes(data)}
}

// ParseRawJobString is ParseRawJob for string payloads
func ParseRawJobString(data string) RawJob {
	return RawJob{res: gjson.Parse(data)}
}

// JSON returns the record exactly as received
func (r RawJob) JSON() string {
	return r.res.Raw
}

// lookup returns the first present, non-null value among keys
func (r RawJob) lookup(keys ...string) gjson.Result {
	if !r.res.IsObject() {
		return gjson.Result{}
	}
	for _, k := range keys {
		v := r.res.Get(k)
		if v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

// text reads a scalar as display text. Numbers keep their literal form;
// booleans, arrays and objects yield "".
func text(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return strings.TrimSpace(v.Str)
	case gjson.Number:
		return v.Raw
	default:
		return ""
	}
}

// named reads either a plain string or an object carrying a display name
func named(v gjson.Result) string {
	if v.IsObject() {
		for _, k := range []string{"display_name", "name", "displayName"} {
			if s := text(v.Get(k)); s != "" {
				return s
			}
		}
		return ""
	}
	return text(v)
}
