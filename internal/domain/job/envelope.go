package job

import (
	"errors"

	"github.com/tidwall/gjson"
)

// envelopeKeys are the object keys probed, in order, for the job array
var envelopeKeys = []string{"jobs", "data"}

// UnwrapEnvelope extracts the job records from a listing response. Accepted
// shapes are a bare array, {"jobs": [...]} and {"data": [...]}; anything else
// is a MalformedResponse.
func UnwrapEnvelope(body []byte) ([]RawJob, error) {
	if !gjson.ValidBytes(body) {
		return nil, NewMalformedResponse(errors.New("response is not valid JSON"))
	}

	root := gjson.ParseBytes(body)
	if root.IsArray() {
		return rawJobs(root), nil
	}

	if root.IsObject() {
		for _, key := range envelopeKeys {
			if v := root.Get(key); v.IsArray() {
				return rawJobs(v), nil
			}
		}
	}

	return nil, NewMalformedResponse(errors.New("no job array in response"))
}

func rawJobs(arr gjson.Result) []RawJob {
	items := arr.Array()
	out := make([]RawJob, 0, len(items))
	for _, item := range items {
		out = append(out, RawJob{res: item})
	}
	return out
}
