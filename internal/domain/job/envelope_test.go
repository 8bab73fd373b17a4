package job

import "testing"

func TestUnwrapEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{"bare array", `[{"id":"1"},{"id":"2"}]`, 2, false},
		{"jobs key", `{"jobs":[{"id":"1"}]}`, 1, false},
		{"data key", `{"data":[{"id":"1"},{"id":"2"},{"id":"3"}]}`, 3, false},
		{"jobs before data", `{"jobs":[],"data":[{"id":"1"}]}`, 0, false},
		{"jobs not array", `{"jobs":{"id":"1"},"data":[{"id":"1"}]}`, 1, false},
		{"empty array", `[]`, 0, false},
		{"object without array", `{"results":[{"id":"1"}]}`, 0, true},
		{"scalar", `17`, 0, true},
		{"invalid json", `{"jobs":[`, 0, true},
		{"html", `<html></html>`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnwrapEnvelope([]byte(tt.body))
			if tt.wantErr {
				if KindOf(err) != MalformedResponse || err == nil {
					t.Fatalf("err = %v, want MalformedResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestUnwrapEnvelopeScenario(t *testing.T) {
	raws, err := UnwrapEnvelope([]byte(`{"jobs":[{"id":"7","title":"Dev","salary":90000}]}`))
	if err != nil {
		t.Fatalf("UnwrapEnvelope: %v", err)
	}

	jobs := NormalizeBatch(raws)
	if len(jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(jobs))
	}
	if jobs[0].Salary != "$90000" || jobs[0].Company != "Unknown Company" {
		t.Errorf("unexpected job: %+v", jobs[0])
	}
}
