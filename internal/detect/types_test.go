package detect

import (
	"reflect"
	"testing"
)

func TestParseReport(t *testing.T) {
	t.Parallel()

	want := []Technology{
		{Name: "React", Categories: []string{"frontend framework"}, Confidence: 100},
		{Name: "Nginx", Confidence: 80, Version: "1.25"},
	}

	tests := []struct {
		name string
		data string
	}{
		{
			"bare array",
			`[{"name":"React","categories":["frontend framework"],"confidence":100},
			  {"name":"Nginx","confidence":80,"version":"1.25"}]`,
		},
		{
			"envelope",
			`{"technologies":[{"name":"React","categories":["frontend framework"],"confidence":100},
			  {"name":"Nginx","confidence":80,"version":"1.25"}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseReport([]byte(tc.data))
			if err != nil {
				t.Fatalf("ParseReport: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestParseReportRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, data := range []string{`{"technologies":"nope"}`, `not json`} {
		if _, err := ParseReport([]byte(data)); err == nil {
			t.Errorf("ParseReport(%q) should fail", data)
		}
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	got := Names([]Technology{{Name: "React"}, {Name: "Nginx"}})
	if !reflect.DeepEqual(got, []string{"React", "Nginx"}) {
		t.Errorf("Names = %v", got)
	}
}
