package stack

import (
	"encoding/json"
	"testing"
)

func TestNestRequestData(t *testing.T) {
	request, err := FormatRequestNest(map[string]string{"_id": "637d5de216f58bc8ec7f7f51"})
	if err != nil {
		t.Fatalf("FormatRequestNest: %v", err)
	}
	var raw NatsNestJSReq
	if err := json.Unmarshal(request, &raw); err != nil {
		t.Fatal(err)
	}
	if raw.ID == "" {
		t.Error("request without id")
	}

	data, err := DecodeDataNest(request)
	if err != nil {
		t.Fatalf("DecodeDataNest: %v", err)
	}
	if data["_id"] != "637d5de216f58bc8ec7f7f51" {
		t.Errorf("data = %v", data)
	}
}

func TestDecodeDataNestErrors(t *testing.T) {
	for _, body := range []string{`{"id":"1"}`, `{"id":"1","data":"x"}`, `not json`} {
		if _, err := DecodeDataNest([]byte(body)); err == nil {
			t.Errorf("DecodeDataNest(%s): expected an error", body)
		}
	}
}
