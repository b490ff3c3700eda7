package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"temperature_converter/internal/converter"
	"temperature_converter/internal/models"
	"temperature_converter/internal/service"
)

func TestHealth(t *testing.T) {
	r := newTestRouter(newMemoryService())
	w := doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != statusOK {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestListScales(t *testing.T) {
	r := newTestRouter(newMemoryService())
	w := doJSON(t, r, http.MethodGet, "/api/v1/scales", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body struct {
		Scales []string `json:"scales"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"Celsius", "Fahrenheit", "Kelvin"}
	if len(body.Scales) != len(want) {
		t.Fatalf("got %v; want %v", body.Scales, want)
	}
	for i := range want {
		if body.Scales[i] != want[i] {
			t.Fatalf("got %v; want %v", body.Scales, want)
		}
	}
}

func TestConvert_FahrenheitToCelsius(t *testing.T) {
	r := newTestRouter(newMemoryService())

	w := doJSON(t, r, http.MethodPost, "/api/v1/convert", `{"value":"212","from":"Fahrenheit","to":"Celsius"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Result      string  `json:"result"`
		OutputValue float64 `json:"output_value"`
		Label       string  `json:"label"`
		Record      struct {
			ID        string `json:"id"`
			FromScale string `json:"from_scale"`
			ToScale   string `json:"to_scale"`
			Text      string `json:"text"`
		} `json:"record"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Result != "100" || resp.OutputValue != 100 || resp.Label != "" {
		t.Fatalf("unexpected result: %+v", resp)
	}
	if resp.Record.Text != "212.00 Fahrenheit to 100.00 Celsius" {
		t.Fatalf("unexpected record text %q", resp.Record.Text)
	}
	if resp.Record.ID == "" || resp.Record.FromScale != "Fahrenheit" || resp.Record.ToScale != "Celsius" {
		t.Fatalf("unexpected record: %+v", resp.Record)
	}
}

func TestConvert_AcceptsBareNumberAndSymbols(t *testing.T) {
	r := newTestRouter(newMemoryService())

	w := doJSON(t, r, http.MethodPost, "/api/v1/convert", `{"value":100,"from":"c","to":"F"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Result string `json:"result"`
		Label  string `json:"label"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Result != "212" || resp.Label != string(models.LabelHot) {
		t.Fatalf("unexpected: %+v", resp)
	}
}

func TestConvert_InvalidInputLeavesHistoryEmpty(t *testing.T) {
	r := newTestRouter(newMemoryService())

	for _, in := range []string{`"abc"`, `""`, `"1.2.3"`, `"NaN"`} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/convert", `{"value":`+in+`,"from":"Celsius","to":"Kelvin"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("value %s: status=%d", in, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["error"] != converter.InvalidInputMessage {
			t.Fatalf("value %s: error=%q", in, body["error"])
		}
		if label, ok := body["label"]; !ok || label != "" {
			t.Fatalf("value %s: label must be present and empty, body=%s", in, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/history", "")
	var hist HistoryResponse
	_ = json.Unmarshal(w.Body.Bytes(), &hist)
	if hist.Count != 0 {
		t.Fatalf("expected empty history, got %d", hist.Count)
	}
}

func TestConvert_BadRequests(t *testing.T) {
	conv := &mockConverter{}
	r := newTestRouter(&service.Service{Converter: conv, History: &mockHistory{}})

	cases := []struct {
		name string
		body string
	}{
		{"malformed_json", `{"value":`},
		{"missing_from", `{"value":"1","to":"Kelvin"}`},
		{"unknown_from", `{"value":"1","from":"Rankine","to":"Kelvin"}`},
		{"unknown_to", `{"value":"1","from":"Kelvin","to":"Rankine"}`},
		{"value_not_scalar", `{"value":true,"from":"Kelvin","to":"Celsius"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/convert", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
		})
	}
	if conv.calls != 0 {
		t.Fatalf("service must not be called for bad requests, got %d calls", conv.calls)
	}
}

func TestConvert_ServiceErrors(t *testing.T) {
	conv := &mockConverter{err: errors.New("record conversion: disk on fire")}
	r := newTestRouter(&service.Service{Converter: conv, History: &mockHistory{}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/convert", `{"value":"1","from":"K","to":"C"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != errConvert {
		t.Fatalf("internal error text must not leak, got %q", body["error"])
	}
	if conv.lastParams.From != models.Kelvin || conv.lastParams.To != models.Celsius || conv.lastParams.Input != "1" {
		t.Fatalf("unexpected params: %+v", conv.lastParams)
	}
}

func TestClassify(t *testing.T) {
	r := newTestRouter(newMemoryService())

	cases := []struct {
		query string
		code  int
		label string
	}{
		{"/api/v1/classify?value=86&to=Fahrenheit", http.StatusOK, string(models.LabelHot)},
		{"/api/v1/classify?value=273.15&to=K", http.StatusOK, string(models.LabelChilly)},
		{"/api/v1/classify?value=-10&to=Celsius", http.StatusOK, ""},
		{"/api/v1/classify?value=abc&to=Kelvin", http.StatusBadRequest, ""},
		{"/api/v1/classify?value=1&to=Rankine", http.StatusBadRequest, ""},
	}
	for _, tc := range cases {
		w := doJSON(t, r, http.MethodGet, tc.query, "")
		if w.Code != tc.code {
			t.Fatalf("%s: status=%d", tc.query, w.Code)
		}
		if tc.code != http.StatusOK {
			continue
		}
		var body ClassifyResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if string(body.Label) != tc.label {
			t.Fatalf("%s: label=%q want %q", tc.query, body.Label, tc.label)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/history", "")
	var hist HistoryResponse
	_ = json.Unmarshal(w.Body.Bytes(), &hist)
	if hist.Count != 0 {
		t.Fatalf("classify must not log, got %d entries", hist.Count)
	}
}
