package web

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"single", "name=Cristian", map[string]string{"name": "Cristian"}},
		{"utf8 percent decoding", "name=Jos%C3%A9", map[string]string{"name": "José"}},
		{"plus is space", "name=Ana+Maria", map[string]string{"name": "Ana Maria"}},
		{"encoded key", "first%20name=x", map[string]string{"first name": "x"}},
		{"last duplicate wins", "a=1&a=2&a=3", map[string]string{"a": "3"}},
		{"pair without equals skipped", "flag&b=2", map[string]string{"b": "2"}},
		{"empty value kept", "a=&b=2", map[string]string{"a": "", "b": "2"}},
		{"value with equals", "expr=1=1", map[string]string{"expr": "1=1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuery(tt.rawQuery)
			if err != nil {
				t.Fatalf("ParseQuery(%q) returned error: %v", tt.rawQuery, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseQuery(%q) = %v, want %v", tt.rawQuery, got, tt.want)
			}
		})
	}
}

func TestParseQueryMalformedEscape(t *testing.T) {
	_, err := ParseQuery("name=%zz")
	if !errors.Is(err, ErrMalformedRequest) {
		t.Errorf("Expected ErrMalformedRequest, got: %v", err)
	}
}

func TestParseQueryIdempotentOnDecodedValue(t *testing.T) {
	first, err := ParseQuery("name=Jos%C3%A9")
	if err != nil {
		t.Fatalf("ParseQuery returned error: %v", err)
	}
	second, err := ParseQuery("name=" + first["name"])
	if err != nil {
		t.Fatalf("ParseQuery returned error: %v", err)
	}
	if second["name"] != "José" {
		t.Errorf("Expected decoding an already decoded value to be stable, got %q", second["name"])
	}
}

func TestQueryParam(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     string
	}{
		{"empty", "", ""},
		{"single", "name=Cristian", "Cristian"},
		{"first duplicate wins", "name=A&name=B", "A"},
		{"absent", "lang=es", ""},
		{"utf8 percent decoding", "name=Jos%C3%A9", "José"},
		{"other pairs not decoded", "x=%zz&name=Ana", "Ana"},
		{"key compared raw", "na%6De=x&name=y", "y"},
		{"pair without equals skipped", "name&name=z", "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QueryParam(tt.rawQuery, "name")
			if err != nil {
				t.Fatalf("QueryParam(%q) returned error: %v", tt.rawQuery, err)
			}
			if got != tt.want {
				t.Errorf("QueryParam(%q) = %q, want %q", tt.rawQuery, got, tt.want)
			}
		})
	}
}

func TestQueryParamMalformedValue(t *testing.T) {
	_, err := QueryParam("name=%zz", "name")
	if !errors.Is(err, ErrMalformedRequest) {
		t.Errorf("Expected ErrMalformedRequest, got: %v", err)
	}
}

func TestRequestAccessors(t *testing.T) {
	req, err := NewRequest("GET", "/greet", "name=Cristian&lang=es")
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	if req.Method() != "GET" || req.Path() != "/greet" || req.RawQuery() != "name=Cristian&lang=es" {
		t.Errorf("Unexpected request fields: %s %s %s", req.Method(), req.Path(), req.RawQuery())
	}
	if req.Value("lang") != "es" {
		t.Errorf("Expected lang 'es', got %q", req.Value("lang"))
	}
	if req.Value("missing") != "" {
		t.Errorf("Expected missing parameter to be empty, got %q", req.Value("missing"))
	}
	if _, ok := req.Lookup("missing"); ok {
		t.Error("Expected Lookup to report missing parameter")
	}
}

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		line                   string
		method, path, rawQuery string
		wantErr                bool
	}{
		{line: "GET /hello?name=x HTTP/1.1\r\n", method: "GET", path: "/hello", rawQuery: "name=x"},
		{line: "POST /hellopost HTTP/1.1\n", method: "POST", path: "/hellopost"},
		{line: "GET /a?b?c HTTP/1.1\r\n", method: "GET", path: "/a", rawQuery: "b?c"},
		{line: "GET /no-version", method: "GET", path: "/no-version"},
		{line: "GET\r\n", wantErr: true},
		{line: "\r\n", wantErr: true},
		{line: "", wantErr: true},
	}

	for _, tt := range tests {
		method, path, rawQuery, err := parseRequestLine(tt.line)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedRequest) {
				t.Errorf("parseRequestLine(%q): expected ErrMalformedRequest, got %v", tt.line, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRequestLine(%q) returned error: %v", tt.line, err)
			continue
		}
		if method != tt.method || path != tt.path || rawQuery != tt.rawQuery {
			t.Errorf("parseRequestLine(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.line, method, path, rawQuery, tt.method, tt.path, tt.rawQuery)
		}
	}
}
