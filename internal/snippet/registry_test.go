package snippet

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestDefault_Names(t *testing.T) {
	want := []string{"settings", "loading", "glass", "form", "navigation"}
	if diff := cmp.Diff(want, Default().Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_PayloadsMatchEmbeddedFiles(t *testing.T) {
	for _, tmpl := range Default().Templates() {
		t.Run(tmpl.Name, func(t *testing.T) {
			data, err := builtinFS.ReadFile("templates/" + tmpl.Name + ".jsx")
			if err != nil {
				t.Fatalf("reading embedded payload: %v", err)
			}
			if tmpl.Body != string(data) {
				t.Error("Body differs from embedded payload")
			}
			if tmpl.Description == "" {
				t.Error("Description is empty")
			}
			if !strings.Contains(tmpl.Body, "export default function") {
				t.Error("Body does not look like a screen component")
			}
		})
	}
}

func TestDefault_PayloadBytes(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		lastByte byte
	}{
		{"settings", 2433, '}'},
		{"loading", 756, '}'},
		{"glass", 1474, ';'},
		{"form", 1951, '}'},
		{"navigation", 1859, '}'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Default().Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			if len(tmpl.Body) != tt.size {
				t.Errorf("len(Body) = %d, want %d", len(tmpl.Body), tt.size)
			}
			if last := tmpl.Body[len(tmpl.Body)-1]; last != tt.lastByte {
				t.Errorf("last byte = %q, want %q", last, tt.lastByte)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"Settings", "settings"},
		{"GLASS", "glass"},
		{" settings", " settings"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.token); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	names := Default().Names()
	names[0] = "changed"
	if Default().Names()[0] != "settings" {
		t.Error("mutating Names() result changed the registry")
	}
}

func TestLookup(t *testing.T) {
	reg := Default()

	tests := []struct {
		name     string
		token    string
		wantName string
		wantErr  error
	}{
		{name: "lowercase", token: "settings", wantName: "settings"},
		{name: "uppercase", token: "SETTINGS", wantName: "settings"},
		{name: "mixed case", token: "NaVigation", wantName: "navigation"},
		{name: "empty", token: "", wantErr: ErrMissingName},
		{name: "leading space", token: " settings", wantErr: ErrUnknownTemplate},
		{name: "trailing space", token: "glass ", wantErr: ErrUnknownTemplate},
		{name: "blank", token: "   ", wantErr: ErrUnknownTemplate},
		{name: "unknown", token: "bogus", wantErr: ErrUnknownTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Lookup(tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Lookup(%q) error = %v, want %v", tt.token, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.token, err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Lookup(%q).Name = %q, want %q", tt.token, got.Name, tt.wantName)
			}
		})
	}
}

func TestLookup_UnknownNamesToken(t *testing.T) {
	_, err := Default().Lookup("Bogus")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "'bogus'") {
		t.Errorf("error %q should name the token", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"settings", "ExpoUISettingsScreen.jsx"},
		{"loading", "ExpoUILoadingScreen.jsx"},
		{"glass", "ExpoUIGlassScreen.jsx"},
		{"form", "ExpoUIFormScreen.jsx"},
		{"navigation", "ExpoUINavigationScreen.jsx"},
		{"SETTINGS", "ExpoUISettingsScreen.jsx"},
	}

	for _, tt := range tests {
		if got := FileName(tt.name); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFileName_Unique(t *testing.T) {
	seen := make(map[string]string)
	for _, name := range Default().Names() {
		file := FileName(name)
		if other, ok := seen[file]; ok {
			t.Errorf("%q and %q both map to %s", name, other, file)
		}
		seen[file] = name
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{
			name:    "missing manifest",
			fsys:    fstest.MapFS{"a.jsx": {Data: []byte("a")}},
			wantErr: "reading manifest.yaml",
		},
		{
			name:    "invalid yaml",
			fsys:    fstest.MapFS{"manifest.yaml": {Data: []byte("templates: [")}},
			wantErr: "parsing manifest.yaml",
		},
		{
			name:    "empty manifest",
			fsys:    fstest.MapFS{"manifest.yaml": {Data: []byte("templates: []\n")}},
			wantErr: "lists no templates",
		},
		{
			name: "uppercase name",
			fsys: fstest.MapFS{
				"manifest.yaml": {Data: []byte("templates:\n  - name: Card\n    file: card.jsx\n")},
				"card.jsx":      {Data: []byte("card")},
			},
			wantErr: "must be lowercase",
		},
		{
			name: "duplicate name",
			fsys: fstest.MapFS{
				"manifest.yaml": {Data: []byte("templates:\n  - name: card\n    file: card.jsx\n  - name: card\n    file: card.jsx\n")},
				"card.jsx":      {Data: []byte("card")},
			},
			wantErr: "duplicate template name",
		},
		{
			name: "missing payload",
			fsys: fstest.MapFS{
				"manifest.yaml": {Data: []byte("templates:\n  - name: card\n    file: card.jsx\n")},
			},
			wantErr: "reading payload",
		},
		{
			name: "unlisted payload",
			fsys: fstest.MapFS{
				"manifest.yaml": {Data: []byte("templates:\n  - name: card\n    file: card.jsx\n")},
				"card.jsx":      {Data: []byte("card")},
				"extra.jsx":     {Data: []byte("extra")},
			},
			wantErr: "extra.jsx is not listed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.fsys)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestNew_CustomSet(t *testing.T) {
	fsys := fstest.MapFS{
		"manifest.yaml": {Data: []byte("templates:\n  - name: card\n    file: card.jsx\n    description: A card\n")},
		"card.jsx":      {Data: []byte("export default function Card() {}\n")},
	}

	reg, err := New(fsys)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := []Template{{Name: "card", Description: "A card", Body: "export default function Card() {}\n"}}
	if diff := cmp.Diff(want, reg.Templates()); diff != "" {
		t.Errorf("Templates() mismatch (-want +got):\n%s", diff)
	}
}
