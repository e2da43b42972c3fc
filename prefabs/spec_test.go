package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedLayout(t *testing.T) {
	data, err := PrefabsFS.ReadFile(DefaultLayout)
	if err != nil {
		t.Fatalf("read embedded layout: %v", err)
	}
	layout, err := ParseLayout(data)
	if err != nil {
		t.Fatalf("parse embedded layout: %v", err)
	}

	if len(layout.Lanes) != 4 {
		t.Fatalf("expected 4 lanes, got %d", len(layout.Lanes))
	}
	if layout.Speed != 4 {
		t.Fatalf("expected speed 4, got %v", layout.Speed)
	}

	wantBase := []color.RGBA{colornames.Red, colornames.Green, colornames.Blue, colornames.Orange}
	wantHit := []color.RGBA{colornames.Darkred, colornames.Darkgreen, colornames.Darkblue, colornames.Darkorange}
	for i, lane := range layout.Lanes {
		if lane.Target.X != 120 || lane.Target.Y != float64(80*(i+1)) || lane.Target.Radius != 30 {
			t.Fatalf("lane %d: unexpected target %+v", i, lane.Target)
		}
		if lane.Arrow.X != 680 || lane.Arrow.Y != lane.Target.Y {
			t.Fatalf("lane %d: unexpected arrow %+v", i, lane.Arrow)
		}
		if lane.Target.Base.Color != wantBase[i] {
			t.Fatalf("lane %d: base %v, want %v", i, lane.Target.Base.Color, wantBase[i])
		}
		if lane.Target.Hit.Color != wantHit[i] {
			t.Fatalf("lane %d: hit %v, want %v", i, lane.Target.Hit.Color, wantHit[i])
		}
	}
}

func TestParseLayoutDefaults(t *testing.T) {
	layout, err := ParseLayout([]byte(`
lanes:
  - target: { x: 10, y: 10, radius: 5, base: red, hit: "#800000" }
    arrow: { x: 100, y: 10 }
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if layout.Width != DefaultWidth || layout.Height != DefaultHeight {
		t.Fatalf("expected default canvas, got %dx%d", layout.Width, layout.Height)
	}
	if layout.Speed != DefaultSpeed {
		t.Fatalf("expected default speed, got %v", layout.Speed)
	}
	a := layout.Arrow
	if a.HeadLength != 14 || a.HeadHalfWidth != 5 || a.ShaftLength != 30 || a.LineWidth != 2 {
		t.Fatalf("unexpected arrow defaults %+v", a)
	}
	if a.Color == nil || a.Color.Color != DefaultArrowColor {
		t.Fatalf("expected default arrow color, got %v", a.Color)
	}
	if layout.Background != nil {
		t.Fatalf("expected no background, got %v", layout.Background)
	}
}

func TestParseLayoutInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no_lanes", `speed: 4`},
		{"zero_radius", `lanes: [{target: {x: 1, y: 1, radius: 0, base: red, hit: red}, arrow: {x: 5, y: 1}}]`},
		{"negative_speed", `{speed: -1, lanes: [{target: {x: 1, y: 1, radius: 3, base: red, hit: red}, arrow: {x: 5, y: 1}}]}`},
		{"missing_hit_color", `lanes: [{target: {x: 1, y: 1, radius: 3, base: red}, arrow: {x: 5, y: 1}}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLayout([]byte(tc.doc))
			if !errors.Is(err, ErrInvalidLayout) {
				t.Fatalf("expected ErrInvalidLayout, got %v", err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: "darkred", want: colornames.Darkred},
		{in: "DarkOrange", want: colornames.Darkorange},
		{in: `"#333333"`, want: color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}},
		{in: `"#ff000080"`, want: color.NRGBA{R: 0xff, A: 0x80}},
		{in: "notacolor", wantErr: true},
		{in: `"#12345"`, wantErr: true},
		{in: "[1, 2]", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", c.Color)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if c.Color != tc.want {
				t.Fatalf("got %v, want %v", c.Color, tc.want)
			}
		})
	}
}

func TestColorName(t *testing.T) {
	tests := []struct {
		in   color.Color
		want string
	}{
		{colornames.Darkred, "darkred"},
		{color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}, "#333333"},
		{color.NRGBA{R: 0xff, A: 0x80}, "#ff000080"},
		{nil, ""},
	}

	for _, tc := range tests {
		if got := ColorName(tc.in); got != tc.want {
			t.Fatalf("ColorName(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := "lanes: [{target: {x: 1, y: 1, radius: 3, base: red, hit: maroon}, arrow: {x: 50, y: 1}}]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(layout.Lanes) != 1 || layout.Lanes[0].Target.Hit.Color != colornames.Maroon {
		t.Fatalf("expected disk layout, got %+v", layout.Lanes)
	}
	if _, ok := ModTime(path); !ok {
		t.Fatalf("expected mod time for disk file")
	}

	if _, err := LoadLayout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing layout")
	}
}

func TestLoadLayoutFromDisk(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantErr   error
		wantSpeed float64
	}{
		{"defaults", "lanes: [{target: {x: 1, y: 1, radius: 3, base: red, hit: maroon}, arrow: {x: 50, y: 1}}]\n", nil, DefaultSpeed},
		{"speed", "speed: 7\nlanes: [{target: {x: 1, y: 1, radius: 3, base: red, hit: maroon}, arrow: {x: 50, y: 1}}]\n", nil, 7},
		{"no_lanes", "speed: 7\n", ErrInvalidLayout, 0},
		{"bad_radius", "lanes: [{target: {x: 1, y: 1, radius: 0, base: red, hit: maroon}, arrow: {x: 50, y: 1}}]\n", ErrInvalidLayout, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "layout.yaml")
			if err := os.WriteFile(path, []byte(tc.doc), 0o644); err != nil {
				t.Fatal(err)
			}

			layout, err := LoadLayout(path)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if layout.Speed != tc.wantSpeed || layout.Arrow.HeadLength != DefaultHeadLength {
				t.Fatalf("defaults not applied: %+v", layout)
			}
		})
	}
}

func TestLoadLayoutMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("lanes: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadLayout(path)
	if err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "lanes.yaml")
	if err := os.WriteFile(path, []byte("lanes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if !strings.HasSuffix(got, "lanes.yaml") || !SameFile(got, DefaultLayout) {
			t.Fatalf("unexpected event path %q", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}
