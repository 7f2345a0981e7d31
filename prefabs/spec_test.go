package prefabs

import (
	"image/color"
	"math"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/wheelchair/input"
	"github.com/milk9111/wheelchair/wheelchair"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	wc, err := LoadWheelchairSpec()
	if err != nil {
		t.Fatalf("wheelchair: %v", err)
	}
	if wc.WheelForce != 100 || wc.TurnForce != 50 || wc.MaxSpeed != 5 || wc.MaxTurnSpeed != 2 {
		t.Fatalf("unexpected tuning %+v", wc)
	}
	if wc.LinearDamping != 1.5 || wc.AngularDamping != 2 || wc.CameraFollowSmooth != 5 {
		t.Fatalf("unexpected damping/camera tuning %+v", wc)
	}
	if wc.Input.Left != "left_wheel" || wc.Input.Scroll != "scroll" {
		t.Fatalf("unexpected input names %+v", wc.Input)
	}

	cam, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("camera: %v", err)
	}
	if cam.Target != "wheelchair" || cam.Zoom != 1 {
		t.Fatalf("unexpected camera %+v", cam)
	}

	arena, err := LoadArenaSpec("")
	if err != nil {
		t.Fatalf("arena: %v", err)
	}
	if arena.Width <= 0 || len(arena.Obstacles) == 0 {
		t.Fatalf("unexpected arena %+v", arena)
	}
}

func TestLoadSpecMissing(t *testing.T) {
	if _, err := LoadSpec[CameraSpec]("nope.yaml"); err == nil {
		t.Fatal("expected an error for a missing prefab")
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `c: "#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"rgba_no_hash", `c: "10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `c: "#fff"`, color.NRGBA{}, true},
		{"not_hex", `c: "#zz0000"`, color.NRGBA{}, true},
		{"not_scalar", `c: [1, 2]`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out struct {
				C *YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte(c.in), &out)
			if c.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := out.C.Color; got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}

	var unset *YAMLColor
	if unset.Or(color.White) != color.White {
		t.Fatal("nil color should fall back")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"spin":                       "scripts/spin.tengo",
		"spin.tengo":                 "scripts/spin.tengo",
		"scripts/spin.tengo":         "scripts/spin.tengo",
		"prefabs/scripts/spin.tengo": "scripts/spin.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := LoadScript("figure_eight"); err != nil {
		t.Fatalf("embedded script should load: %v", err)
	}
}

func TestWheelchairSpecTuningAndActions(t *testing.T) {
	wc, err := LoadWheelchairSpec()
	if err != nil {
		t.Fatalf("wheelchair: %v", err)
	}
	if got, want := wc.Tuning(), wheelchair.DefaultTuning(); got != want {
		t.Fatalf("Tuning() = %+v, want %+v", got, want)
	}
	if got, want := wc.Actions(), wheelchair.DefaultActions(); got != want {
		t.Fatalf("Actions() = %+v, want %+v", got, want)
	}

	wc.Input.Right = ""
	if a := wc.Actions(); a.Right != input.Action("") || a.Left != input.ActionLeftWheel {
		t.Fatalf("unbound right wheel not kept empty: %+v", a)
	}
}

func TestTransformRadians(t *testing.T) {
	tr := TransformSpec{Rotation: -90}
	if got := tr.Radians(); math.Abs(got+math.Pi/2) > 1e-12 {
		t.Fatalf("Radians() = %v, want %v", got, -math.Pi/2)
	}
}

func TestMarshalTuningRoundTripsThroughPrefab(t *testing.T) {
	tune := wheelchair.DefaultTuning()
	tune.WheelForce = 140
	data, err := MarshalTuning(tune)
	if err != nil {
		t.Fatalf("MarshalTuning: %v", err)
	}

	var spec WheelchairSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := spec.Tuning(); got != tune {
		t.Fatalf("Tuning() = %+v, want %+v", got, tune)
	}
}
