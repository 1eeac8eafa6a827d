package main

import (
	"fmt"
	"os"

	json "github.com/KevinWang15/go-json5"
	aerialsim "github.com/openlitho/aerialsim"
	"github.com/openlitho/aerialsim/render"
)

// DemoConfig describes one run of the demo: the mask to expose, the
// optical configuration, and what to do with the result.
type DemoConfig struct {
	MaskPreset   string
	MaskPNGPath  string
	Params       aerialsim.PupilParams
	View         aerialsim.ViewParams
	RunBossung   bool
	Bossung      aerialsim.BossungParams
	OutputPrefix string
}

func getLeafValue(table map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = table
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func leafFloat(table map[string]interface{}, field string, out *float64) (string, bool) {
	v, ok := getLeafValue(table, field)
	if !ok {
		return "", true
	}
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprintf("%s: is not a number", field), false
	}
	*out = f
	return "", true
}

func leafString(table map[string]interface{}, field string, out *string) (string, bool) {
	v, ok := getLeafValue(table, field)
	if !ok {
		return "", true
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%s: is not a string", field), false
	}
	*out = s
	return "", true
}

// LoadDemoConfig reads a JSON5 config file and validates it
// field-by-field into a DemoConfig, falling back to the module
// defaults for any field left unset.
func LoadDemoConfig(path string) (DemoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DemoConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var table map[string]interface{}
	if err := json.Unmarshal(data, &table); err != nil {
		return DemoConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := DemoConfig{
		Params:       aerialsim.DefaultPupilParams(),
		View:         aerialsim.DefaultViewParams(),
		OutputPrefix: "aerialsim",
	}

	fields := []struct {
		name string
		out  *float64
	}{
		{"wavelength_nm", &cfg.Params.WavelengthNm},
		{"na", &cfg.Params.NA},
		{"sigma", &cfg.Params.Sigma},
		{"defocus_um", &cfg.Params.DefocusUm},
		{"zernike_z4", &cfg.Params.Zernike.Z4},
		{"zernike_z5", &cfg.Params.Zernike.Z5},
		{"zernike_z6", &cfg.Params.Zernike.Z6},
		{"zernike_z7", &cfg.Params.Zernike.Z7},
		{"zernike_z8", &cfg.Params.Zernike.Z8},
		{"zernike_z9", &cfg.Params.Zernike.Z9},
		{"zernike_z10", &cfg.Params.Zernike.Z10},
		{"zernike_z11", &cfg.Params.Zernike.Z11},
		{"threshold", &cfg.View.Threshold},
	}
	for _, f := range fields {
		if msg, ok := leafFloat(table, f.name, f.out); !ok {
			return DemoConfig{}, fmt.Errorf("config %s: %s", path, msg)
		}
	}

	crossSectionRow := float64(cfg.View.CrossSectionRow)
	if msg, ok := leafFloat(table, "cross_section_row", &crossSectionRow); !ok {
		return DemoConfig{}, fmt.Errorf("config %s: %s", path, msg)
	}
	cfg.View.CrossSectionRow = int(crossSectionRow)

	for _, f := range []struct {
		name string
		out  *string
	}{
		{"mask_preset", &cfg.MaskPreset},
		{"mask_png_path", &cfg.MaskPNGPath},
		{"output_prefix", &cfg.OutputPrefix},
	} {
		if msg, ok := leafString(table, f.name, f.out); !ok {
			return DemoConfig{}, fmt.Errorf("config %s: %s", path, msg)
		}
	}

	if cfg.MaskPreset == "" && cfg.MaskPNGPath == "" {
		return DemoConfig{}, fmt.Errorf("config %s: one of mask_preset or mask_png_path is required", path)
	}

	bossungFlag, ok := getLeafValue(table, "run_bossung_bool")
	if ok {
		b, ok := bossungFlag.(bool)
		if !ok {
			return DemoConfig{}, fmt.Errorf("config %s: run_bossung_bool: is not a bool", path)
		}
		cfg.RunBossung = b
	}

	if cfg.RunBossung {
		cfg.Bossung = aerialsim.BossungParams{
			FocusMinUm: -0.5, FocusMaxUm: 0.5, FocusSteps: 11,
			DoseMin: 0.7, DoseMax: 1.3, DoseSteps: 7,
		}
		bFields := []struct {
			name string
			out  *float64
		}{
			{"bossung_focus_min_um", &cfg.Bossung.FocusMinUm},
			{"bossung_focus_max_um", &cfg.Bossung.FocusMaxUm},
			{"bossung_dose_min", &cfg.Bossung.DoseMin},
			{"bossung_dose_max", &cfg.Bossung.DoseMax},
		}
		for _, f := range bFields {
			if msg, ok := leafFloat(table, f.name, f.out); !ok {
				return DemoConfig{}, fmt.Errorf("config %s: %s", path, msg)
			}
		}
		var focusSteps, doseSteps float64
		if msg, ok := leafFloat(table, "bossung_focus_steps", &focusSteps); !ok {
			return DemoConfig{}, fmt.Errorf("config %s: %s", path, msg)
		} else if focusSteps != 0 {
			cfg.Bossung.FocusSteps = int(focusSteps)
		}
		if msg, ok := leafFloat(table, "bossung_dose_steps", &doseSteps); !ok {
			return DemoConfig{}, fmt.Errorf("config %s: %s", path, msg)
		} else if doseSteps != 0 {
			cfg.Bossung.DoseSteps = int(doseSteps)
		}
	}

	return cfg, nil
}

// BuildMask resolves the config's mask source into a litho.Mask.
func BuildMask(cfg DemoConfig) (aerialsim.Mask, error) {
	if cfg.MaskPNGPath != "" {
		return render.LoadMaskPNG(cfg.MaskPNGPath)
	}
	switch cfg.MaskPreset {
	case "line_space":
		return aerialsim.LineSpaceMask(90, 90), nil
	case "isolated_line":
		return aerialsim.IsolatedLineMask(90), nil
	case "impulse":
		return aerialsim.ImpulseMask(), nil
	case "contact_hole":
		return aerialsim.ContactHoleMask(180), nil
	default:
		return nil, fmt.Errorf("unknown mask_preset %q", cfg.MaskPreset)
	}
}
