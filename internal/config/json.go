package config

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/actionbind/internal/action"
	"github.com/dshills/actionbind/internal/action/policy"
)

// DecodeSpec decodes one action specifier from its JSON form:
//
//	{"method": "Save", "nullTarget": "disable", "actionNotFound": "throw"}
//
// method is required; behaviours default to "default".
func DecodeSpec(data []byte) (action.Spec, error) {
	if !gjson.ValidBytes(data) {
		return action.Spec{}, fmt.Errorf("config: invalid specifier json")
	}
	return specFromResult(gjson.ParseBytes(data))
}

// DecodeSpecs decodes a JSON array of action specifiers.
func DecodeSpecs(data []byte) ([]action.Spec, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("config: invalid specifier json")
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("config: specifier list must be a json array")
	}

	var specs []action.Spec
	var err error
	parsed.ForEach(func(_, value gjson.Result) bool {
		var spec action.Spec
		if spec, err = specFromResult(value); err != nil {
			return false
		}
		specs = append(specs, spec)
		return true
	})
	if err != nil {
		return nil, err
	}
	return specs, nil
}

// specFromResult builds a spec from one parsed JSON object.
func specFromResult(r gjson.Result) (action.Spec, error) {
	method := r.Get("method").String()
	if method == "" {
		return action.Spec{}, fmt.Errorf("config: specifier has no method")
	}

	nullTarget, err := policy.ParseBehaviour(r.Get("nullTarget").String())
	if err != nil {
		return action.Spec{}, err
	}
	notFound, err := policy.ParseBehaviour(r.Get("actionNotFound").String())
	if err != nil {
		return action.Spec{}, err
	}

	return action.Spec{
		Method:     method,
		NullTarget: nullTarget,
		NotFound:   notFound,
	}, nil
}

// ParseJSON decodes a configuration from its JSON form.
func ParseJSON(data []byte) (Config, error) {
	if !gjson.ValidBytes(data) {
		return Default(), fmt.Errorf("config: invalid config json")
	}
	r := gjson.ParseBytes(data)

	cfg := Default()
	if v := r.Get("logLevel"); v.Exists() {
		cfg.LogLevel = v.String()
	}
	cfg.DesignMode = r.Get("designMode").Bool()
	cfg.EnableMetrics = r.Get("enableMetrics").Bool()

	var err error
	if cfg.CommandNullTarget, err = policy.ParseBehaviour(r.Get("behaviours.commandNullTarget").String()); err != nil {
		return cfg, err
	}
	if cfg.CommandNotFound, err = policy.ParseBehaviour(r.Get("behaviours.commandNotFound").String()); err != nil {
		return cfg, err
	}
	if cfg.EventNullTarget, err = policy.ParseBehaviour(r.Get("behaviours.eventNullTarget").String()); err != nil {
		return cfg, err
	}
	if cfg.EventNotFound, err = policy.ParseBehaviour(r.Get("behaviours.eventNotFound").String()); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ExportJSON renders a configuration as JSON.
func ExportJSON(cfg Config) ([]byte, error) {
	out := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, value)
	}

	set("behaviours.commandNullTarget", cfg.CommandNullTarget.String())
	set("behaviours.commandNotFound", cfg.CommandNotFound.String())
	set("behaviours.eventNullTarget", cfg.EventNullTarget.String())
	set("behaviours.eventNotFound", cfg.EventNotFound.String())
	set("designMode", cfg.DesignMode)
	set("logLevel", cfg.LogLevel)
	set("enableMetrics", cfg.EnableMetrics)

	if err != nil {
		return nil, fmt.Errorf("config: export json: %w", err)
	}
	return out, nil
}
