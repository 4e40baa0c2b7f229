package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var cborDecMode = func() cbor.DecMode {
	mode, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IntDec:         cbor.IntDecConvertSigned,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// readSource reads the named file, or r when name is empty or "-".
func readSource(name string, r io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(r)
	}
	return os.ReadFile(name)
}

// parseInput turns a document in the given format into plain Go values the
// codec can encode: maps keyed by string, slices, int64, float64, string,
// bool, []byte, time.Time and nil.
func parseInput(format string, data []byte) (any, error) {
	switch format {
	case "json", "jsonc":
		return parseJSON(data)
	case "yaml", "yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return normalize(v)
	case "cbor":
		var v any
		if err := cborDecMode.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("cbor: %w", err)
		}
		return normalize(v)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// parseJSON accepts JSON with comments and trailing commas. Integral numbers
// become int64 so they encode to Integer rather than Double.
func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return normalize(v)
}

func normalize(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s: %w", t, err)
		}
		return f, nil
	case int:
		return int64(t), nil
	case uint64:
		return t, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("map key %v (%T) is not a string", k, k)
			}
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}
