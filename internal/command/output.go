package command

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sigtoken"
	"github.com/dmitrymomot/sigtoken/pkg/canonical"
	"github.com/dmitrymomot/sigtoken/pkg/config"
)

type tokenView struct {
	Token string `json:"token" yaml:"token"`
	KeyID string `json:"key_id" yaml:"key_id"`
}

type keypairView struct {
	PublicKey string `json:"public_key" yaml:"public_key"`
	KeyID     string `json:"key_id" yaml:"key_id"`
}

type resultView struct {
	OK        bool   `json:"ok" yaml:"ok"`
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Data      any    `json:"data,omitempty" yaml:"data,omitempty"`
	Payload   string `json:"payload,omitempty" yaml:"payload,omitempty"`
	Signature string `json:"signature,omitempty" yaml:"signature,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newResultView(res sigtoken.Result) resultView {
	v := resultView{OK: res.OK}
	if res.Err != nil {
		v.Error = res.Err.Error()
		return v
	}
	v.Kind = res.Data.Kind().String()
	v.Data = dataOf(res.Data)
	v.Payload = res.Payload
	if len(res.Signature) > 0 {
		v.Signature = base64.RawStdEncoding.EncodeToString(res.Signature)
	}
	return v
}

// dataOf converts a value into plain types for json and yaml encoders.
func dataOf(v canonical.Value) any {
	switch v.Kind() {
	case canonical.KindScalar:
		return v.String()
	case canonical.KindList:
		return v.Items()
	case canonical.KindMap:
		m := make(map[string]any, len(v.Keys()))
		for _, p := range v.Pairs() {
			if len(p.Values) == 1 {
				m[p.Key] = p.Values[0]
			} else {
				m[p.Key] = p.Values
			}
		}
		return m
	default:
		return nil
	}
}

// render writes v in the configured format. Text output is produced by text.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// writeData prints token data one entry per line.
func writeData(w io.Writer, v canonical.Value) error {
	switch v.Kind() {
	case canonical.KindScalar:
		_, err := fmt.Fprintln(w, v.String())
		return err
	case canonical.KindList:
		_, err := fmt.Fprintln(w, strings.Join(v.Items(), "\n"))
		return err
	case canonical.KindMap:
		for _, p := range v.Pairs() {
			for _, val := range p.Values {
				if _, err := fmt.Fprintf(w, "%s=%s\n", p.Key, val); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
