package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	tabnews "github.com/tabnews/tabnews-go"
)

// faultView is the printable form of an API fault.
type faultView struct {
	StatusCode int    `json:"status_code"`
	Name       string `json:"name,omitempty"`
	Message    string `json:"message"`
	Action     string `json:"action,omitempty"`
	ErrorID    string `json:"error_id,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// render prints the value of a successful result. Faults are printed too and
// returned as errors so the process exits non-zero.
func render[T any](a *app, res *tabnews.Result[T], err error) error {
	if err != nil {
		return err
	}
	if res.Fault != nil {
		return a.fault(res.Fault)
	}
	return a.print(res.Value)
}

func (a *app) fault(f *tabnews.APIFault) error {
	a.log.Debug().Int("status_code", f.StatusCode).Str("error_id", f.ErrorID()).Msg("api fault")
	view := faultView{
		StatusCode: f.StatusCode,
		Name:       f.Name(),
		Message:    f.Message(),
		Action:     f.Action(),
		ErrorID:    f.ErrorID(),
		RequestID:  f.RequestID(),
	}
	if err := a.print(view); err != nil {
		return err
	}
	return f
}

func (a *app) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if a.cfg != nil && a.cfg.Output == "yaml" {
		// Going through JSON keeps the json tags and flattens embedded structs.
		if data, err = yaml.JSONToYAML(data); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = a.out.Write(data)
		return err
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}
