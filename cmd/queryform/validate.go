package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/queryform/modules/contact"
)

var errInvalidInput = errors.New("form input is invalid")

func newValidateCmd(load func() (appConfig, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a JSON form input",
		Long: `Validate reads a JSON object with the form fields from file, or from
stdin when no file is given, and prints the validation result as JSON.
The exit status is 1 when the input is invalid.

Example:
  echo '{"firstName":"Jane","email":"jane"}' | queryform validate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			options, err := cfg.queryTypes()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			return runValidate(in, cmd.OutOrStdout(), contact.NewValidator(options))
		},
	}
}

func runValidate(in io.Reader, out io.Writer, v *contact.Validator) error {
	var req contact.APIRequest
	dec := json.NewDecoder(in)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	result := v.Validate(req.Input())

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(contact.APIResult{Valid: result.Valid(), Errors: result}); err != nil {
		return err
	}
	if !result.Valid() {
		return errInvalidInput
	}
	return nil
}
