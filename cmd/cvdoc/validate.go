package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-document-engine/internal/config"
	"github.com/jonathan/cv-document-engine/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV request file",
	Long:  "Validate a CV request JSON file against the CV schema and the renderer's own checks, reporting every problem the renderers would otherwise coerce silently.",
	RunE:  runValidate,
}

var (
	validateInputFile  string
	validateSchemaPath string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to CV request JSON file (required)")
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Schema file override (default: the bundled CV schema)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	var schemaErr error
	if validateSchemaPath != "" {
		schemaErr = schemas.ValidateJSON(validateSchemaPath, validateInputFile)
	} else {
		schemaErr = schemas.ValidateCVFile(validateInputFile)
	}
	if schemaErr != nil {
		var ve *schemas.ValidationError
		if errors.As(schemaErr, &ve) {
			return fmt.Errorf("schema %w", ve)
		}
		return schemaErr
	}

	req, err := config.LoadRequest(validateInputFile)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	fmt.Printf("%s is valid\n", validateInputFile)
	return nil
}
