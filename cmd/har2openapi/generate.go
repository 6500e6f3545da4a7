package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/har-tools/har2openapi/internal/app/docgen"
	"github.com/har-tools/har2openapi/internal/app/harparse"
	"github.com/har-tools/har2openapi/internal/app/openapi"
	"github.com/har-tools/har2openapi/internal/app/pipeline"
	"github.com/har-tools/har2openapi/internal/app/redact"
	"github.com/har-tools/har2openapi/internal/app/source"
)

var (
	generateOut          string
	generateHTML         string
	generateRules        string
	generateTitle        string
	generateVersion      string
	generateServerURL    string
	generateBearerAuth   bool
	generateAPIKeyHeader string
)

var generateCmd = &cobra.Command{
	Use:   "generate <capture>...",
	Short: "Generate an OpenAPI description from one or more captures",
	Long: `Reads one or more HAR captures (local files or http(s) URLs), merges
them, and writes a single OpenAPI description. The output format follows
the --out extension: .json for JSON, anything else for YAML.

Examples:
  har2openapi generate capture.har
  har2openapi generate --out api.json capture1.har capture2.har
  har2openapi generate --html api.html https://ci.example.com/runs/42/capture.har`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd.Context(), args)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "openapi.yaml", "output file (.json selects JSON output)")
	generateCmd.Flags().StringVar(&generateHTML, "html", "", "also write an HTML viewer to this file")
	generateCmd.Flags().StringVar(&generateRules, "rules", "", "JSON file with extra redaction rules")
	generateCmd.Flags().StringVar(&generateTitle, "title", "", "document title")
	generateCmd.Flags().StringVar(&generateVersion, "doc-version", "", "document version")
	generateCmd.Flags().StringVar(&generateServerURL, "server-url", "", "server URL recorded in the document")
	generateCmd.Flags().BoolVar(&generateBearerAuth, "bearer-auth", false, "declare a bearer security scheme")
	generateCmd.Flags().StringVar(&generateAPIKeyHeader, "api-key-header", "", "declare an apiKey security scheme on this header")
	rootCmd.AddCommand(generateCmd)
}

func generate(ctx context.Context, refs []string) error {
	opts := pipeline.Options{
		Metadata: openapi.Metadata{
			Title:        generateTitle,
			Version:      generateVersion,
			ServerURL:    generateServerURL,
			BearerAuth:   generateBearerAuth,
			APIKeyHeader: generateAPIKeyHeader,
		},
	}

	if generateRules != "" {
		data, err := os.ReadFile(generateRules)
		if err != nil {
			return errors.Wrapf(err, "read rules file %s", generateRules)
		}
		rules, err := redact.LoadRules(data)
		if err != nil {
			return err
		}
		opts.Rules = rules
	}

	collections := make([][]harparse.Entry, 0, len(refs))
	for _, ref := range refs {
		data, err := source.Load(ctx, ref)
		if err != nil {
			return err
		}
		entries, err := harparse.Parse(data, ref)
		if err != nil {
			return err
		}
		collections = append(collections, entries)
	}

	doc, err := pipeline.Build(collections, opts)
	if err != nil {
		return err
	}

	out, err := renderDocument(doc, generateOut)
	if err != nil {
		return err
	}
	if err := os.WriteFile(generateOut, out, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", generateOut)
	}
	log.Infof("wrote %s (%s, %d paths)", generateOut, humanize.Bytes(uint64(len(out))), len(doc.Paths))

	if generateHTML != "" {
		f, err := os.Create(generateHTML)
		if err != nil {
			return errors.Wrapf(err, "create %s", generateHTML)
		}
		defer f.Close()
		if err := docgen.Render(doc, f); err != nil {
			return err
		}
		log.Infof("wrote %s", generateHTML)
	}
	return nil
}

func renderDocument(doc *openapi.Document, out string) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(out), ".json") {
		return doc.JSON()
	}
	return doc.YAML()
}
