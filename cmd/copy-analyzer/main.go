// copy-analyzer runs the deterministic copy-quality analyzers on a single
// email without touching the model pipeline. Useful for editors and CI
// checks on sequence drafts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/outboundhq/campaign-validator/internal/analyzer"
	"github.com/outboundhq/campaign-validator/internal/logging"
)

var (
	subject     = flag.String("subject", "", "Email subject line to analyze")
	bodyFile    = flag.String("body-file", "", "File containing the email body (use stdin if not specified)")
	subjectOnly = flag.Bool("subject-only", false, "Run only the subject-line analyzer")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog     = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *subject == "" {
		logger.Fatal("a subject line is required (-subject)")
	}

	var result interface{}
	if *subjectOnly {
		result = analyzer.AnalyzeSubjectLine(*subject)
	} else {
		body, err := readBody()
		if err != nil {
			logger.Fatal("failed to read email body", zap.Error(err))
		}
		result = analyzer.AnalyzeEmailCopy(*subject, body)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("failed to encode analysis", zap.Error(err))
	}
	fmt.Println(string(out))
}

func readBody() (string, error) {
	if *bodyFile != "" {
		data, err := os.ReadFile(*bodyFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
