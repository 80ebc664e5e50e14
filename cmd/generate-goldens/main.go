// Command generate-goldens writes testdata/goldens/<sample>.md for every
// sample document in internal/fixtures.
package main

import (
	"bytes"
	"crypto/sha256"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ryanlewis/dotgrid/internal/fixtures"
)

// GoldenMetadata represents the YAML front matter in golden files
// This should match the struct in golden_test.go
type GoldenMetadata struct {
	Sample         string `yaml:"sample"`
	Description    string `yaml:"description"`
	Pages          int    `yaml:"pages"`
	Bytes          int    `yaml:"bytes"`
	ChecksumSHA256 string `yaml:"checksum_sha256"`
	Generated      string `yaml:"generated"`
	Generator      string `yaml:"generator"`
}

var (
	outDir = flag.String("out", "testdata/goldens", "Output directory")
	only   = flag.String("sample", "", "Generate a single sample")
	strict = flag.Bool("strict", false, "Exit on any warning")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create directory %s: %v", *outDir, err)
	}

	samples := fixtures.Samples()
	if *only != "" {
		s, ok := fixtures.Lookup(*only)
		if !ok {
			log.Fatalf("Unknown sample %q", *only)
		}
		samples = []fixtures.Sample{s}
	}

	for _, s := range samples {
		if err := generateGoldenFile(s); err != nil {
			if *strict {
				log.Fatalf("Failed to generate golden file: %v", err)
			}
			log.Printf("Warning: %v", err)
		}
	}

	log.Println("Golden file generation complete")
}

func generateGoldenFile(s fixtures.Sample) error {
	outFile := filepath.Join(*outDir, s.Name+".md")
	log.Printf("Generating %s", outFile)

	doc, err := s.Build()
	if err != nil {
		return fmt.Errorf("failed to build sample %s: %w", s.Name, err)
	}
	out := doc.Render()

	metadata := GoldenMetadata{
		Sample:         s.Name,
		Description:    s.Description,
		Pages:          doc.PageCount(),
		Bytes:          len(out),
		ChecksumSHA256: fmt.Sprintf("%x", sha256.Sum256(out)),
		Generated:      time.Now().UTC().Format("2006-01-02"),
		Generator:      "generate-goldens",
	}

	yamlData, err := yaml.Marshal(&metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlData)
	buf.WriteString("---\n\n")
	buf.WriteString("```text\n")
	if preview := fixtures.Preview(doc); preview != "" {
		buf.WriteString(preview)
		buf.WriteString("\n")
	}
	buf.WriteString("```\n")

	if err := os.WriteFile(outFile, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", outFile, err)
	}
	return nil
}
