// Package main is the jobtailor command line.
//
// Two subcommands:
//
//	jobtailor search [--keywords a,b] [--location regex] [--query text] ...
//	jobtailor tailor [--output path] JOB_ID RESUME
//
// search ranks postings by keyword and location match, or runs a free-text
// query against the full-text index. tailor rewrites a plain-text resume to
// highlight overlap with the chosen posting and writes the result next to
// the input (or to --output).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vinayprograms/jobtailor/catalog"
	"github.com/vinayprograms/jobtailor/config"
	"github.com/vinayprograms/jobtailor/errors"
	"github.com/vinayprograms/jobtailor/index"
	"github.com/vinayprograms/jobtailor/logging"
	"github.com/vinayprograms/jobtailor/tailor"
)

const separator = "------------------------------------------------------------"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log := logging.New().WithTraceID(uuid.New().String()[:8])

	var err error
	switch os.Args[1] {
	case "search":
		err = runSearch(os.Args[2:], log.WithComponent("search"))
	case "tailor":
		err = runTailor(os.Args[2:], log.WithComponent("tailor"))
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Find jobs and tailor your resume for applications.

Usage:
  jobtailor search [--keywords a,b] [--location regex] [--query text] [--limit n] [--data path] [--config path]
  jobtailor tailor [--output path] [--data path] [--config path] JOB_ID RESUME

Run "jobtailor <command> -h" for flag details.
`)
}

// commonFlags registers the flags shared by both subcommands.
func commonFlags(fs *flag.FlagSet) (data, configPath *string, verbose *bool) {
	data = fs.String("data", "", "path to a JSON file of job postings (overrides config)")
	configPath = fs.String("config", "", "path to a TOML config file")
	verbose = fs.Bool("verbose", false, "enable debug logging")
	return data, configPath, verbose
}

// loadConfig resolves configuration: an explicit --config path must exist;
// otherwise jobtailor.toml in the working directory is used when present,
// falling back to defaults. --data overrides the configured posting source.
func loadConfig(configPath, dataOverride string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configPath != "":
		c, err := config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		c, err := config.LoadFile("jobtailor.toml")
		if err != nil {
			if !errors.Is(err, errors.CodeNotFound) {
				return nil, err
			}
			c = config.Default()
		}
		cfg = c
	}
	if dataOverride != "" {
		cfg.DataPath = dataOverride
	}
	return cfg, nil
}

func runSearch(args []string, log *logging.Logger) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	keywords := fs.String("keywords", "", "comma-separated list of keywords to match")
	location := fs.String("location", "", "regular expression to filter by location")
	query := fs.String("query", "", "free-text query against the full-text index")
	limit := fs.Int("limit", 0, "maximum results to print (0 uses the config value)")
	data, configPath, verbose := commonFlags(fs)
	fs.Parse(args)

	if *verbose {
		log.SetLevel(logging.LevelDebug)
	}

	cfg, err := loadConfig(*configPath, *data)
	if err != nil {
		return err
	}
	max := cfg.Search.Limit
	if *limit > 0 {
		max = *limit
	}

	c, err := catalog.LoadFile(cfg.DataPath)
	if err != nil {
		return err
	}
	log.Debug("catalog loaded", map[string]interface{}{
		"path":     cfg.DataPath,
		"postings": c.Len(),
	})

	if *query != "" {
		return runIndexQuery(c, *query, max, log)
	}

	matches, err := c.Search(parseKeywords(*keywords), *location)
	if err != nil {
		return err
	}
	log.Debug("search complete", map[string]interface{}{"results": len(matches)})

	if len(matches) == 0 {
		fmt.Println("No jobs found for the provided criteria.")
		return nil
	}
	if max > 0 && len(matches) > max {
		matches = matches[:max]
	}
	for _, m := range matches {
		fmt.Println(m.Format())
		fmt.Println(separator)
	}
	return nil
}

func runIndexQuery(c *catalog.Catalog, query string, limit int, log *logging.Logger) error {
	ix, err := index.New(c)
	if err != nil {
		return err
	}
	defer ix.Close()

	results, err := ix.Query(query, limit)
	if err != nil {
		return err
	}
	log.Debug("index query complete", map[string]interface{}{"results": len(results)})

	if len(results) == 0 {
		fmt.Println("No jobs found for the provided criteria.")
		return nil
	}
	for _, r := range results {
		fmt.Println(catalog.FormatPosting(r.Posting))
		fmt.Printf("Relevance: %.2f\n", r.Score)
		fmt.Println(separator)
	}
	return nil
}

func runTailor(args []string, log *logging.Logger) error {
	fs := flag.NewFlagSet("tailor", flag.ExitOnError)
	output := fs.String("output", "", "output path for the tailored resume")
	data, configPath, verbose := commonFlags(fs)
	fs.Parse(args)

	if *verbose {
		log.SetLevel(logging.LevelDebug)
	}
	if fs.NArg() != 2 {
		return errors.InvalidInput("usage: jobtailor tailor [flags] JOB_ID RESUME")
	}
	jobID, resumePath := fs.Arg(0), fs.Arg(1)

	cfg, err := loadConfig(*configPath, *data)
	if err != nil {
		return err
	}

	c, err := catalog.LoadFile(cfg.DataPath)
	if err != nil {
		return err
	}
	job, err := c.Get(jobID)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(resumePath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound("resume file not found: %s", resumePath)
		}
		return errors.WrapWithCode(err, errors.CodeIO, "reading resume")
	}

	tailored := tailor.TailorResume(string(raw), job)
	log.Debug("resume tailored", map[string]interface{}{"job": job.ID})

	outputPath := *output
	if outputPath == "" {
		base := filepath.Base(resumePath)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		name := fmt.Sprintf("%s_%s.txt", stem, job.ID)
		if cfg.Tailor.OutputDir != "" {
			outputPath = filepath.Join(cfg.Tailor.OutputDir, name)
		} else {
			outputPath = filepath.Join(filepath.Dir(resumePath), name)
		}
	}

	if err := os.WriteFile(outputPath, []byte(tailored), 0644); err != nil {
		return errors.WrapWithCode(err, errors.CodeIO, "writing tailored resume")
	}

	fmt.Printf("Tailored resume saved to %s\n", outputPath)
	return nil
}

// parseKeywords splits a comma-separated keyword list, dropping blanks.
func parseKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	var keywords []string
	for _, kw := range strings.Split(raw, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
