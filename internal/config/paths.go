package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for every file the report run
// reads or writes.
type Paths struct {
	ExecutableDir string
	DataDir       string
	OutputDir     string

	// Input workbook
	SurveyFile string

	// Generated outputs
	RankingCSV string
	RankingPNG string
	SummaryTXT string
}

// GetPaths returns the application paths relative to the executable
// location. All paths are resolved against the executable directory, never
// the current working directory, so the run behaves the same regardless of
// where it is invoked from.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// NewPaths builds the path set rooted at the given base directory.
// Directory structure:
//
//	base/
//	  ├── data/
//	  │   └── exit_survey_2024.xlsx
//	  └── outputs/
//	      ├── elective_course_ranking.csv
//	      ├── elective_course_ranking.png
//	      └── run_summary.txt
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	outputDir := filepath.Join(baseDir, "outputs")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		OutputDir:     outputDir,

		SurveyFile: filepath.Join(dataDir, SurveyFileName),

		RankingCSV: filepath.Join(outputDir, RankingCSVName),
		RankingPNG: filepath.Join(outputDir, RankingPNGName),
		SummaryTXT: filepath.Join(outputDir, SummaryTXTName),
	}
}

// EnsureOutputDir creates the output directory so writing report files
// never fails due to a missing folder. The data directory is not created
// here; a missing input is reported by the loader instead.
func (p *Paths) EnsureOutputDir() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", p.OutputDir, err)
	}
	return nil
}
