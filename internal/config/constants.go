package config

// Well-known file names used by the report run.
const (
	// SurveyFileName is the exit-survey workbook expected under data/.
	SurveyFileName = "exit_survey_2024.xlsx"

	// RankingCSVName is the rank-ordered elective table.
	RankingCSVName = "elective_course_ranking.csv"

	// RankingPNGName is the bar chart of average ratings.
	RankingPNGName = "elective_course_ranking.png"

	// SummaryTXTName is the plain-text run summary.
	SummaryTXTName = "run_summary.txt"
)
