package model

// ExamRecord represents one scheduled examination paper as published
// in a qualification's final timetable.
type ExamRecord struct {
	Qualification string `json:"qualification"`
	Subject       string `json:"subject"`
	Title         string `json:"title"`
	ExamCode      string `json:"examCode"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Duration      string `json:"duration"`
}

// Qualifications is the fixed set of qualification types, in the
// order they are presented to clients.
var Qualifications = []string{
	"GCSE",
	"GCE",
	"International GCSE",
	"BTEC",
	"T-Levels",
	"Edexcel Awards",
	"Level 2 Extended Maths",
	"Level 3 Core",
}

// WorkbookFiles maps each qualification to its source workbook
// filename under the data directory. The BTEC filename really does
// contain a trailing space before the extension.
var WorkbookFiles = map[string]string{
	"GCSE":                   "gcse-summer-2025-final.xlsx",
	"GCE":                    "gce-summer-2025-final.xlsx",
	"International GCSE":     "int-gcse-summer-2025-final.xlsx",
	"BTEC":                   "BTEC-Summer-2025-Final-Timetable .xlsx",
	"T-Levels":               "t-levels-summer-2025-final-timetable.xlsx",
	"Edexcel Awards":         "edexcel-awards-summer-2025-final.xlsx",
	"Level 2 Extended Maths": "l2-extended-maths-summer-2025-final.xlsx",
	"Level 3 Core":           "l3-core-summer-2025-final.xlsx",
}

// KnownQualification reports whether name is a member of the fixed
// qualification set.
func KnownQualification(name string) bool {
	_, ok := WorkbookFiles[name]
	return ok
}

// SearchRequest is the query payload for the search endpoint.
type SearchRequest struct {
	Qualification string `form:"qualification" binding:"required"`
	SearchTerm    string `form:"searchTerm"`
}
