package domain

import "math"

// FileType identifies the document format a Report was produced for.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
)

// Accepted MIME types. Anything else is rejected before analysis.
const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Impact is the severity tier of a check. It is fixed per check and does not
// depend on the outcome.
type Impact string

const (
	ImpactCritical Impact = "critical"
	ImpactSerious  Impact = "serious"
	ImpactModerate Impact = "moderate"
	ImpactMinor    Impact = "minor"
)

// Status is the outcome of a single check.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusWarning Status = "warning"
	StatusManual  Status = "manual"
)

// Violation is one finding emitted by a check. Despite the name it also
// records passes.
type Violation struct {
	ID            string `json:"id"`
	WCAGCriterion string `json:"wcagCriterion"`
	Description   string `json:"description"`
	Help          string `json:"help"`
	Impact        Impact `json:"impact"`
	Status        Status `json:"status"`
	Details       string `json:"details,omitempty"`
}

// Metadata is the best-effort document metadata extracted during analysis.
type Metadata struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAt"`
	Language  string `json:"language,omitempty"`
	PageCount int    `json:"pageCount,omitempty"`
}

// Report is the result of analyzing one document.
type Report struct {
	FileName        string      `json:"fileName"`
	FileType        FileType    `json:"fileType"`
	ComplianceScore int         `json:"complianceScore"`
	PassedChecks    int         `json:"passedChecks"`
	TotalChecks     int         `json:"totalChecks"`
	Violations      []Violation `json:"violations"`
	Metadata        Metadata    `json:"metadata"`
}

// NewReport reduces the ordered findings of a run into a Report.
func NewReport(fileName string, ft FileType, findings []Violation, meta Metadata) *Report {
	if findings == nil {
		findings = []Violation{}
	}
	passed := 0
	for _, v := range findings {
		if v.Status == StatusPass {
			passed++
		}
	}
	return &Report{
		FileName:        fileName,
		FileType:        ft,
		ComplianceScore: ComputeComplianceScore(passed, len(findings)),
		PassedChecks:    passed,
		TotalChecks:     len(findings),
		Violations:      findings,
		Metadata:        meta,
	}
}

// ComputeComplianceScore returns round(100 * passed / total), or 100 when
// nothing was checked.
func ComputeComplianceScore(passed, total int) int {
	if total <= 0 {
		return 100
	}
	score := int(math.Round(100 * float64(passed) / float64(total)))
	return max(0, min(score, 100))
}

// Counts tallies findings by status.
func (r *Report) Counts() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, v := range r.Violations {
		counts[v.Status]++
	}
	return counts
}

func (r *Report) Grade() string { return GradeFor(r.ComplianceScore) }

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}
