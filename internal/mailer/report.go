package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"resume-checker/internal/analyses"
)

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"inc":   func(i int) int { return i + 1 },
}).Parse(reportHTML))

type reportData struct {
	FileName   string
	Result     analyses.AnalysisResult
	Categories []analyses.CategoryResult
}

// RenderReport produces the subject line and HTML body for one analysis.
func RenderReport(result analyses.AnalysisResult, fileName string) (subject, html string, err error) {
	subject = fmt.Sprintf("Your Resume Analysis Results - %s Grade", result.OverallGrade)

	var buf bytes.Buffer
	err = reportTmpl.Execute(&buf, reportData{
		FileName:   fileName,
		Result:     result,
		Categories: result.Categories.Ordered(),
	})
	if err != nil {
		return "", "", fmt.Errorf("render report: %w", err)
	}
	return subject, buf.String(), nil
}

const reportHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Your Resume Analysis</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #3b82f6 0%, #2563eb 100%); color: white; padding: 30px 20px; border-radius: 8px; text-align: center; margin-bottom: 30px; }
    .grade { font-size: 48px; font-weight: bold; margin: 10px 0; }
    .scores { display: grid; grid-template-columns: 1fr 1fr; gap: 15px; margin: 30px 0; }
    .score-card { background: #f8fafc; padding: 20px; border-radius: 8px; text-align: center; }
    .score-value { font-size: 36px; font-weight: bold; color: #3b82f6; }
    .category { background: white; border: 1px solid #e2e8f0; border-radius: 8px; padding: 20px; margin: 15px 0; }
    .category-header { font-size: 18px; font-weight: 600; margin-bottom: 15px; }
    .check { padding: 10px 0; border-bottom: 1px solid #f1f5f9; }
    .check:last-child { border-bottom: none; }
    .status { display: inline-block; padding: 2px 8px; border-radius: 4px; font-size: 12px; font-weight: 600; }
    .status-pass { background: #dcfce7; color: #166534; }
    .status-warning { background: #fef3c7; color: #854d0e; }
    .status-fail { background: #fee2e2; color: #991b1b; }
    .action-items { margin-top: 30px; }
    .action-item { background: #f8fafc; padding: 15px; border-left: 4px solid #3b82f6; margin: 10px 0; border-radius: 4px; }
    .priority { display: inline-block; padding: 2px 8px; border-radius: 4px; font-size: 11px; font-weight: 600; text-transform: uppercase; }
    .priority-high { background: #fee2e2; color: #991b1b; }
    .priority-medium { background: #fef3c7; color: #854d0e; }
    .priority-low { background: #dcfce7; color: #166534; }
    .footer { text-align: center; margin-top: 40px; padding-top: 20px; border-top: 1px solid #e2e8f0; color: #64748b; font-size: 14px; }
  </style>
</head>
<body>
  <div class="header">
    <h1>Resume Analysis Results</h1>
    <div class="grade">{{.Result.OverallGrade}}</div>
    <p>Overall Grade for {{.FileName}}</p>
  </div>

  <div class="scores">
    <div class="score-card">
      <div class="score-value">{{.Result.ATSScore}}</div>
      <div>ATS Parseability</div>
    </div>
    <div class="score-card">
      <div class="score-value">{{.Result.WritingScore}}</div>
      <div>Writing Quality</div>
    </div>
  </div>

  <h2>Category Breakdown</h2>
  {{range .Categories}}
  <div class="category">
    <div class="category-header">{{.Name}} ({{.PassedCount}}/{{.TotalCount}} passed)</div>
    {{range .Checks}}
    <div class="check">
      <div>
        <span class="status status-{{.Status}}">{{upper (printf "%s" .Status)}}</span>
        <strong>{{.Name}}</strong>
      </div>
      <div style="font-size: 14px; color: #64748b; margin-top: 5px;">{{.Explanation}}</div>
      {{if and .Improvement (ne .Status "pass")}}<div style="font-size: 14px; color: #3b82f6; margin-top: 5px;">&#128161; {{.Improvement}}</div>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}

  <div class="action-items">
    <h2>Priority Action Items</h2>
    {{range $idx, $item := .Result.ActionItems}}
    <div class="action-item">
      <div style="margin-bottom: 8px;">
        <span style="font-weight: 600; margin-right: 8px;">{{inc $idx}}.</span>
        <span class="priority priority-{{$item.Priority}}">{{$item.Priority}}</span>
      </div>
      <div style="font-weight: 600; margin-bottom: 5px;">{{$item.Task}}</div>
      <div style="font-size: 14px; color: #64748b;">{{$item.Detail}}</div>
    </div>
    {{end}}
  </div>

  <div class="footer">
    <p><strong>All About Resume</strong></p>
    <p>Free AI-powered resume analysis to help you succeed</p>
  </div>
</body>
</html>`
