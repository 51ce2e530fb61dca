package service

import (
	"html/template"
	"strings"

	"github.com/serpent-tools/serpent/domain"
)

// htmlReportTemplate draws every chart client-side with viz-js, so the
// page works without a local Graphviz installation.
const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>serpent flowcharts</title>
<script src="https://cdn.jsdelivr.net/npm/@viz-js/viz@3/lib/viz-standalone.js"></script>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; background: #fafafa; }
  h1 { font-size: 1.4rem; }
  .chart { background: white; border: 1px solid #ddd; border-radius: 8px; margin: 1.5rem 0; padding: 1rem; }
  .chart h2 { font-size: 1rem; color: #333; margin-top: 0; }
  .chart .failed { color: #b00020; }
  .summary { color: #666; font-size: 0.9rem; }
  .error { color: #b00020; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>serpent flowcharts</h1>
<p class="summary">{{.Summary.FilesProcessed}} file(s) processed, {{.Summary.FilesFailed}} failed, {{.Summary.TotalNodes}} nodes, {{.Summary.TotalEdges}} edges. Generated {{.GeneratedAt}} by serpent {{.Version}}.</p>
{{range $i, $chart := .Charts}}
<div class="chart">
  <h2>{{$chart.Title}}{{if $chart.ParseFailed}} <span class="failed">(syntax error)</span>{{end}}</h2>
  <div id="chart-{{$i}}"></div>
  <script type="text/vnd.graphviz" id="dot-{{$i}}">{{$chart.DOT}}</script>
</div>
{{end}}
<script>
Viz.instance().then(function(viz) {
  document.querySelectorAll('script[type="text/vnd.graphviz"]').forEach(function(src) {
    var target = document.getElementById(src.id.replace("dot-", "chart-"));
    try {
      target.appendChild(viz.renderSVGElement(src.textContent));
    } catch (err) {
      var pre = document.createElement("pre");
      pre.className = "error";
      pre.textContent = String(err);
      target.appendChild(pre);
    }
  });
});
</script>
</body>
</html>
`

var htmlReport = template.Must(template.New("report").Parse(htmlReportTemplate))

// renderHTMLReport renders the response into the standalone HTML report
func renderHTMLReport(response *domain.FlowchartResponse) (string, error) {
	var builder strings.Builder
	if err := htmlReport.Execute(&builder, response); err != nil {
		return "", domain.NewOutputError("failed to render HTML report", err)
	}
	return builder.String(), nil
}
