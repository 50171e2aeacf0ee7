package notify

const emailHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>dateaug run {{.RunID}}</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 640px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 20px 24px;
      background: linear-gradient(135deg, #463737 0%, #37393b 100%);
      color: #ffffff;
    }

    .headline {
      font-size: 24px;
      font-weight: 700;
      letter-spacing: 0.05em;
      margin-bottom: 4px;
    }

    .title {
      font-size: 15px;
      opacity: 0.9;
    }

    .badge {
      display: inline-block;
      margin-top: 8px;
      padding: 4px 10px;
      font-size: 11px;
      font-weight: 600;
      border-radius: 4px;
      background: #f97316;
      color: #ffffff;
      text-transform: uppercase;
      letter-spacing: 0.05em;
    }

    .section {
      padding: 16px 24px;
      border-top: 1px solid #f3f4f6;
    }

    .section-title {
      font-size: 11px;
      font-weight: 700;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      margin-bottom: 12px;
    }

    .run-table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
    }

    .run-table th {
      text-align: left;
      padding: 6px 8px;
      color: #6b7280;
      font-weight: 500;
      border-bottom: 1px solid #e5e7eb;
    }

    .run-table td {
      padding: 6px 8px;
      border-bottom: 1px solid #f3f4f6;
    }

    .path {
      font-family: ui-monospace, SFMono-Regular, Menlo, monospace;
      font-size: 12px;
      color: #374151;
    }

    .footer {
      padding: 16px 24px;
      font-size: 12px;
      color: #9ca3af;
      text-align: center;
      background: #f9fafb;
      border-top: 1px solid #f3f4f6;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="headline">{{.TotalExamples}} examples</div>
      <div class="title">{{len .Summaries}} paragraphs · run {{.RunID}}</div>
      {{if .Skipped}}
      <span class="badge">{{.Skipped}} resumed</span>
      {{end}}
    </div>

    <div class="section">
      <div class="section-title">Run Details</div>
      <table class="run-table">
        <tr><th>Started</th><td>{{.Started.Format "02 Jan 2006 3:04 PM"}}</td></tr>
        <tr><th>Elapsed</th><td>{{.ElapsedRounded}}</td></tr>
        <tr><th>Output</th><td class="path">{{.OutputDir}}</td></tr>
      </table>
    </div>

    <div class="section">
      <div class="section-title">Paragraphs</div>
      <table class="run-table">
        <tr>
          <th>#</th>
          <th>Before (unique)</th>
          <th>After (unique)</th>
          <th>Examples</th>
          <th>File</th>
        </tr>
        {{range .Summaries}}
        <tr>
          <td>{{.Index}}</td>
          {{if .Skipped}}
          <td colspan="2">skipped</td>
          {{else}}
          <td>{{.Before}} ({{.BeforeUnique}})</td>
          <td>{{.After}} ({{.AfterUnique}})</td>
          {{end}}
          <td>{{.Examples}}</td>
          <td class="path">{{.Output}}</td>
        </tr>
        {{end}}
      </table>
    </div>

    <div class="footer">
      Generated by dateaug
    </div>
  </div>
</body>
</html>`
