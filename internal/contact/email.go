package contact

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// LeadEmail is the rendered notification for a validated submission: a
// subject line plus a dark terminal-styled HTML body. It is built once and
// consumed exactly once by the email sender.
type LeadEmail struct {
	Subject string
	HTML    string
}

var maintenanceLabels = map[string]string{
	"managed":   "Managed Mode",
	"handover":  "Handover Mode",
	"undecided": "Undecided",
}

// BuildLeadEmail renders the lead notification for sub. The submission payload
// is attacker-controlled, so every user-supplied value is HTML-escaped before
// interpolation. Output is deterministic given the same submission and clock.
func BuildLeadEmail(sub *Submission, now time.Time) LeadEmail {
	sectorTag := sub.Sector
	if sectorTag == "" {
		sectorTag = "General"
	}
	modules := "Web Only"
	if sub.Cinematic {
		modules = "Web + Video"
	}
	subject := fmt.Sprintf("[LEAD] %s — %s — %s", sub.Name, sectorTag, modules)

	return LeadEmail{
		Subject: subject,
		HTML:    buildLeadHTML(sub, now),
	}
}

func buildLeadHTML(sub *Submission, now time.Time) string {
	timestamp := now.UTC().Format("2006-01-02 15:04:05") + " UTC"
	modules := "Web Architecture"
	if sub.Cinematic {
		modules = "Web Architecture + Cinematic Video"
	}
	maintenance := maintenanceLabels[sub.Maintenance]
	if maintenance == "" {
		maintenance = sub.Maintenance
	}
	langLabel := "English"
	if sub.Lang == "es" {
		langLabel = "Espanol"
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>New Lead — Lyrix OS</title>
</head>
<body style="margin:0;padding:0;background-color:#0a0a0a;font-family:'Courier New',Courier,monospace;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#0a0a0a;padding:32px 16px;">
    <tr>
      <td align="center">
        <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;background-color:#111111;border:1px solid #222222;border-radius:12px;overflow:hidden;">
          <tr>
            <td style="background-color:#1a1a1a;padding:20px 24px;border-bottom:1px solid #222222;">
              <span style="color:#666666;font-size:11px;letter-spacing:1px;">LYRIX_OS.NOTIFICATION</span>
            </td>
          </tr>
          <tr>
            <td style="padding:32px 24px 16px;">
              <div style="color:#CCFF00;font-size:10px;letter-spacing:3px;margin-bottom:8px;">&#9632; INCOMING TRANSMISSION</div>
              <div style="color:#EDEDED;font-size:24px;font-weight:bold;letter-spacing:1px;">NEW LEAD CAPTURED</div>
              <div style="color:#666666;font-size:11px;margin-top:8px;">TIMESTAMP: `)
	b.WriteString(timestamp)
	b.WriteString(`</div>
            </td>
          </tr>
          <tr>
            <td style="padding:24px;">
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
`)
	writeDataRow(&b, "CONTACT", sub.Name)
	writeDataRow(&b, "EMAIL", sub.Email)
	writeDataRow(&b, "PHONE", orDash(sub.Phone))
	writeDataRow(&b, "SECTOR", orDash(sub.Sector))
	writeDataRow(&b, "PROTOCOL", maintenance)
	writeDataRow(&b, "BUDGET", orDash(sub.Budget))
	writeDataRow(&b, "MODULES", modules)
	writeDataRow(&b, "LANGUAGE", langLabel)
	b.WriteString(`              </table>
            </td>
          </tr>
`)
	if sub.Message != "" {
		b.WriteString(`          <tr>
            <td style="padding:0 24px 24px;">
              <div style="color:#666666;font-size:10px;letter-spacing:2px;margin-bottom:8px;">&gt; MESSAGE</div>
              <div style="background-color:#0a0a0a;border:1px solid #222222;border-radius:8px;padding:16px;">
                <span style="color:#A1A1AA;font-size:13px;line-height:1.6;white-space:pre-wrap;">`)
		b.WriteString(html.EscapeString(sub.Message))
		b.WriteString(`</span>
              </div>
            </td>
          </tr>
`)
	}
	if sub.Cinematic {
		b.WriteString(`          <tr>
            <td style="padding:0 24px 24px;">
              <div style="background-color:rgba(204,255,0,0.05);border:1px solid rgba(204,255,0,0.2);border-radius:8px;padding:12px 16px;">
                <span style="color:#CCFF00;font-size:11px;font-weight:bold;letter-spacing:1px;">CINEMATIC PRODUCTION MODULE REQUESTED</span>
              </div>
            </td>
          </tr>
`)
	}
	b.WriteString(`          <tr>
            <td style="background-color:#0a0a0a;padding:20px 24px;border-top:1px solid #222222;">
              <span style="color:#333333;font-size:10px;letter-spacing:1px;">LYRIX OS NOTIFICATION SYSTEM</span>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`)
	return b.String()
}

func writeDataRow(b *strings.Builder, label, value string) {
	b.WriteString(`                <tr>
                  <td style="padding:8px 0;border-bottom:1px solid #1a1a1a;vertical-align:top;width:120px;">
                    <span style="color:#666666;font-size:10px;letter-spacing:2px;">`)
	b.WriteString(label)
	b.WriteString(`</span>
                  </td>
                  <td style="padding:8px 0 8px 12px;border-bottom:1px solid #1a1a1a;vertical-align:top;">
                    <span style="color:#EDEDED;font-size:13px;">`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`</span>
                  </td>
                </tr>
`)
}

// orDash substitutes an em dash placeholder so the recipient always sees the
// full field set even when optional fields are empty.
func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}
