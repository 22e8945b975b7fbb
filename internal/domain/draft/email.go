package draft

import (
	"strconv"
	"strings"

	"pj_billing/internal/domain/entities"
)

// Email templates substitute four named placeholders. Unknown placeholders are
// left untouched so template typos surface in the preview instead of vanishing.
const (
	PlaceholderClientName  = "{{client_name}}"
	PlaceholderDescription = "{{billing_description}}"
	PlaceholderAmount      = "{{amount}}"
	PlaceholderAddendum    = "{{addendum}}"
)

// GeneralTemplate is the built-in fallback used when no template is marked
// active for the project category.
var GeneralTemplate = entities.EmailTemplate{
	Category: entities.TemplateCategoryGeneral,
	Subject:  "Invoice for {{client_name}}",
	Body: "Dear {{client_name}},\n\n" +
		"Please find attached the invoice for {{billing_description}}.\n" +
		"Amount due: {{amount}}\n\n" +
		"{{addendum}}\n",
	Active: true,
}

// ComposeEmail renders the template against the selected project and composed
// billing content.
func ComposeEmail(tpl entities.EmailTemplate, p entities.Project, c entities.BillingContent) entities.EmailContent {
	return entities.EmailContent{
		Subject:   substitute(tpl.Subject, p, c, ""),
		Body:      substitute(tpl.Body, p, c, ""),
		Recipient: p.Client,
	}
}

// RenderEmail re-renders a template with the free-text addendum applied; used
// when the email editor saves an addendum change.
func RenderEmail(tpl entities.EmailTemplate, p entities.Project, c entities.BillingContent, addendum string) entities.EmailContent {
	return entities.EmailContent{
		Subject:   substitute(tpl.Subject, p, c, addendum),
		Body:      substitute(tpl.Body, p, c, addendum),
		Recipient: p.Client,
		Addendum:  addendum,
	}
}

func substitute(s string, p entities.Project, c entities.BillingContent, addendum string) string {
	return strings.NewReplacer(
		PlaceholderClientName, p.Client,
		PlaceholderDescription, c.Description,
		PlaceholderAmount, FormatAmount(c.Amount),
		PlaceholderAddendum, addendum,
	).Replace(s)
}

// FormatAmount renders a currency amount with thousands separators for email
// bodies. Wider display formatting stays with the presentation layer.
func FormatAmount(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	out := b.String()
	if neg {
		return "-" + out
	}
	return out
}
