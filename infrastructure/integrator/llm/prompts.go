package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/utils"
)

const dateLayout = "2006-01-02"

const chatSystemPrompt = `You are the assistant of a B2B CRM. Users manage contacts, companies, deals, activities and campaigns.
Answer briefly. When the user asks for an operation on CRM data, describe it as a suggested action; you never execute anything yourself.
Always reply with a single JSON object:
{
  "response": "<answer shown to the user>",
  "action": null or {"type": "<create/update/delete/list/search>", "entity": "<contact/company/deal/activity/campaign>", "id": "<record id, required for update/delete>", "data": {<fields>}}
}`

func scoringPrompt(contact *domain.Contact, company *domain.Company) string {
	var b strings.Builder

	b.WriteString("You are an experienced B2B sales analyst. Score this lead from 0 to 100 according to its potential value.\n\n")
	b.WriteString("Contact:\n")
	fmt.Fprintf(&b, "- Name: %s\n", contact.FullName())
	fmt.Fprintf(&b, "- Email: %s\n", valueOrNA(contact.Email))
	fmt.Fprintf(&b, "- Title: %s\n", valueOrNA(contact.Title))
	fmt.Fprintf(&b, "- Lead source: %s\n", valueOrNA(contact.LeadSource))
	fmt.Fprintf(&b, "- Status: %s\n\n", contact.Status)

	if company != nil {
		b.WriteString("Company:\n")
		fmt.Fprintf(&b, "- Name: %s\n", company.Name)
		fmt.Fprintf(&b, "- Industry: %s\n", valueOrNA(company.Industry))
		fmt.Fprintf(&b, "- Size: %s\n", valueOrNA(company.Size))
		if company.AnnualRevenue.Valid {
			fmt.Fprintf(&b, "- Annual revenue: $%s\n", company.AnnualRevenue.Decimal.StringFixed(2))
		} else {
			b.WriteString("- Annual revenue: N/A\n")
		}
	} else {
		b.WriteString("No company information available\n")
	}

	b.WriteString(`
Reply only with JSON in this format:
{
  "score": <0-100>,
  "reasoning": "<short explanation>",
  "factors": [
    {"factor": "<name>", "impact": "<positive/negative/neutral>", "weight": <1-10>}
  ]
}`)

	return b.String()
}

func emailPrompt(req domain.EmailDraftRequest) string {
	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s sales email with purpose %q.\n\n", tone, req.Purpose)
	b.WriteString("Recipient:\n")
	fmt.Fprintf(&b, "- Name: %s\n", req.RecipientName)
	if req.RecipientTitle != "" {
		fmt.Fprintf(&b, "- Title: %s\n", req.RecipientTitle)
	}
	if req.CompanyName != "" {
		fmt.Fprintf(&b, "- Company: %s\n", req.CompanyName)
	}
	if req.AdditionalContext != "" {
		fmt.Fprintf(&b, "\nAdditional context: %s\n", req.AdditionalContext)
	}

	b.WriteString(`
Keep it concise and end with a clear call to action.
Reply only with JSON in this format:
{
  "subject": "<subject line>",
  "body": "<email body>"
}`)

	return b.String()
}

func dealPrompt(deal *domain.Deal, ageDays int, lastActivityAt *time.Time) string {
	var b strings.Builder

	b.WriteString("You are a sales forecasting analyst. Estimate the win probability of this deal.\n\n")
	b.WriteString("Deal:\n")
	fmt.Fprintf(&b, "- Title: %s\n", deal.Title)
	fmt.Fprintf(&b, "- Value: %s %s\n", deal.Value.StringFixed(2), deal.Currency)
	fmt.Fprintf(&b, "- Stage: %s\n", deal.Stage)
	fmt.Fprintf(&b, "- Current probability: %d%%\n", deal.Probability)
	fmt.Fprintf(&b, "- Age: %d days\n", ageDays)
	if deal.CompanyName != nil {
		fmt.Fprintf(&b, "- Company: %s\n", *deal.CompanyName)
	}
	if deal.ContactName != nil {
		fmt.Fprintf(&b, "- Contact: %s\n", *deal.ContactName)
	}
	if deal.ExpectedCloseDate != nil {
		fmt.Fprintf(&b, "- Expected close: %s\n", deal.ExpectedCloseDate.Format(dateLayout))
	}
	if lastActivityAt != nil {
		fmt.Fprintf(&b, "- Last activity: %s\n", lastActivityAt.Format(dateLayout))
	}
	if deal.Notes != nil && *deal.Notes != "" {
		fmt.Fprintf(&b, "- Notes: %s\n", *deal.Notes)
	}

	b.WriteString(`
Reply only with JSON in this format:
{
  "winProbability": <0-100>,
  "reasoning": "<short explanation>",
  "recommendations": ["<recommendation>"],
  "riskFactors": ["<risk>"]
}`)

	return b.String()
}

func insightsPrompt(entity *domain.EntityContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze this CRM %s and summarize its current situation.\n\n", entity.Type)
	fmt.Fprintf(&b, "Name: %s\n\n", entity.Name)

	b.WriteString("Notes:\n")
	if len(entity.Notes) == 0 {
		b.WriteString("No notes available\n")
	}
	for _, note := range entity.Notes {
		fmt.Fprintf(&b, "- %s\n", note)
	}

	b.WriteString("\nRecent activities:\n")
	writeActivities(&b, entity.Activities)

	b.WriteString(`
Reply only with JSON in this format:
{
  "summary": "<current state in a few sentences>",
  "keyPoints": ["<point>"],
  "sentimentAnalysis": "<positive/neutral/negative>",
  "nextActions": ["<action>"]
}`)

	return b.String()
}

func nextActionPrompt(entity *domain.EntityContext) string {
	var b strings.Builder
	b.WriteString("You are a CRM automation specialist. Suggest the single best next action for this record.\n\n")
	fmt.Fprintf(&b, "Type: %s\n", entity.Type)
	fmt.Fprintf(&b, "Data:\n%s\n\n", utils.PrettyJson(entity.Data))

	b.WriteString("Recent activities:\n")
	writeActivities(&b, entity.Activities)

	if entity.LastContactAt != nil {
		fmt.Fprintf(&b, "\nLast contact: %s\n", entity.LastContactAt.Format(dateLayout))
	} else {
		b.WriteString("\nNo previous contact\n")
	}

	b.WriteString(`
Reply only with JSON in this format:
{
  "action": "<concrete action>",
  "priority": "<low/medium/high/urgent>",
  "reasoning": "<why>",
  "suggestedDate": "<YYYY-MM-DD>"
}`)

	return b.String()
}

func writeActivities(b *strings.Builder, activities []*domain.Activity) {
	if len(activities) == 0 {
		b.WriteString("No activities available\n")
		return
	}

	for _, a := range activities {
		description := a.Title
		if a.Description != nil && *a.Description != "" {
			description = a.Title + " - " + *a.Description
		}
		fmt.Fprintf(b, "- [%s] %s: %s\n", a.CreatedAt.Format(dateLayout), a.Type, description)
	}
}

func valueOrNA(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}
