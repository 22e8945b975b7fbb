package draft

import (
	"strings"
	"testing"

	"pj_billing/internal/domain/entities"
)

func TestComposeEmail(t *testing.T) {
	p := entities.Project{Client: "Northwind Trading"}
	c := entities.BillingContent{Description: "August retainer", Amount: 1200000}

	t.Run("substitutes all placeholders", func(t *testing.T) {
		got := ComposeEmail(GeneralTemplate, p, c)
		if got.Recipient != "Northwind Trading" {
			t.Fatalf("unexpected recipient: %q", got.Recipient)
		}
		if got.Subject != "Invoice for Northwind Trading" {
			t.Fatalf("unexpected subject: %q", got.Subject)
		}
		if !strings.Contains(got.Body, "August retainer") {
			t.Fatalf("description missing from body: %q", got.Body)
		}
		if !strings.Contains(got.Body, "1,200,000") {
			t.Fatalf("amount missing from body: %q", got.Body)
		}
		if strings.Contains(got.Body, "{{") {
			t.Fatalf("unsubstituted placeholder left: %q", got.Body)
		}
	})

	t.Run("unknown placeholders survive to the preview", func(t *testing.T) {
		tpl := entities.EmailTemplate{Subject: "{{client_nmae}} invoice", Body: "x"}
		got := ComposeEmail(tpl, p, c)
		if got.Subject != "{{client_nmae}} invoice" {
			t.Fatalf("typoed placeholder should be left untouched: %q", got.Subject)
		}
	})
}

func TestRenderEmail(t *testing.T) {
	p := entities.Project{Client: "Contoso Industries"}
	c := entities.BillingContent{Description: "support", Amount: 800000}

	got := RenderEmail(GeneralTemplate, p, c, "Net 30 terms apply.")
	if got.Addendum != "Net 30 terms apply." {
		t.Fatalf("addendum not recorded: %+v", got)
	}
	if !strings.Contains(got.Body, "Net 30 terms apply.") {
		t.Fatalf("addendum missing from body: %q", got.Body)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1200000, "1,200,000"},
		{-20000, "-20,000"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Fatalf("FormatAmount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
