package main

import (
	"log"
	"os"

	"pj_billing/internal/adapter/persistence/repository"
	"pj_billing/internal/domain/entities"
	"pj_billing/internal/infrastructure/database"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// seed replaces the hard-coded sample datasets of earlier iterations: project
// and template records are written once into DynamoDB and the service reads
// them through the catalog/provider interfaces.

var sampleProjects = []entities.Project{
	{ID: "prj-farm-001", Name: "Managed Operations Retainer", Category: entities.ProjectCategoryRecurring, Client: "Northwind Trading", BaselineAmount: 1200000, Status: "active"},
	{ID: "prj-farm-002", Name: "Platform Support Retainer", Category: entities.ProjectCategoryRecurring, Client: "Contoso Industries", BaselineAmount: 800000, Status: "active"},
	{ID: "prj-prime-001", Name: "Inventory System Rebuild", Category: entities.ProjectCategoryFixedBid, Client: "Fabrikam Foods", BaselineAmount: 5000000, Status: "active"},
	{ID: "prj-prime-002", Name: "Billing Portal Phase 2", Category: entities.ProjectCategoryFixedBid, Client: "Tailwind Logistics", BaselineAmount: 3200000, Status: "active"},
}

var sampleTemplates = []entities.EmailTemplate{
	{
		Category: string(entities.ProjectCategoryRecurring),
		Subject:  "Monthly invoice for {{client_name}}",
		Body:     "Dear {{client_name}},\n\nPlease find this month's invoice for {{billing_description}}.\nAmount due: {{amount}}\n\n{{addendum}}\n",
		Active:   true,
	},
	{
		Category: string(entities.ProjectCategoryFixedBid),
		Subject:  "Invoice for {{client_name}}",
		Body:     "Dear {{client_name}},\n\nPlease find the invoice for the agreed deliverable: {{billing_description}}.\nAmount due: {{amount}}\n\n{{addendum}}\n",
		Active:   true,
	},
	{
		Category: entities.TemplateCategoryGeneral,
		Subject:  "Invoice for {{client_name}}",
		Body:     "Dear {{client_name}},\n\nPlease find attached the invoice for {{billing_description}}.\nAmount due: {{amount}}\n\n{{addendum}}\n",
		Active:   true,
	},
}

func main() {
	root := &cobra.Command{
		Use:   "seed",
		Short: "Seed DynamoDB with sample billing-workflow data",
	}

	root.AddCommand(seedProjectsCmd(), seedTemplatesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func seedProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "Write the sample project catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repository.NewProjectCatalogDynamoRepository(database.ConnectDynamoDB())
			for _, p := range sampleProjects {
				if err := repo.Put(cmd.Context(), p); err != nil {
					return err
				}
				log.Printf("[seed] project written id=%s name=%q", p.ID, p.Name)
			}
			return nil
		},
	}
}

func seedTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Write the category email templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repository.NewEmailTemplateDynamoRepository(database.ConnectDynamoDB())
			for _, t := range sampleTemplates {
				if err := repo.Put(cmd.Context(), t); err != nil {
					return err
				}
				log.Printf("[seed] template written category=%s", t.Category)
			}
			return nil
		},
	}
}
