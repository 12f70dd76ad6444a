package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/proposal"
)

// ProposalGeneratorConfig configures proposal generation parameters
type ProposalGeneratorConfig struct {
	UserID       int
	Count        int
	MinAmount    float64
	MaxAmount    float64
	Currency     string
	SignedChance float64 // 0.0-1.0 (probability of being signed with a document URL)
}

// proposalTitleParts holds the building blocks for believable proposal titles
var proposalTitleParts = struct {
	Services  []string
	Qualifier []string
}{
	Services: []string{
		"Website Redesign", "Brand Identity", "SEO Retainer", "Mobile App Development",
		"Marketing Automation", "Content Strategy", "E-commerce Migration",
		"Custom CRM Integration", "Video Production", "Annual Support Contract",
		"Cloud Infrastructure Audit", "Social Media Management", "Product Launch Campaign",
		"Data Warehouse Implementation", "Design System Buildout",
	},
	Qualifier: []string{
		"Proposal", "Engagement", "Project", "Retainer", "Phase 1", "Phase 2",
		"Q1 Scope", "Q3 Scope", "Pilot", "Renewal",
	},
}

// statusDistribution weights proposal statuses roughly the way a live
// pipeline looks: most proposals sit in draft or sent, a minority close.
var statusDistribution = []struct {
	Status proposal.Status
	Weight int
}{
	{proposal.StatusDraft, 30},
	{proposal.StatusSent, 25},
	{proposal.StatusViewed, 15},
	{proposal.StatusApproved, 10},
	{proposal.StatusSigned, 10},
	{proposal.StatusRejected, 7},
	{proposal.StatusExpired, 3},
}

// GenerateProposalTitle creates a realistic proposal title, optionally
// branded with a fake client company name.
func GenerateProposalTitle() string {
	service := proposalTitleParts.Services[rand.Intn(len(proposalTitleParts.Services))]
	qualifier := proposalTitleParts.Qualifier[rand.Intn(len(proposalTitleParts.Qualifier))]

	if rand.Float64() < 0.5 {
		return fmt.Sprintf("%s for %s", service, gofakeit.Company())
	}
	return fmt.Sprintf("%s %s", service, qualifier)
}

func pickStatus() proposal.Status {
	total := 0
	for _, entry := range statusDistribution {
		total += entry.Weight
	}
	n := rand.Intn(total)
	for _, entry := range statusDistribution {
		n -= entry.Weight
		if n < 0 {
			return entry.Status
		}
	}
	return proposal.StatusDraft
}

// GenerateProposal creates a single proposal builder with realistic data
func GenerateProposal(config ProposalGeneratorConfig) *ent.ProposalCreate {
	amount := config.MinAmount + rand.Float64()*(config.MaxAmount-config.MinAmount)
	status := pickStatus()

	// Status changed somewhere in the last 90 days
	changedAt := time.Now().Add(-time.Duration(rand.Intn(90*24)) * time.Hour)

	create := &ent.ProposalCreate{}
	create.
		SetUserID(config.UserID).
		SetTitle(GenerateProposalTitle()).
		SetAmount(float64(int(amount*100)) / 100).
		SetCurrency(config.Currency).
		SetStatus(status).
		SetStatusChangedAt(changedAt).
		SetCreatedAt(changedAt.Add(-time.Duration(rand.Intn(30*24)) * time.Hour))

	if status == proposal.StatusSigned && rand.Float64() < config.SignedChance {
		create.SetSignedDocumentURL(fmt.Sprintf("s3://dealpage-documents/signed/%s.pdf", gofakeit.UUID()))
	}

	return create
}

// GenerateProposals creates multiple proposals with the given config
func GenerateProposals(config ProposalGeneratorConfig) []*ent.ProposalCreate {
	proposals := make([]*ent.ProposalCreate, config.Count)
	for i := 0; i < config.Count; i++ {
		proposals[i] = GenerateProposal(config)
	}
	return proposals
}

// GenerateProposalsForUser generates proposals for a user with default settings
func GenerateProposalsForUser(userID, count int) []*ent.ProposalCreate {
	config := ProposalGeneratorConfig{
		UserID:       userID,
		Count:        count,
		MinAmount:    500,
		MaxAmount:    75000,
		Currency:     "USD",
		SignedChance: 0.9,
	}
	return GenerateProposals(config)
}

// GenerateCRMContact creates a single mirrored contact builder for an
// integration, with a provider-plausible external id.
func GenerateCRMContact(integrationID int, provider string) *ent.CRMContactCreate {
	firstName := gofakeit.FirstName()
	lastName := gofakeit.LastName()
	company := gofakeit.Company()

	domain := strings.ToLower(strings.ReplaceAll(company, " ", ""))
	domain = strings.ReplaceAll(domain, ",", "")
	domain = strings.ReplaceAll(domain, "'", "")
	if len(domain) > 20 {
		domain = domain[:20]
	}

	create := &ent.CRMContactCreate{}
	create.
		SetIntegrationID(integrationID).
		SetExternalContactID(externalContactID(provider)).
		SetEmail(fmt.Sprintf("%s.%s@%s.com", strings.ToLower(firstName), strings.ToLower(lastName), domain)).
		SetFirstName(firstName).
		SetLastName(lastName).
		SetCompany(company).
		SetPhone(gofakeit.Phone())

	return create
}

// GenerateCRMContacts creates multiple mirrored contacts for an integration
func GenerateCRMContacts(integrationID int, provider string, count int) []*ent.CRMContactCreate {
	contacts := make([]*ent.CRMContactCreate, count)
	for i := 0; i < count; i++ {
		contacts[i] = GenerateCRMContact(integrationID, provider)
	}
	return contacts
}

func externalContactID(provider string) string {
	switch provider {
	case "salesforce":
		return fmt.Sprintf("003%015d", rand.Int63n(1e15))
	case "zoho":
		return fmt.Sprintf("%d", 4000000000000000+rand.Int63n(1e12))
	default:
		return fmt.Sprintf("%d", rand.Int63n(1e9))
	}
}

// BulkInsertProposals inserts proposals in batches for performance
func BulkInsertProposals(ctx context.Context, client *ent.Client, proposals []*ent.ProposalCreate, batchSize int) error {
	for i := 0; i < len(proposals); i += batchSize {
		end := i + batchSize
		if end > len(proposals) {
			end = len(proposals)
		}

		batch := proposals[i:end]
		if err := client.Proposal.CreateBulk(batch...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}
