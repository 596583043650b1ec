// ABOUTME: Demo book of business loaded by NewSeeded
// ABOUTME: Fixture IDs are human-readable and stable across sessions
package store

import "github.com/suresphere/atlas/models"

func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = []models.Client{
		{ID: "cli-ins-001", Name: "Infinite Logistics Ltd.", Email: "cover@infinitelogistics.com", Company: "Infinite Logistics Ltd.", PolicyCount: 6, Status: models.ClientActive, Tags: []string{"Marine", "Global"}},
		{ID: "cli-ins-002", Name: "Willowbrook Medical Group", Email: "risk@willowbrook-med.com", Company: "Willowbrook Medical Group", PolicyCount: 4, Status: models.ClientProspect, Tags: []string{"Healthcare", "Liability"}},
		{ID: "cli-ins-003", Name: "Skyward Retail Consortium", Email: "coverage@skywardretail.com", Company: "Skyward Retail Consortium", PolicyCount: 3, Status: models.ClientActive, Tags: []string{"Retail", "Cyber"}},
	}

	s.policies = []models.Policy{
		{ID: "pol-001", PolicyNumber: "SR-7789201", ClientID: "cli-ins-001", Carrier: "Apex Underwriters", Product: "Global Marine Cargo", Premium: 42000, EffectiveDate: "2024-01-01", RenewalDate: "2025-01-01", Status: models.PolicyActive},
		{ID: "pol-002", PolicyNumber: "SR-7789202", ClientID: "cli-ins-002", Carrier: "Guardian Mutual", Product: "Medical Malpractice", Premium: 68000, EffectiveDate: "2023-09-15", RenewalDate: "2024-09-15", Status: models.PolicyActive},
		{ID: "pol-003", PolicyNumber: "SR-7789203", ClientID: "cli-ins-003", Carrier: "Veritas Assurance", Product: "Cyber Liability", Premium: 27000, EffectiveDate: "2024-03-01", RenewalDate: "2025-03-01", Status: models.PolicyPending},
	}

	s.claims = []models.Claim{
		{ID: "clm-001", PolicyID: "pol-001", ClientID: "cli-ins-001", Type: "Cargo Loss", Amount: 125000, Stage: models.ClaimInvestigating, Handler: "Aria Patel", LastUpdated: "2024-04-14"},
		{ID: "clm-002", PolicyID: "pol-002", ClientID: "cli-ins-002", Type: "Malpractice", Amount: 85000, Stage: models.ClaimApproved, Handler: "Marcus Lee", LastUpdated: "2024-04-11"},
	}

	s.quotes = []models.Quote{
		{ID: "quo-001", ClientID: "cli-ins-002", Product: "Clinical Trials Coverage", Coverage: 3000000, PremiumEstimate: 91000, Probability: 0.7, Notes: "Bundle with cyber coverage for 12% savings."},
		{ID: "quo-002", ClientID: "cli-ins-003", Product: "Enterprise Retail Umbrella", Coverage: 5000000, PremiumEstimate: 64000, Probability: 0.4, Notes: "Consider seasonal endorsements for Q4 surge."},
	}

	s.commissions = []models.CommissionRecord{
		{ID: "rev-001", PolicyID: "pol-001", Month: "2024-03", Amount: 3800, Status: models.CommissionReceived},
		{ID: "rev-002", PolicyID: "pol-002", Month: "2024-03", Amount: 6120, Status: models.CommissionProjected},
	}

	s.compliance = []models.ComplianceTask{
		{ID: "cmp-001", Title: "Annual carrier due-diligence pack", Owner: "Compliance Desk", DueDate: "2024-05-01", Status: models.ComplianceInReview, RiskLevel: models.RiskHigh},
		{ID: "cmp-002", Title: "GDPR attestation refresh", Owner: "Risk & Legal", DueDate: "2024-06-10", Status: models.ComplianceOpen, RiskLevel: models.RiskMedium},
	}

	s.documents = []models.DocumentRecord{
		{ID: "doc-001", Name: "Marine_Cargo_Certificate.pdf", Category: "Policy", UploadedBy: "SureSphere Atlas", UploadedAt: "2024-04-01", OcrExtract: "Insured: Infinite Logistics Ltd. Coverage: $2.5M. Effective: Jan 01 2024."},
		{ID: "doc-002", Name: "Malpractice_Claim_Form.png", Category: "Claim", UploadedBy: "SureSphere Atlas", UploadedAt: "2024-03-22", OcrExtract: "Incident: Procedure on 03/12. Claimant: Willowbrook Medical Group."},
	}

	s.partners = []models.Partner{
		{ID: "par-001", Name: "Guardian Mutual", Specialization: "Healthcare", CoverageAreas: []string{"Medical", "Clinical Trials", "Life Sciences"}, Rating: 4.6, ActiveDeals: 14},
		{ID: "par-002", Name: "Apex Underwriters", Specialization: "Marine & Aviation", CoverageAreas: []string{"Cargo", "Hull", "Aviation"}, Rating: 4.3, ActiveDeals: 11},
	}

	s.communications = []models.CommunicationThread{
		{ID: "com-001", Title: "Renewal strategy | Infinite Logistics", Participants: []string{"Aria Patel", "Logistics CFO"}, LastMessage: "Schedule risk engineering visit for May 12.", Channel: models.ChannelPortal, Sentiment: models.SentimentPositive},
		{ID: "com-002", Title: "Quote feedback | Willowbrook Medical", Participants: []string{"Marcus Lee", "Risk Director"}, LastMessage: "Need clarification on retroactive coverage window.", Channel: models.ChannelEmail, Sentiment: models.SentimentNeutral},
	}

	s.workflows = []models.Workflow{
		{
			ID: "flw-001", Name: "Large Account Onboarding", Trigger: "New client > $1M premium", Active: true,
			Steps: []models.WorkflowStep{
				{ID: "flw-001-s1", Title: "Underwriting intake", Owner: "Underwriting Desk", SLA: "24 hrs"},
				{ID: "flw-001-s2", Title: "Compliance validation", Owner: "Compliance Desk", SLA: "48 hrs"},
				{ID: "flw-001-s3", Title: "Client activation", Owner: "Client Success", SLA: "24 hrs"},
			},
		},
		{
			ID: "flw-002", Name: "Claims escalation loop", Trigger: "Claim over $50k hits Investigation stage", Active: true,
			Steps: []models.WorkflowStep{
				{ID: "flw-002-s1", Title: "Assign senior adjuster", Owner: "Claims Command", SLA: "6 hrs"},
				{ID: "flw-002-s2", Title: "Legal review", Owner: "Legal", SLA: "16 hrs"},
			},
		},
	}
}
