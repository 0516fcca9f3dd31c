package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type OutboundChannel string

const (
	ChannelColdCall    OutboundChannel = "coldcall"
	ChannelColdSMS     OutboundChannel = "coldsms"
	ChannelColdEmail   OutboundChannel = "coldemail"
	ChannelFBMessenger OutboundChannel = "fb_messenger"
	ChannelSalesCall   OutboundChannel = "sales_call"
)

type PipelineTag string

const (
	TagPending           PipelineTag = "pending"
	TagSent              PipelineTag = "sent"
	TagReplied           PipelineTag = "replied"
	TagNotInterested     PipelineTag = "not_interested"
	TagAppointmentBooked PipelineTag = "appointment_booked"
	TagNoAnswer          PipelineTag = "no_answer"
	TagFollowUp          PipelineTag = "follow_up"
	TagClosed            PipelineTag = "closed"
)

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// LeadAnalysis is the enrichment block produced by the scrape pipeline.
// The store carries it verbatim and never inspects it.
type LeadAnalysis struct {
	SocialFollowers       string          `json:"socialFollowers"`
	OfferReason           string          `json:"offerReason"`
	MarketingBottlenecks  []string        `json:"marketingBottlenecks"`
	VisualScore           int             `json:"visualScore"`
	RecommendedChannel    OutboundChannel `json:"recommendedChannel"`
	QualificationNotes    string          `json:"qualificationNotes"`
	PagesCount            int             `json:"pagesCount"`
	SEOStatus             string          `json:"seoStatus"` // Slecht / Gemiddeld / Goed
	WebsiteScore          int             `json:"websiteScore"`
	PerformanceScore      int             `json:"performanceScore"`
	RevenueEstimate       string          `json:"revenueEstimate,omitempty"`
	SocialLinks           *SocialLinks    `json:"socialLinks,omitempty"`
	LinkedInActivity      string          `json:"linkedinActivity,omitempty"`
	LinkedInPostFrequency string          `json:"linkedinPostFrequency,omitempty"`
}

// Interaction is one entry in a lead's append-only outreach timeline.
type Interaction struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
	Outcome   string `json:"outcome,omitempty"`
}

// Lead is one prospective customer record. Identity is carried by three
// signals in decreasing strength: VATNumber, Website, EmailCompany.
type Lead struct {
	ID           string `json:"id"`
	CompanyName  string `json:"companyName"`
	Sector       string `json:"sector"`
	City         string `json:"city"`
	Website      string `json:"website"`
	EmailCompany string `json:"emailCompany"`
	PhoneCompany string `json:"phoneCompany"`
	CEOName      string `json:"ceoName"`
	CEOEmail     string `json:"ceoEmail"`
	CEOPhone     string `json:"ceoPhone"`
	Address      string `json:"address,omitempty"`

	Analysis LeadAnalysis `json:"analysis"`

	CrescoProfile   string          `json:"crescoProfile"` // foundation / multiplier / domination
	OutboundChannel OutboundChannel `json:"outboundChannel,omitempty"`
	PipelineTag     PipelineTag     `json:"pipelineTag,omitempty"`

	ScrapedAt       string        `json:"scrapedAt"`
	CallAttempts    int           `json:"callAttempts"`
	Interactions    []Interaction `json:"interactions"`
	ConfidenceScore int           `json:"confidenceScore"`

	IsFollowUp  bool    `json:"isFollowUp,omitempty"`
	AdStatus    string  `json:"adStatus,omitempty"`
	VATNumber   string  `json:"vatNumber,omitempty"`
	CEOSource   string  `json:"ceoSource,omitempty"`
	ReviewScore float64 `json:"reviewScore,omitempty"`

	CRMSynced     bool   `json:"crmSynced,omitempty"`
	CRMContactID  string `json:"crmContactId,omitempty"`
	EmailSentAt   string `json:"emailSentAt,omitempty"`
	ReplyReceived bool   `json:"replyReceived,omitempty"`
	ReplyDate     string `json:"replyDate,omitempty"`
	EmailBody     string `json:"emailBody,omitempty"`
	Imported      bool   `json:"imported,omitempty"`
	CRMCategory   string `json:"crmCategory,omitempty"`
	IsValidated   bool   `json:"isValidated,omitempty"`
	CEOLinkedIn   string `json:"ceoLinkedIn,omitempty"`
}

func (l *Lead) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("lead: %w", ErrMalformedRecord)
	}
	return nil
}

// AddInteraction appends one timeline entry. The timeline is append-only,
// existing entries are never rewritten.
func (l *Lead) AddInteraction(kind, timestamp, content, outcome string) {
	l.Interactions = append(l.Interactions, Interaction{
		ID:        uuid.New().String(),
		Type:      kind,
		Timestamp: timestamp,
		Content:   content,
		Outcome:   outcome,
	})
}
