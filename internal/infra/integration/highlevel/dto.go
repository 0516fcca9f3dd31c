package highlevel

import "github.com/crescoflow/crescoflow-core/internal/entity"

// ContactInput is the lead projection pushed to the CRM.
type ContactInput struct {
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	Website     string
	Channel     entity.OutboundChannel
	Tags        []string
}

type contactRequest struct {
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Website      string        `json:"website"`
	Tags         []string      `json:"tags"`
	CustomFields []customField `json:"customFields"`
}

type customField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type contactResponse struct {
	Contact struct {
		ID string `json:"id"`
	} `json:"contact"`
}

type searchResponse struct {
	Contacts []struct {
		ID string `json:"id"`
	} `json:"contacts"`
}

// sourceTag maps the outbound channel to the CRM's Dutch source labels.
func sourceTag(channel entity.OutboundChannel) string {
	switch channel {
	case entity.ChannelColdCall:
		return "Bron: Cold Call"
	case entity.ChannelColdSMS:
		return "Bron: Cold SMS"
	case entity.ChannelColdEmail:
		return "Bron: Cold Email"
	default:
		return "Bron: Onbekend"
	}
}
