package highlevel

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const apiVersion = "2021-07-28"

// Client talks to the HighLevel-style CRM contacts API. It only knows the
// thin upsert surface the sync worker needs; pipeline analytics and the rest
// of the vendor API stay out of this core.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, token string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Version", apiVersion)

	return &Client{http: http}
}

// UpsertContact creates the contact and returns its CRM id. When the create
// is rejected (typically because the contact already exists) it falls back
// to a search by email and returns the existing id.
func (c *Client) UpsertContact(ctx context.Context, in ContactInput) (string, error) {
	first, last := splitContactName(in)

	body := contactRequest{
		FirstName: first,
		LastName:  last,
		Name:      in.CompanyName,
		Email:     in.Email,
		Phone:     in.Phone,
		Website:   in.Website,
		Tags:      append([]string{sourceTag(in.Channel)}, in.Tags...),
		CustomFields: []customField{
			{Key: "lead_source_detail", Value: string(in.Channel)},
		},
	}

	var created contactResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&created).
		Post("/contacts/")
	if err != nil {
		return "", fmt.Errorf("crm create contact: %w", err)
	}

	if resp.IsSuccess() && created.Contact.ID != "" {
		return created.Contact.ID, nil
	}

	id, err := c.searchByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("crm rejected contact: %s", resp.Status())
	}
	return id, nil
}

func (c *Client) searchByEmail(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", nil
	}

	var found searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&found).
		Get("/contacts/")
	if err != nil {
		return "", fmt.Errorf("crm search contact: %w", err)
	}
	if !resp.IsSuccess() || len(found.Contacts) == 0 {
		return "", nil
	}
	return found.Contacts[0].ID, nil
}

func splitContactName(in ContactInput) (first, last string) {
	if in.ContactName == "" {
		return "Contact", in.CompanyName
	}
	parts := strings.Fields(in.ContactName)
	if len(parts) == 1 {
		return parts[0], in.CompanyName
	}
	return parts[0], strings.Join(parts[1:], " ")
}
